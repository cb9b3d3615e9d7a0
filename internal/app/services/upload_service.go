package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/filestorage"
	"github.com/kerem/notesphere/internal/pkg/logger"
)

// NoteCreator is the repository surface the upload pipeline writes through
type NoteCreator interface {
	Create(ctx context.Context, note *models.Note, file *models.File, tagID *int64) error
}

// UploadService runs the upload pipeline: spool the multipart file to a
// temp copy, push it to blob storage, then write the note/file/tag rows in
// one transaction. The blob is deleted again if the database phase fails.
type UploadService interface {
	UploadNote(ctx context.Context, req *dto.UploadNoteRequest, fileHeader *multipart.FileHeader) (*dto.UploadNoteResponse, error)
}

type uploadService struct {
	notes   NoteCreator
	storage filestorage.BlobStorage
}

// NewUploadService creates a new upload service instance
func NewUploadService(notes NoteCreator, storage filestorage.BlobStorage) UploadService {
	return &uploadService{
		notes:   notes,
		storage: storage,
	}
}

// UploadNote stores the file and creates the note
func (s *uploadService) UploadNote(ctx context.Context, req *dto.UploadNoteRequest, fileHeader *multipart.FileHeader) (*dto.UploadNoteResponse, error) {
	if fileHeader == nil {
		return nil, apperrors.NewBadRequestError("no file uploaded")
	}
	if req.CourseID <= 0 {
		return nil, apperrors.NewBadRequestError("course id must be positive")
	}

	tmpPath, err := spoolToTempFile(fileHeader)
	if err != nil {
		return nil, err
	}
	// The temp copy goes away on every exit path
	defer func() {
		if err := os.Remove(tmpPath); err != nil {
			logger.Warn().Err(err).Str("path", tmpPath).Msg("Failed to remove temp upload file")
		}
	}()

	// Timestamp prefix keeps object keys collision-resistant
	key := fmt.Sprintf("notes/%d-%s", time.Now().UnixMilli(), filepath.Base(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")

	stored, err := s.storage.Upload(ctx, tmpPath, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorageUnavailable, err)
	}

	note := &models.Note{
		Title:       req.Title,
		Description: req.Description,
		CourseID:    req.CourseID,
	}
	file := &models.File{
		FileName:   fileHeader.Filename,
		FileURL:    stored.URL,
		StorageKey: stored.Key,
	}

	if err := s.notes.Create(ctx, note, file, req.TagID); err != nil {
		// Compensate the orphaned blob; the row writes never happened
		if delErr := s.storage.Delete(ctx, stored.Key); delErr != nil {
			logger.Error().Err(delErr).Str("key", stored.Key).Msg("Failed to delete orphaned blob")
		}
		return nil, err
	}

	logger.Info().Int64("note_id", note.ID).Str("key", stored.Key).Msg("Note uploaded")
	return &dto.UploadNoteResponse{
		Message: "File uploaded and note saved.",
		NoteID:  note.ID,
	}, nil
}

// spoolToTempFile copies the multipart payload to a local temp file so the
// storage client can re-read it across retry attempts.
func spoolToTempFile(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "notesphere-upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(tmp, src); err != nil {
		tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to spool uploaded file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	return tmp.Name(), nil
}
