package services

import (
	"context"
	"strings"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

// NoteStore is the repository surface the note service depends on
type NoteStore interface {
	List(ctx context.Context, filter *dto.NoteFilterRequest) ([]dto.NoteSummaryResponse, error)
	GetByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// NoteService handles note browsing and the soft-delete lifecycle
type NoteService interface {
	ListNotes(ctx context.Context, filter *dto.NoteFilterRequest) ([]dto.NoteSummaryResponse, error)
	GetNoteByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error)
	UpdateDescription(ctx context.Context, id int64, description string) error
	DeleteNote(ctx context.Context, id int64) error
	RestoreNote(ctx context.Context, id int64) error
}

type noteService struct {
	notes NoteStore
}

// NewNoteService creates a new note service instance
func NewNoteService(notes NoteStore) NoteService {
	return &noteService{notes: notes}
}

// ListNotes returns live notes matching the filter
func (s *noteService) ListNotes(ctx context.Context, filter *dto.NoteFilterRequest) ([]dto.NoteSummaryResponse, error) {
	return s.notes.List(ctx, filter)
}

// GetNoteByID returns the detail view of a live note
func (s *noteService) GetNoteByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	return s.notes.GetByID(ctx, id)
}

// UpdateDescription replaces the description of a live note
func (s *noteService) UpdateDescription(ctx context.Context, id int64, description string) error {
	if strings.TrimSpace(description) == "" {
		return apperrors.NewBadRequestError("description cannot be empty")
	}
	return s.notes.UpdateDescription(ctx, id, description)
}

// DeleteNote soft-deletes a note; deleting a trashed note is a no-op
func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	return s.notes.SoftDelete(ctx, id)
}

// RestoreNote restores a trashed note; restoring a live note is a no-op
func (s *noteService) RestoreNote(ctx context.Context, id int64) error {
	return s.notes.Restore(ctx, id)
}
