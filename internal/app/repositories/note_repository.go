package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/db"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/dberrors"
	"github.com/kerem/notesphere/internal/pkg/logger"
)

// NoteRepository handles database operations for notes, including the
// transactional soft-delete/restore transitions.
type NoteRepository struct {
	db *db.PostgresDB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(database *db.PostgresDB) *NoteRepository {
	return &NoteRepository{db: database}
}

// List returns all live notes matching the filter, with course name,
// concatenated tags and average live-review rating.
func (r *NoteRepository) List(ctx context.Context, filter *dto.NoteFilterRequest) ([]dto.NoteSummaryResponse, error) {
	sqlStr, args, err := buildNoteListQuery(filter)
	if err != nil {
		logger.Error().Err(err).Msg("Error building note list SQL")
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing note list query")
		return nil, err
	}
	defer rows.Close()

	notes := make([]dto.NoteSummaryResponse, 0)
	for rows.Next() {
		var note dto.NoteSummaryResponse
		if err := rows.Scan(&note.NoteID, &note.Title, &note.CourseName, &note.Tags, &note.AvgRating); err != nil {
			logger.Error().Err(err).Msg("Error scanning note list row")
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return notes, nil
}

// GetByID retrieves the detail view of a single live note
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*dto.NoteDetailResponse, error) {
	sqlStr, args, err := buildNoteDetailQuery(id)
	if err != nil {
		logger.Error().Err(err).Msg("Error building note detail SQL")
		return nil, err
	}

	var note dto.NoteDetailResponse
	err = r.db.Pool.QueryRow(ctx, sqlStr, args...).Scan(
		&note.NoteID, &note.Title, &note.Description, &note.CreatedAt,
		&note.CourseName, &note.Tags, &note.FileURLs, &note.AvgRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("note_id", id).Msg("Error retrieving note details")
		return nil, err
	}

	return &note, nil
}

// Create inserts the note, its file row and the optional tag association in
// one transaction. The note's generated id and timestamps are filled in.
func (r *NoteRepository) Create(ctx context.Context, note *models.Note, file *models.File, tagID *int64) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO notes (title, description, course_id)
			VALUES ($1, $2, $3)
			RETURNING note_id, created_at, updated_at
		`, note.Title, note.Description, note.CourseID).Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert note: %w", err)
		}

		file.NoteID = note.ID
		err = tx.QueryRow(ctx, `
			INSERT INTO files (note_id, file_name, file_url, storage_key)
			VALUES ($1, $2, $3, $4)
			RETURNING file_id, uploaded_at
		`, file.NoteID, file.FileName, file.FileURL, file.StorageKey).Scan(&file.ID, &file.UploadedAt)
		if err != nil {
			return fmt.Errorf("failed to insert file: %w", err)
		}

		if tagID != nil {
			if _, err := tx.Exec(ctx, `
				INSERT INTO note_tags (note_id, tag_id) VALUES ($1, $2)
			`, note.ID, *tagID); err != nil {
				return fmt.Errorf("failed to insert note tag: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			// Either the course id or the tag id does not exist
			return apperrors.NewBadRequestError("course or tag does not exist")
		}
		return err
	}

	return nil
}

// UpdateDescription updates the description of a live note
func (r *NoteRepository) UpdateDescription(ctx context.Context, id int64, description string) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE notes
		SET description = $1, updated_at = now()
		WHERE note_id = $2 AND is_deleted = FALSE
	`, description, id)
	if err != nil {
		logger.Error().Err(err).Int64("note_id", id).Msg("Error updating note description")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNoteNotFound
	}
	return nil
}

// SoftDelete moves a note from ACTIVE to TRASHED: the is_deleted flip and
// the trash insert commit together or not at all. Deleting a note that is
// already trashed is a no-op.
func (r *NoteRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE notes
			SET is_deleted = TRUE, updated_at = now()
			WHERE note_id = $1 AND is_deleted = FALSE
		`, id)
		if err != nil {
			return fmt.Errorf("failed to flag note deleted: %w", err)
		}

		if tag.RowsAffected() == 0 {
			// Nothing flipped: unknown note or already trashed
			return r.requireNoteExists(ctx, tx, id)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO trash (note_id, deleted_at) VALUES ($1, now())
		`, id); err != nil {
			return fmt.Errorf("failed to insert trash entry: %w", err)
		}

		return nil
	})
}

// Restore moves a note from TRASHED back to ACTIVE, removing the trash row
// in the same transaction. Restoring an active note is a no-op.
func (r *NoteRepository) Restore(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE notes
			SET is_deleted = FALSE, updated_at = now()
			WHERE note_id = $1 AND is_deleted = TRUE
		`, id)
		if err != nil {
			return fmt.Errorf("failed to clear note deleted flag: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return r.requireNoteExists(ctx, tx, id)
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM trash WHERE note_id = $1
		`, id); err != nil {
			return fmt.Errorf("failed to delete trash entry: %w", err)
		}

		return nil
	})
}

// requireNoteExists distinguishes a no-op transition from an unknown id
func (r *NoteRepository) requireNoteExists(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM notes WHERE note_id = $1)
	`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check note existence: %w", err)
	}
	if !exists {
		return apperrors.ErrNoteNotFound
	}
	return nil
}
