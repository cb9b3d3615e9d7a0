package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/db"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/dberrors"
	"github.com/kerem/notesphere/internal/pkg/logger"
)

// ReviewRepository handles database operations for reviews. Reviews share
// the notes' soft-delete state machine, logged to review_trash.
type ReviewRepository struct {
	db *db.PostgresDB
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(database *db.PostgresDB) *ReviewRepository {
	return &ReviewRepository{db: database}
}

// ListByNote returns the live reviews of a note, newest first
func (r *ReviewRepository) ListByNote(ctx context.Context, noteID int64) ([]dto.ReviewResponse, error) {
	rows, err := r.db.Pool.Query(ctx, `
		SELECT review_id, content, rating, created_at
		FROM reviews
		WHERE note_id = $1 AND is_deleted = FALSE
		ORDER BY created_at DESC
	`, noteID)
	if err != nil {
		logger.Error().Err(err).Int64("note_id", noteID).Msg("Error fetching reviews")
		return nil, err
	}
	defer rows.Close()

	reviews := make([]dto.ReviewResponse, 0)
	for rows.Next() {
		var review dto.ReviewResponse
		if err := rows.Scan(&review.ReviewID, &review.Content, &review.Rating, &review.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return reviews, nil
}

// Create inserts a new review for a note
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	err := r.db.Pool.QueryRow(ctx, `
		INSERT INTO reviews (note_id, content, rating)
		VALUES ($1, $2, $3)
		RETURNING review_id, created_at
	`, review.NoteID, review.Content, review.Rating).Scan(&review.ID, &review.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("note_id", review.NoteID).Msg("Error inserting review")
		return err
	}
	return nil
}

// Update edits the content and rating of a live review
func (r *ReviewRepository) Update(ctx context.Context, id int64, content string, rating int) error {
	tag, err := r.db.Pool.Exec(ctx, `
		UPDATE reviews
		SET content = $1, rating = $2
		WHERE review_id = $3 AND is_deleted = FALSE
	`, content, rating, id)
	if err != nil {
		logger.Error().Err(err).Int64("review_id", id).Msg("Error updating review")
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrReviewNotFound
	}
	return nil
}

// SoftDelete flags a review deleted and logs it to review_trash atomically.
// Deleting an already-trashed review is a no-op.
func (r *ReviewRepository) SoftDelete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE reviews
			SET is_deleted = TRUE
			WHERE review_id = $1 AND is_deleted = FALSE
		`, id)
		if err != nil {
			return fmt.Errorf("failed to flag review deleted: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return r.requireReviewExists(ctx, tx, id)
		}

		if _, err := tx.Exec(ctx, `
			INSERT INTO review_trash (review_id, deleted_at) VALUES ($1, now())
		`, id); err != nil {
			return fmt.Errorf("failed to insert review trash entry: %w", err)
		}

		return nil
	})
}

// Restore clears the deleted flag and removes the review_trash row in one
// transaction. Restoring a live review is a no-op.
func (r *ReviewRepository) Restore(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE reviews
			SET is_deleted = FALSE
			WHERE review_id = $1 AND is_deleted = TRUE
		`, id)
		if err != nil {
			return fmt.Errorf("failed to clear review deleted flag: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return r.requireReviewExists(ctx, tx, id)
		}

		if _, err := tx.Exec(ctx, `
			DELETE FROM review_trash WHERE review_id = $1
		`, id); err != nil {
			return fmt.Errorf("failed to delete review trash entry: %w", err)
		}

		return nil
	})
}

// requireReviewExists distinguishes a no-op transition from an unknown id
func (r *ReviewRepository) requireReviewExists(ctx context.Context, tx pgx.Tx, id int64) error {
	var exists bool
	if err := tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM reviews WHERE review_id = $1)
	`, id).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check review existence: %w", err)
	}
	if !exists {
		return apperrors.ErrReviewNotFound
	}
	return nil
}
