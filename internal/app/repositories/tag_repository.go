package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/dberrors"
)

// TagRepository handles database operations for tags
type TagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{db: db}
}

// GetAll retrieves all tags
func (r *TagRepository) GetAll(ctx context.Context) ([]*models.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT tag_id, name
		FROM tags
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tags := make([]*models.Tag, 0)
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("error scanning tag: %w", err)
		}
		tags = append(tags, &tag)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tags, nil
}

// Create inserts a new tag
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO tags (name)
		VALUES ($1)
		RETURNING tag_id
	`, tag.Name).Scan(&tag.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrTagExists
		}
		return err
	}
	return nil
}
