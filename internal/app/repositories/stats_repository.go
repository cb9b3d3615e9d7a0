package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/logger"
)

// StatsRepository serves the developer dashboard's read-only aggregations
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// GetStats returns overall counts plus per-course and per-department file
// counts. The grouped counts only see files attached to live notes.
func (r *StatsRepository) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{
		FilesPerCourse:     make([]dto.CourseFileCount, 0),
		FilesPerDepartment: make([]dto.DepartmentFileCount, 0),
	}

	err := r.db.QueryRow(ctx, `
		SELECT count(*) FROM notes WHERE is_deleted = FALSE
	`).Scan(&stats.TotalNotes)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting notes")
		return nil, err
	}

	err = r.db.QueryRow(ctx, `SELECT count(*) FROM files`).Scan(&stats.TotalFiles)
	if err != nil {
		logger.Error().Err(err).Msg("Error counting files")
		return nil, err
	}

	rows, err := r.db.Query(ctx, `
		SELECT c.name, count(f.file_id)
		FROM files f
		JOIN notes n ON f.note_id = n.note_id AND n.is_deleted = FALSE
		JOIN courses c ON n.course_id = c.course_id
		GROUP BY c.course_id, c.name
		ORDER BY c.name
	`)
	if err != nil {
		logger.Error().Err(err).Msg("Error grouping files per course")
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row dto.CourseFileCount
		if err := rows.Scan(&row.CourseName, &row.FileCount); err != nil {
			return nil, err
		}
		stats.FilesPerCourse = append(stats.FilesPerCourse, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	deptRows, err := r.db.Query(ctx, `
		SELECT d.name, count(f.file_id)
		FROM files f
		JOIN notes n ON f.note_id = n.note_id AND n.is_deleted = FALSE
		JOIN courses c ON n.course_id = c.course_id
		JOIN departments d ON c.department_id = d.department_id
		GROUP BY d.department_id, d.name
		ORDER BY d.name
	`)
	if err != nil {
		logger.Error().Err(err).Msg("Error grouping files per department")
		return nil, err
	}
	defer deptRows.Close()

	for deptRows.Next() {
		var row dto.DepartmentFileCount
		if err := deptRows.Scan(&row.DepartmentName, &row.FileCount); err != nil {
			return nil, err
		}
		stats.FilesPerDepartment = append(stats.FilesPerDepartment, row)
	}
	if err := deptRows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return stats, nil
}

// ListDeletedNotes returns trashed notes with their deletion timestamp,
// newest-deleted first.
func (r *StatsRepository) ListDeletedNotes(ctx context.Context) ([]dto.DeletedNoteResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT n.note_id, n.title, tr.deleted_at
		FROM trash tr
		JOIN notes n ON tr.note_id = n.note_id
		ORDER BY tr.deleted_at DESC
	`)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching deleted notes")
		return nil, err
	}
	defer rows.Close()

	notes := make([]dto.DeletedNoteResponse, 0)
	for rows.Next() {
		var note dto.DeletedNoteResponse
		if err := rows.Scan(&note.NoteID, &note.Title, &note.DeletedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return notes, nil
}

// ListDeletedReviews returns trashed reviews joined with their parent
// note's title, newest-deleted first.
func (r *StatsRepository) ListDeletedReviews(ctx context.Context) ([]dto.DeletedReviewResponse, error) {
	rows, err := r.db.Query(ctx, `
		SELECT rv.review_id, n.title, rv.content, rv.rating, rt.deleted_at
		FROM review_trash rt
		JOIN reviews rv ON rt.review_id = rv.review_id
		JOIN notes n ON rv.note_id = n.note_id
		ORDER BY rt.deleted_at DESC
	`)
	if err != nil {
		logger.Error().Err(err).Msg("Error fetching deleted reviews")
		return nil, err
	}
	defer rows.Close()

	reviews := make([]dto.DeletedReviewResponse, 0)
	for rows.Next() {
		var review dto.DeletedReviewResponse
		if err := rows.Scan(&review.ReviewID, &review.NoteTitle, &review.Content, &review.Rating, &review.DeletedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("database iteration error: %w", err)
	}

	return reviews, nil
}
