package services

import (
	"context"

	"github.com/kerem/notesphere/internal/app/models/dto"
)

// StatsStore is the repository surface the stats service depends on
type StatsStore interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	ListDeletedNotes(ctx context.Context) ([]dto.DeletedNoteResponse, error)
	ListDeletedReviews(ctx context.Context) ([]dto.DeletedReviewResponse, error)
}

// StatsService serves the developer dashboard's read-only views
type StatsService interface {
	GetStats(ctx context.Context) (*dto.StatsResponse, error)
	GetDeletedNotes(ctx context.Context) ([]dto.DeletedNoteResponse, error)
	GetDeletedReviews(ctx context.Context) ([]dto.DeletedReviewResponse, error)
}

type statsService struct {
	stats StatsStore
}

// NewStatsService creates a new stats service instance
func NewStatsService(stats StatsStore) StatsService {
	return &statsService{stats: stats}
}

// GetStats returns the aggregate counters
func (s *statsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	return s.stats.GetStats(ctx)
}

// GetDeletedNotes returns trashed notes, newest-deleted first
func (s *statsService) GetDeletedNotes(ctx context.Context) ([]dto.DeletedNoteResponse, error) {
	return s.stats.ListDeletedNotes(ctx)
}

// GetDeletedReviews returns trashed reviews, newest-deleted first
func (s *statsService) GetDeletedReviews(ctx context.Context) ([]dto.DeletedReviewResponse, error) {
	return s.stats.ListDeletedReviews(ctx)
}
