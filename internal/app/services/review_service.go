package services

import (
	"context"
	"strings"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

// ReviewStore is the repository surface the review service depends on
type ReviewStore interface {
	ListByNote(ctx context.Context, noteID int64) ([]dto.ReviewResponse, error)
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, id int64, content string, rating int) error
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

// ReviewService handles reviews and their soft-delete lifecycle
type ReviewService interface {
	GetReviews(ctx context.Context, noteID int64) ([]dto.ReviewResponse, error)
	CreateReview(ctx context.Context, noteID int64, req *dto.CreateReviewRequest) (*models.Review, error)
	UpdateReview(ctx context.Context, id int64, req *dto.UpdateReviewRequest) error
	DeleteReview(ctx context.Context, id int64) error
	RestoreReview(ctx context.Context, id int64) error
}

type reviewService struct {
	reviews ReviewStore
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews ReviewStore) ReviewService {
	return &reviewService{reviews: reviews}
}

// validateReview checks review content and the 1-5 rating bound
func validateReview(content string, rating int) error {
	if strings.TrimSpace(content) == "" {
		return apperrors.NewBadRequestError("review content cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return apperrors.ErrInvalidRating
	}
	return nil
}

// GetReviews returns the live reviews of a note, newest first
func (s *reviewService) GetReviews(ctx context.Context, noteID int64) ([]dto.ReviewResponse, error) {
	return s.reviews.ListByNote(ctx, noteID)
}

// CreateReview validates and stores a new review for a note
func (s *reviewService) CreateReview(ctx context.Context, noteID int64, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := validateReview(req.Content, req.Rating); err != nil {
		return nil, err
	}

	review := &models.Review{
		NoteID:  noteID,
		Content: req.Content,
		Rating:  req.Rating,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// UpdateReview validates and edits a live review
func (s *reviewService) UpdateReview(ctx context.Context, id int64, req *dto.UpdateReviewRequest) error {
	if err := validateReview(req.Content, req.Rating); err != nil {
		return err
	}
	return s.reviews.Update(ctx, id, req.Content, req.Rating)
}

// DeleteReview soft-deletes a review; deleting a trashed review is a no-op
func (s *reviewService) DeleteReview(ctx context.Context, id int64) error {
	return s.reviews.SoftDelete(ctx, id)
}

// RestoreReview restores a trashed review; restoring a live one is a no-op
func (s *reviewService) RestoreReview(ctx context.Context, id int64) error {
	return s.reviews.Restore(ctx, id)
}
