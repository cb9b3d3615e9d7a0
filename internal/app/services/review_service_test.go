package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

type fakeReviewStore struct {
	reviews    []dto.ReviewResponse
	err        error
	created    *models.Review
	updatedID  int64
	deletedID  int64
	restoredID int64
}

func (f *fakeReviewStore) ListByNote(_ context.Context, _ int64) ([]dto.ReviewResponse, error) {
	return f.reviews, f.err
}

func (f *fakeReviewStore) Create(_ context.Context, review *models.Review) error {
	if f.err != nil {
		return f.err
	}
	review.ID = 42
	f.created = review
	return nil
}

func (f *fakeReviewStore) Update(_ context.Context, id int64, _ string, _ int) error {
	f.updatedID = id
	return f.err
}

func (f *fakeReviewStore) SoftDelete(_ context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeReviewStore) Restore(_ context.Context, id int64) error {
	f.restoredID = id
	return f.err
}

func TestReviewServiceCreateReview(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store)

	review, err := svc.CreateReview(context.Background(), 5, &dto.CreateReviewRequest{
		Content: "Very thorough notes",
		Rating:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), review.ID)
	assert.Equal(t, int64(5), store.created.NoteID)
	assert.Equal(t, 4, store.created.Rating)
}

func TestReviewServiceCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		rating  int
		wantErr error
	}{
		{name: "empty content", content: "", rating: 3, wantErr: apperrors.ErrBadRequest},
		{name: "blank content", content: "  ", rating: 3, wantErr: apperrors.ErrBadRequest},
		{name: "rating too low", content: "ok", rating: 0, wantErr: apperrors.ErrInvalidRating},
		{name: "rating too high", content: "ok", rating: 6, wantErr: apperrors.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeReviewStore{}
			svc := NewReviewService(store)

			_, err := svc.CreateReview(context.Background(), 5, &dto.CreateReviewRequest{
				Content: tt.content,
				Rating:  tt.rating,
			})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, store.created, "store must not be touched on invalid input")
		})
	}
}

func TestReviewServiceCreateReviewUnknownNote(t *testing.T) {
	store := &fakeReviewStore{err: apperrors.ErrNoteNotFound}
	svc := NewReviewService(store)

	_, err := svc.CreateReview(context.Background(), 99, &dto.CreateReviewRequest{
		Content: "good",
		Rating:  5,
	})
	assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
}

func TestReviewServiceUpdateReviewValidation(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store)

	err := svc.UpdateReview(context.Background(), 8, &dto.UpdateReviewRequest{Content: "edit", Rating: 9})
	assert.ErrorIs(t, err, apperrors.ErrInvalidRating)
	assert.Zero(t, store.updatedID)

	require.NoError(t, svc.UpdateReview(context.Background(), 8, &dto.UpdateReviewRequest{Content: "edit", Rating: 2}))
	assert.Equal(t, int64(8), store.updatedID)
}

func TestReviewServiceDeleteAndRestore(t *testing.T) {
	store := &fakeReviewStore{}
	svc := NewReviewService(store)

	require.NoError(t, svc.DeleteReview(context.Background(), 11))
	assert.Equal(t, int64(11), store.deletedID)

	require.NoError(t, svc.RestoreReview(context.Background(), 11))
	assert.Equal(t, int64(11), store.restoredID)
}
