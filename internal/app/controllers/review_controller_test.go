package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

type stubReviewService struct {
	reviews    []dto.ReviewResponse
	err        error
	lastNoteID int64
	lastReq    *dto.CreateReviewRequest
}

func (s *stubReviewService) GetReviews(_ context.Context, noteID int64) ([]dto.ReviewResponse, error) {
	s.lastNoteID = noteID
	return s.reviews, s.err
}

func (s *stubReviewService) CreateReview(_ context.Context, noteID int64, req *dto.CreateReviewRequest) (*models.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastNoteID = noteID
	s.lastReq = req
	return &models.Review{ID: 1, NoteID: noteID, Content: req.Content, Rating: req.Rating}, nil
}

func (s *stubReviewService) UpdateReview(_ context.Context, _ int64, _ *dto.UpdateReviewRequest) error {
	return s.err
}

func (s *stubReviewService) DeleteReview(_ context.Context, _ int64) error {
	return s.err
}

func (s *stubReviewService) RestoreReview(_ context.Context, _ int64) error {
	return s.err
}

func newReviewTestRouter(svc *stubReviewService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewReviewController(svc)
	router.GET("/notes/:id/reviews", controller.GetReviews)
	router.POST("/notes/:id/reviews", controller.CreateReview)
	router.PUT("/reviews/:id", controller.UpdateReview)
	router.DELETE("/reviews/:id", controller.DeleteReview)
	router.POST("/restore-review/:id", controller.RestoreReview)
	return router
}

func TestGetReviews(t *testing.T) {
	svc := &stubReviewService{reviews: []dto.ReviewResponse{{ReviewID: 1, Content: "helpful", Rating: 5}}}
	router := newReviewTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/3/reviews", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(3), svc.lastNoteID)

	var reviews []dto.ReviewResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reviews))
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
}

func TestCreateReview(t *testing.T) {
	svc := &stubReviewService{}
	router := newReviewTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes/3/reviews",
		strings.NewReader(`{"content":"clear and complete","rating":4}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(3), svc.lastNoteID)
	assert.Equal(t, 4, svc.lastReq.Rating)
}

func TestCreateReviewValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing content", body: `{"rating":4}`},
		{name: "missing rating", body: `{"content":"x"}`},
		{name: "rating out of range", body: `{"content":"x","rating":6}`},
		{name: "malformed json", body: `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubReviewService{}
			router := newReviewTestRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/notes/3/reviews", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, svc.lastReq, "service must not be called on invalid input")
		})
	}
}

func TestCreateReviewUnknownNote(t *testing.T) {
	router := newReviewTestRouter(&stubReviewService{err: apperrors.ErrNoteNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notes/99/reviews",
		strings.NewReader(`{"content":"good","rating":3}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteReviewMapsNotFound(t *testing.T) {
	router := newReviewTestRouter(&stubReviewService{err: apperrors.ErrReviewNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/reviews/12", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
