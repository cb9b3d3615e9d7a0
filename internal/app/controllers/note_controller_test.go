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

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

type stubNoteService struct {
	notes      []dto.NoteSummaryResponse
	detail     *dto.NoteDetailResponse
	err        error
	lastFilter *dto.NoteFilterRequest
	deletedID  int64
	restoredID int64
}

func (s *stubNoteService) ListNotes(_ context.Context, filter *dto.NoteFilterRequest) ([]dto.NoteSummaryResponse, error) {
	s.lastFilter = filter
	return s.notes, s.err
}

func (s *stubNoteService) GetNoteByID(_ context.Context, _ int64) (*dto.NoteDetailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

func (s *stubNoteService) UpdateDescription(_ context.Context, _ int64, _ string) error {
	return s.err
}

func (s *stubNoteService) DeleteNote(_ context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func (s *stubNoteService) RestoreNote(_ context.Context, id int64) error {
	s.restoredID = id
	return s.err
}

func newNoteTestRouter(svc *stubNoteService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewNoteController(svc)
	router.GET("/notes", controller.GetNotes)
	router.GET("/notes/:id", controller.GetNoteByID)
	router.PUT("/notes/:id/description", controller.UpdateDescription)
	router.DELETE("/notes/:id", controller.DeleteNote)
	router.POST("/restore-note/:id", controller.RestoreNote)
	return router
}

func TestGetNotesPassesFilters(t *testing.T) {
	svc := &stubNoteService{notes: []dto.NoteSummaryResponse{{NoteID: 1, Title: "Trees"}}}
	router := newNoteTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/notes?department_id=2&sort_by=rating", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.lastFilter.DepartmentID)
	assert.Equal(t, int64(2), *svc.lastFilter.DepartmentID)
	assert.Equal(t, dto.SortByRating, svc.lastFilter.SortBy)

	var notes []dto.NoteSummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &notes))
	require.Len(t, notes, 1)
	assert.Equal(t, "Trees", notes[0].Title)
}

func TestGetNotesRejectsUnknownSortOrder(t *testing.T) {
	router := newNoteTestRouter(&stubNoteService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes?sort_by=title", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetNoteByIDNotFound(t *testing.T) {
	router := newNoteTestRouter(&stubNoteService{err: apperrors.ErrNoteNotFound})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/99", nil))

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, resp.Error.Code)
}

func TestGetNoteByIDInvalidID(t *testing.T) {
	router := newNoteTestRouter(&stubNoteService{})

	for _, id := range []string{"abc", "0", "-4"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notes/"+id, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, "id %q", id)
	}
}

func TestUpdateDescriptionRequiresBody(t *testing.T) {
	router := newNoteTestRouter(&stubNoteService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/notes/4/description", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteAndRestoreNote(t *testing.T) {
	svc := &stubNoteService{}
	router := newNoteTestRouter(svc)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notes/6", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), svc.deletedID)
	assert.JSONEq(t, `{"message":"Note moved to trash"}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/restore-note/6", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(6), svc.restoredID)
	assert.JSONEq(t, `{"message":"Note restored"}`, w.Body.String())
}
