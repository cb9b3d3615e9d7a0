package controllers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

type stubUploadService struct {
	resp     *dto.UploadNoteResponse
	err      error
	lastReq  *dto.UploadNoteRequest
	lastFile *multipart.FileHeader
}

func (s *stubUploadService) UploadNote(_ context.Context, req *dto.UploadNoteRequest, fileHeader *multipart.FileHeader) (*dto.UploadNoteResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastReq = req
	s.lastFile = fileHeader
	return s.resp, nil
}

func newUploadTestRouter(svc *stubUploadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/upload", NewUploadController(svc).UploadNote)
	return router
}

// multipartBody builds an upload form, optionally without the file part
func multipartBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	if withFile {
		part, err := writer.CreateFormFile("file", "week1.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("pdf-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestUploadNote(t *testing.T) {
	svc := &stubUploadService{resp: &dto.UploadNoteResponse{Message: "File uploaded and note saved.", NoteID: 17}}
	router := newUploadTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"title":       "Week 1",
		"description": "Intro lecture",
		"course_id":   "102",
		"tag_id":      "3",
	}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastReq)
	assert.Equal(t, "Week 1", svc.lastReq.Title)
	assert.Equal(t, int64(102), svc.lastReq.CourseID)
	require.NotNil(t, svc.lastReq.TagID)
	assert.Equal(t, int64(3), *svc.lastReq.TagID)
	require.NotNil(t, svc.lastFile)
	assert.Equal(t, "week1.pdf", svc.lastFile.Filename)
}

func TestUploadNoteMissingFile(t *testing.T) {
	svc := &stubUploadService{}
	router := newUploadTestRouter(svc)

	body, contentType := multipartBody(t, map[string]string{
		"title":     "Week 1",
		"course_id": "102",
	}, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastReq, "service must not run without a file")
}

func TestUploadNoteMissingRequiredFields(t *testing.T) {
	router := newUploadTestRouter(&stubUploadService{})

	body, contentType := multipartBody(t, map[string]string{"description": "no title or course"}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadNoteStorageFailure(t *testing.T) {
	router := newUploadTestRouter(&stubUploadService{err: apperrors.ErrStorageUnavailable})

	body, contentType := multipartBody(t, map[string]string{
		"title":     "Week 1",
		"course_id": "102",
	}, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to store file")
}
