package filestorage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempBlob(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob.pdf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestFirebaseStorage(endpoint string) *FirebaseStorage {
	return NewFirebaseStorage(FirebaseConfig{
		Bucket:        "test-bucket",
		Endpoint:      endpoint,
		UploadTimeout: 5 * time.Second,
		MaxAttempts:   3,
	})
}

func TestFirebaseUpload(t *testing.T) {
	var uploads, patches atomic.Int32
	var patchedToken string
	var uploadedBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			uploads.Add(1)
			assert.Equal(t, "/v0/b/test-bucket/o", r.URL.Path)
			assert.Equal(t, "media", r.URL.Query().Get("uploadType"))
			assert.Equal(t, "notes/1700000000-week1.pdf", r.URL.Query().Get("name"))
			body, readErr := io.ReadAll(r.Body)
			require.NoError(t, readErr)
			uploadedBody = string(body)
			w.WriteHeader(http.StatusOK)
		case http.MethodPatch:
			patches.Add(1)
			var payload struct {
				Metadata map[string]string `json:"metadata"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			patchedToken = payload.Metadata["firebaseStorageDownloadTokens"]
			w.WriteHeader(http.StatusOK)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	stored, err := fs.Upload(context.Background(), writeTempBlob(t, "pdf-bytes"), "notes/1700000000-week1.pdf", "application/pdf")
	require.NoError(t, err)

	assert.Equal(t, int32(1), uploads.Load())
	assert.Equal(t, int32(1), patches.Load())
	assert.Equal(t, "pdf-bytes", uploadedBody)
	assert.NotEmpty(t, patchedToken)

	assert.Equal(t, "notes/1700000000-week1.pdf", stored.Key)
	assert.Equal(t,
		server.URL+"/v0/b/test-bucket/o/notes%2F1700000000-week1.pdf?alt=media&token="+patchedToken,
		stored.URL,
		"public URL embeds the escaped key and the download token")
}

func TestFirebaseUploadRetriesServerErrors(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			if attempts.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	_, err := fs.Upload(context.Background(), writeTempBlob(t, "x"), "notes/a.pdf", "")
	require.NoError(t, err)
	assert.Equal(t, int32(2), attempts.Load(), "a 500 response is retried")
}

func TestFirebaseUploadDoesNotRetryClientErrors(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	_, err := fs.Upload(context.Background(), writeTempBlob(t, "x"), "notes/a.pdf", "")
	require.Error(t, err)
	assert.Equal(t, int32(1), attempts.Load(), "a 403 response must not be retried")
}

func TestFirebaseUploadGivesUpAfterMaxAttempts(t *testing.T) {
	var attempts atomic.Int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	_, err := fs.Upload(context.Background(), writeTempBlob(t, "x"), "notes/a.pdf", "")
	require.Error(t, err)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestFirebaseDeleteTreatsMissingObjectAsDeleted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	assert.NoError(t, fs.Delete(context.Background(), "notes/gone.pdf"))
}

func TestFirebaseUploadMissingLocalFile(t *testing.T) {
	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fs := newTestFirebaseStorage(server.URL)
	_, err := fs.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"), "notes/a.pdf", "")
	require.Error(t, err)
	assert.Zero(t, attempts.Load(), "nothing is sent when the local file cannot be opened")
}
