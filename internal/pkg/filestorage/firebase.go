package filestorage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	retry "github.com/avast/retry-go"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/kerem/notesphere/internal/pkg/logger"
)

// FirebaseConfig holds the settings for the Firebase Storage backend
type FirebaseConfig struct {
	Bucket string
	// Endpoint defaults to the public Firebase Storage host; tests point it
	// at a local server.
	Endpoint      string
	AuthToken     string
	UploadTimeout time.Duration
	MaxAttempts   uint
}

// FirebaseStorage stores blobs in a Firebase Storage bucket through its REST
// API. Each uploaded object gets a generated download token embedded in the
// returned URL, which is what makes the URL publicly fetchable.
type FirebaseStorage struct {
	config FirebaseConfig
	client *resty.Client
}

// NewFirebaseStorage creates a Firebase Storage client
func NewFirebaseStorage(config FirebaseConfig) *FirebaseStorage {
	if config.Endpoint == "" {
		config.Endpoint = "https://firebasestorage.googleapis.com"
	}
	if config.UploadTimeout <= 0 {
		config.UploadTimeout = 30 * time.Second
	}
	if config.MaxAttempts == 0 {
		config.MaxAttempts = 3
	}

	client := resty.New().
		SetBaseURL(strings.TrimRight(config.Endpoint, "/")).
		SetTimeout(config.UploadTimeout)
	if config.AuthToken != "" {
		client.SetAuthToken(config.AuthToken)
	}

	return &FirebaseStorage{
		config: config,
		client: client,
	}
}

// Upload stores the file under key and attaches a fresh download token.
// Transient failures are retried with exponential backoff; client errors
// fail immediately.
func (fs *FirebaseStorage) Upload(ctx context.Context, localPath, key, contentType string) (*StoredObject, error) {
	downloadToken := uuid.New().String()

	if err := retry.Do(
		func() error {
			if err := fs.uploadObject(ctx, localPath, key, contentType); err != nil {
				return err
			}
			return fs.setDownloadToken(ctx, key, downloadToken)
		},
		retry.Context(ctx),
		retry.Attempts(fs.config.MaxAttempts),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
	); err != nil {
		logger.Error().Err(err).Str("key", key).Msg("Blob upload failed")
		return nil, err
	}

	objectURL := fmt.Sprintf("%s/v0/b/%s/o/%s?alt=media&token=%s",
		strings.TrimRight(fs.config.Endpoint, "/"),
		fs.config.Bucket,
		url.PathEscape(key),
		downloadToken,
	)

	logger.Info().Str("key", key).Msg("Blob uploaded")
	return &StoredObject{Key: key, URL: objectURL}, nil
}

// uploadObject performs the media upload request
func (fs *FirebaseStorage) uploadObject(ctx context.Context, localPath, key, contentType string) error {
	// Re-open per attempt so retries send the full body again
	file, err := os.Open(localPath)
	if err != nil {
		return retry.Unrecoverable(fmt.Errorf("failed to open file for upload: %w", err))
	}
	defer file.Close()

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := fs.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetQueryParams(map[string]string{
			"uploadType": "media",
			"name":       key,
		}).
		SetBody(file).
		Post(fmt.Sprintf("/v0/b/%s/o", fs.config.Bucket))
	if err != nil {
		return fmt.Errorf("storage upload request failed: %w", err)
	}
	return checkStorageResponse(resp, "upload")
}

// setDownloadToken attaches the firebaseStorageDownloadTokens metadata to the object
func (fs *FirebaseStorage) setDownloadToken(ctx context.Context, key, token string) error {
	resp, err := fs.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"metadata": map[string]string{
				"firebaseStorageDownloadTokens": token,
			},
		}).
		Patch(fmt.Sprintf("/v0/b/%s/o/%s", fs.config.Bucket, url.PathEscape(key)))
	if err != nil {
		return fmt.Errorf("storage metadata request failed: %w", err)
	}
	return checkStorageResponse(resp, "set token")
}

// Delete removes the object; a missing object counts as deleted
func (fs *FirebaseStorage) Delete(ctx context.Context, key string) error {
	resp, err := fs.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/v0/b/%s/o/%s", fs.config.Bucket, url.PathEscape(key)))
	if err != nil {
		return fmt.Errorf("storage delete request failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil
	}
	return checkStorageResponse(resp, "delete")
}

// checkStorageResponse converts non-success statuses into errors. Server
// errors and rate limiting stay retryable; other client errors do not.
func checkStorageResponse(resp *resty.Response, op string) error {
	code := resp.StatusCode()
	switch {
	case code >= 200 && code < 300:
		return nil
	case code >= 500 || code == http.StatusTooManyRequests:
		return fmt.Errorf("storage %s failed with status %d: %s", op, code, resp.String())
	default:
		return retry.Unrecoverable(fmt.Errorf("storage %s rejected with status %d: %s", op, code, resp.String()))
	}
}
