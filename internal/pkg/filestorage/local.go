package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kerem/notesphere/internal/pkg/logger"
)

// LocalStorage stores blobs on the local filesystem. It is the development
// and test backend; the served URL space is mounted by the HTTP server.
type LocalStorage struct {
	basePath string // root directory for stored objects
	baseURL  string // prepended to object keys to build accessible URLs
}

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// baseURL is optional; without it returned URLs are relative paths.
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", basePath).Msg("Failed to create storage directory")
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}

	return &LocalStorage{
		basePath: basePath,
		baseURL:  baseURL,
	}, nil
}

// Upload copies the file at localPath into the storage tree under key
func (ls *LocalStorage) Upload(_ context.Context, localPath, key, _ string) (*StoredObject, error) {
	src, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open source file: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dstPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create object directory: %w", err)
	}

	dst, err := os.Create(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		// Remove the partially written object
		_ = os.Remove(dstPath)
		return nil, fmt.Errorf("failed to save file content: %w", err)
	}

	objectURL := key
	if ls.baseURL != "" {
		objectURL = strings.TrimRight(ls.baseURL, "/") + "/" + key
	}

	logger.Debug().Str("key", key).Str("url", objectURL).Msg("File stored locally")
	return &StoredObject{Key: key, URL: objectURL}, nil
}

// Delete removes a stored object. Missing objects are treated as deleted.
func (ls *LocalStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return nil
	}

	fullPath := filepath.Join(ls.basePath, filepath.FromSlash(key))
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete stored object %s: %w", key, err)
	}
	return nil
}

// BasePath returns the storage root so the server can mount it for serving
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}
