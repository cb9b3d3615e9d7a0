package filestorage

import "context"

// StoredObject describes a blob written to storage
type StoredObject struct {
	Key string // object key inside the backend
	URL string // publicly fetchable URL for the object
}

// BlobStorage defines the interface for blob storage backends.
// Upload reads the file at localPath and stores it under key; the returned
// URL must be directly fetchable without further authentication.
type BlobStorage interface {
	Upload(ctx context.Context, localPath, key, contentType string) (*StoredObject, error)

	// Delete removes a stored object. Deleting a missing object is not an error;
	// the upload pipeline uses Delete to compensate a failed database phase.
	Delete(ctx context.Context, key string) error
}
