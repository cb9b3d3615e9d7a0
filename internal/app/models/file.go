package models

import "time"

// File represents a stored file attached to a note. FileURL is the public
// blob-storage URL; StorageKey is the object key needed to delete the blob.
type File struct {
	ID         int64     `json:"file_id" db:"file_id"`
	NoteID     int64     `json:"note_id" db:"note_id"`
	FileName   string    `json:"file_name" db:"file_name"`
	FileURL    string    `json:"file_url" db:"file_url"`
	StorageKey string    `json:"-" db:"storage_key"`
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"`
}
