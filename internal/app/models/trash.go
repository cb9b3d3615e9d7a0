package models

import "time"

// TrashEntry records a soft-deleted note. A row exists here exactly while
// the note's is_deleted flag is set; restore removes it again.
type TrashEntry struct {
	NoteID    int64     `json:"note_id" db:"note_id"`
	DeletedAt time.Time `json:"deleted_at" db:"deleted_at"`
}

// ReviewTrashEntry records a soft-deleted review, same contract as TrashEntry.
type ReviewTrashEntry struct {
	ReviewID  int64     `json:"review_id" db:"review_id"`
	DeletedAt time.Time `json:"deleted_at" db:"deleted_at"`
}
