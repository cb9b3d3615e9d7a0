package models

import "time"

// Review represents a user review on a note with a 1-5 rating
type Review struct {
	ID        int64     `json:"review_id" db:"review_id"`
	NoteID    int64     `json:"note_id" db:"note_id"`
	Content   string    `json:"content" db:"content"`
	Rating    int       `json:"rating" db:"rating"`
	IsDeleted bool      `json:"-" db:"is_deleted"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
