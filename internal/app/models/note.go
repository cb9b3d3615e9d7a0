package models

import "time"

// Note represents an uploaded set of course notes.
// A note is live when IsDeleted is false and no trash row references it;
// the soft-delete transitions keep the two in sync.
type Note struct {
	ID          int64     `json:"note_id" db:"note_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	CourseID    int64     `json:"course_id" db:"course_id"`
	IsDeleted   bool      `json:"-" db:"is_deleted"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
