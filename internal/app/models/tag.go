package models

// Tag labels notes; linked to notes through the note_tags table
type Tag struct {
	ID   int64  `json:"tag_id" db:"tag_id"`
	Name string `json:"name" db:"name"`
}

// NoteTag is the note/tag association row
type NoteTag struct {
	NoteID int64 `json:"note_id" db:"note_id"`
	TagID  int64 `json:"tag_id" db:"tag_id"`
}
