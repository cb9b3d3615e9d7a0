package dto

import "time"

// Sort orders accepted by the note listing
const (
	SortByDate   = "date"
	SortByRating = "rating"
)

// NoteFilterRequest holds the optional listing filters. All filters are
// conjunctive; SortBy is allow-listed through the binding tag.
type NoteFilterRequest struct {
	DepartmentID *int64 `form:"department_id"`
	CourseID     *int64 `form:"course_id"`
	TagID        *int64 `form:"tag_id"`
	SortBy       string `form:"sort_by" binding:"omitempty,oneof=date rating"`
}

// NoteSummaryResponse is one row of the note listing. Tags and AvgRating are
// nil when the note has no tags or no live reviews.
type NoteSummaryResponse struct {
	NoteID     int64    `json:"note_id"`
	Title      string   `json:"title"`
	CourseName string   `json:"course_name"`
	Tags       *string  `json:"tags"`
	AvgRating  *float64 `json:"avg_rating"`
}

// NoteDetailResponse is the full note view with joined file URLs
type NoteDetailResponse struct {
	NoteID      int64     `json:"note_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	CourseName  string    `json:"course_name"`
	Tags        *string   `json:"tags"`
	FileURLs    *string   `json:"file_urls"`
	AvgRating   *float64  `json:"avg_rating"`
}

// UpdateDescriptionRequest is the body of PUT /notes/:id/description
type UpdateDescriptionRequest struct {
	Description string `json:"description" binding:"required"`
}

// UploadNoteRequest is the multipart form of POST /upload (file part aside)
type UploadNoteRequest struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	CourseID    int64  `form:"course_id" binding:"required"`
	TagID       *int64 `form:"tag_id"`
}

// UploadNoteResponse is returned on a successful upload
type UploadNoteResponse struct {
	Message string `json:"message"`
	NoteID  int64  `json:"note_id"`
}
