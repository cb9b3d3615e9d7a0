package dto

import "time"

// CourseFileCount is one row of the files-per-course aggregation
type CourseFileCount struct {
	CourseName string `json:"course_name"`
	FileCount  int64  `json:"file_count"`
}

// DepartmentFileCount is one row of the files-per-department aggregation
type DepartmentFileCount struct {
	DepartmentName string `json:"department_name"`
	FileCount      int64  `json:"file_count"`
}

// StatsResponse is the developer dashboard aggregate view. The per-course
// and per-department counts only see files attached to live notes.
type StatsResponse struct {
	TotalNotes         int64                 `json:"total_notes"`
	TotalFiles         int64                 `json:"total_files"`
	FilesPerCourse     []CourseFileCount     `json:"files_per_course"`
	FilesPerDepartment []DepartmentFileCount `json:"files_per_department"`
}

// DeletedNoteResponse is one trashed note with its deletion timestamp
type DeletedNoteResponse struct {
	NoteID    int64     `json:"note_id"`
	Title     string    `json:"title"`
	DeletedAt time.Time `json:"deleted_at"`
}

// DeletedReviewResponse is one trashed review joined with its note title
type DeletedReviewResponse struct {
	ReviewID  int64     `json:"review_id"`
	NoteTitle string    `json:"note_title"`
	Content   string    `json:"content"`
	Rating    int       `json:"rating"`
	DeletedAt time.Time `json:"deleted_at"`
}
