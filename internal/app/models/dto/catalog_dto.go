package dto

// CreateCourseRequest is the body of POST /courses. CourseID is optional;
// when absent the database assigns one.
type CreateCourseRequest struct {
	CourseID     *int64 `json:"course_id"`
	Name         string `json:"name" binding:"required"`
	DepartmentID int64  `json:"department_id" binding:"required"`
}

// CreateTagRequest is the body of POST /tags
type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}
