package models

// Course represents a course offered by a department
type Course struct {
	ID           int64  `json:"course_id" db:"course_id"`
	Name         string `json:"name" db:"name"`
	DepartmentID int64  `json:"department_id" db:"department_id"`
}
