package models

// Department represents an academic department
type Department struct {
	ID   int64  `json:"department_id" db:"department_id"`
	Name string `json:"name" db:"name"`
}
