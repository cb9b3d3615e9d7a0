package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
	"github.com/kerem/notesphere/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{db: db}
}

// List retrieves courses, optionally restricted to one department
func (r *CourseRepository) List(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	query := `
		SELECT course_id, name, department_id
		FROM courses
	`
	var args []interface{}
	if departmentID != nil {
		query += ` WHERE department_id = $1`
		args = append(args, *departmentID)
	}
	query += ` ORDER BY name`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Name, &course.DepartmentID); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Create inserts a new course. When course.ID is non-zero it is used as the
// explicit id (the dashboard form allows choosing course codes), otherwise
// the database assigns one.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	var err error
	if course.ID > 0 {
		_, err = r.db.Exec(ctx, `
			INSERT INTO courses (course_id, name, department_id)
			VALUES ($1, $2, $3)
		`, course.ID, course.Name, course.DepartmentID)
	} else {
		err = r.db.QueryRow(ctx, `
			INSERT INTO courses (name, department_id)
			VALUES ($1, $2)
			RETURNING course_id
		`, course.Name, course.DepartmentID).Scan(&course.ID)
	}
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrDepartmentNotFound
		}
		return err
	}
	return nil
}
