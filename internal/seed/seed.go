package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/kerem/notesphere/internal/app/models"
	appRepos "github.com/kerem/notesphere/internal/app/repositories"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

// CreateDefaultData creates the default departments, courses and tags if
// they don't exist, so the frontend dropdowns have content on a fresh
// database.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	courseRepo := appRepos.NewCourseRepository(dbPool)
	tagRepo := appRepos.NewTagRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Departments/Courses/Tags)...")
	var finalErr error

	departments := []appModels.Department{
		{ID: 1, Name: "Computer Engineering"},
		{ID: 2, Name: "Electrical Engineering"},
		{ID: 3, Name: "Mathematics"},
	}
	for _, dept := range departments {
		// Departments have no crud surface, so they are inserted directly
		_, err := dbPool.Exec(ctx, `
			INSERT INTO departments (department_id, name)
			VALUES ($1, $2)
			ON CONFLICT (department_id) DO NOTHING
		`, dept.ID, dept.Name)
		if err != nil {
			lgr.Error().Err(err).Str("department", dept.Name).Msg("Error creating default department")
			finalErr = errors.Join(finalErr, err)
		}
	}

	courses := []appModels.Course{
		{ID: 101, Name: "Introduction to Programming", DepartmentID: 1},
		{ID: 102, Name: "Data Structures", DepartmentID: 1},
		{ID: 201, Name: "Circuit Theory", DepartmentID: 2},
		{ID: 301, Name: "Calculus I", DepartmentID: 3},
	}
	for i := range courses {
		err := courseRepo.Create(ctx, &courses[i])
		if err != nil && !errors.Is(err, apperrors.ErrCourseExists) {
			lgr.Error().Err(err).Str("course", courses[i].Name).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	for _, name := range []string{"Lecture Notes", "Exam Prep", "Homework", "Summary"} {
		tag := appModels.Tag{Name: name}
		err := tagRepo.Create(ctx, &tag)
		if err != nil && !errors.Is(err, apperrors.ErrTagExists) {
			lgr.Error().Err(err).Str("tag", name).Msg("Error creating default tag")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Default data check complete.")
	}
	return finalErr
}
