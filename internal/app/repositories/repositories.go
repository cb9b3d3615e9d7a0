package repositories

import (
	"github.com/kerem/notesphere/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	DepartmentRepository *DepartmentRepository
	CourseRepository     *CourseRepository
	TagRepository        *TagRepository
	NoteRepository       *NoteRepository
	ReviewRepository     *ReviewRepository
	StatsRepository      *StatsRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		DepartmentRepository: NewDepartmentRepository(database.Pool),
		CourseRepository:     NewCourseRepository(database.Pool),
		TagRepository:        NewTagRepository(database.Pool),
		NoteRepository:       NewNoteRepository(database),
		ReviewRepository:     NewReviewRepository(database),
		StatsRepository:      NewStatsRepository(database.Pool),
	}
}
