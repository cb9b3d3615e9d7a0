package services

import (
	"context"
	"strings"

	"github.com/kerem/notesphere/internal/app/models"
	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/pkg/apperrors"
)

// DepartmentStore is the repository surface for departments
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
}

// CourseStore is the repository surface for courses
type CourseStore interface {
	List(ctx context.Context, departmentID *int64) ([]*models.Course, error)
	Create(ctx context.Context, course *models.Course) error
}

// TagStore is the repository surface for tags
type TagStore interface {
	GetAll(ctx context.Context) ([]*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
}

// CatalogService serves the department/course/tag dropdowns and the
// dashboard's add-course and add-tag forms.
type CatalogService interface {
	GetDepartments(ctx context.Context) ([]*models.Department, error)
	GetCourses(ctx context.Context, departmentID *int64) ([]*models.Course, error)
	GetTags(ctx context.Context) ([]*models.Tag, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*models.Tag, error)
}

type catalogService struct {
	departments DepartmentStore
	courses     CourseStore
	tags        TagStore
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(departments DepartmentStore, courses CourseStore, tags TagStore) CatalogService {
	return &catalogService{
		departments: departments,
		courses:     courses,
		tags:        tags,
	}
}

// GetDepartments returns all departments
func (s *catalogService) GetDepartments(ctx context.Context) ([]*models.Department, error) {
	return s.departments.GetAll(ctx)
}

// GetCourses returns courses, optionally restricted to one department
func (s *catalogService) GetCourses(ctx context.Context, departmentID *int64) ([]*models.Course, error) {
	return s.courses.List(ctx, departmentID)
}

// GetTags returns all tags
func (s *catalogService) GetTags(ctx context.Context) ([]*models.Tag, error) {
	return s.tags.GetAll(ctx)
}

// CreateCourse validates and stores a new course
func (s *catalogService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewBadRequestError("course name cannot be empty")
	}
	if req.DepartmentID <= 0 {
		return nil, apperrors.NewBadRequestError("department id must be positive")
	}

	course := &models.Course{
		Name:         strings.TrimSpace(req.Name),
		DepartmentID: req.DepartmentID,
	}
	if req.CourseID != nil {
		course.ID = *req.CourseID
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// CreateTag validates and stores a new tag
func (s *catalogService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*models.Tag, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, apperrors.NewBadRequestError("tag name cannot be empty")
	}

	tag := &models.Tag{Name: strings.TrimSpace(req.Name)}
	if err := s.tags.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}
