package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// CatalogController serves departments, courses and tags
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// GetDepartments godoc
// @Summary List departments
// @Produce json
// @Success 200 {array} models.Department
// @Router /departments [get]
func (c *CatalogController) GetDepartments(ctx *gin.Context) {
	departments, err := c.catalogService.GetDepartments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, departments)
}

// GetCourses godoc
// @Summary List courses, optionally filtered by department
// @Produce json
// @Param department_id query int false "Department ID"
// @Success 200 {array} models.Course
// @Router /courses [get]
func (c *CatalogController) GetCourses(ctx *gin.Context) {
	var departmentID *int64
	if raw := ctx.Query("department_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			ctx.JSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid department id"))
			return
		}
		departmentID = &id
	}

	courses, err := c.catalogService.GetCourses(ctx, departmentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetTags godoc
// @Summary List tags
// @Produce json
// @Success 200 {array} models.Tag
// @Router /tags [get]
func (c *CatalogController) GetTags(ctx *gin.Context) {
	tags, err := c.catalogService.GetTags(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, tags)
}

// CreateCourse godoc
// @Summary Create a course
// @Accept json
// @Produce json
// @Param course body dto.CreateCourseRequest true "Course"
// @Success 201 {object} models.Course
// @Router /courses [post]
func (c *CatalogController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid course payload"))
		return
	}

	course, err := c.catalogService.CreateCourse(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// CreateTag godoc
// @Summary Create a tag
// @Accept json
// @Produce json
// @Param tag body dto.CreateTagRequest true "Tag"
// @Success 201 {object} models.Tag
// @Router /tags [post]
func (c *CatalogController) CreateTag(ctx *gin.Context) {
	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid tag payload"))
		return
	}

	tag, err := c.catalogService.CreateTag(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, tag)
}
