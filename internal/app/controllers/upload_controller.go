package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// UploadController handles note file uploads
type UploadController struct {
	uploadService services.UploadService
}

// NewUploadController creates a new UploadController
func NewUploadController(uploadService services.UploadService) *UploadController {
	return &UploadController{uploadService: uploadService}
}

// UploadNote godoc
// @Summary Upload a note file with its metadata
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Note file"
// @Param title formData string true "Note title"
// @Param description formData string false "Note description"
// @Param course_id formData int true "Course ID"
// @Param tag_id formData int false "Tag ID"
// @Success 201 {object} dto.UploadNoteResponse
// @Router /upload [post]
func (c *UploadController) UploadNote(ctx *gin.Context) {
	var req dto.UploadNoteRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid upload form"))
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "No file uploaded"))
		return
	}

	resp, err := c.uploadService.UploadNote(ctx, &req, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, resp)
}
