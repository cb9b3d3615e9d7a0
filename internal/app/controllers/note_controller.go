package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// NoteController handles note browsing and lifecycle operations
type NoteController struct {
	noteService services.NoteService
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService) *NoteController {
	return &NoteController{noteService: noteService}
}

// GetNotes godoc
// @Summary List live notes with optional filters
// @Produce json
// @Param department_id query int false "Filter by department"
// @Param course_id query int false "Filter by course"
// @Param tag_id query int false "Filter by tag"
// @Param sort_by query string false "Sort order: date or rating"
// @Success 200 {array} dto.NoteSummaryResponse
// @Router /notes [get]
func (c *NoteController) GetNotes(ctx *gin.Context) {
	var filter dto.NoteFilterRequest
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid filter parameters"))
		return
	}

	notes, err := c.noteService.ListNotes(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// GetNoteByID godoc
// @Summary Get a live note with course, tags, files and average rating
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.NoteDetailResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /notes/{id} [get]
func (c *NoteController) GetNoteByID(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	note, err := c.noteService.GetNoteByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, note)
}

// UpdateDescription godoc
// @Summary Update a note's description
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param body body dto.UpdateDescriptionRequest true "New description"
// @Success 200 {object} dto.SuccessResponse
// @Router /notes/{id}/description [put]
func (c *NoteController) UpdateDescription(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	var req dto.UpdateDescriptionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Description is required"))
		return
	}

	if err := c.noteService.UpdateDescription(ctx, id, req.Description); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Description updated"})
}

// DeleteNote godoc
// @Summary Soft-delete a note
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /notes/{id} [delete]
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	if err := c.noteService.DeleteNote(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Note moved to trash"})
}

// RestoreNote godoc
// @Summary Restore a trashed note
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /restore-note/{id} [post]
func (c *NoteController) RestoreNote(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	if err := c.noteService.RestoreNote(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Note restored"})
}
