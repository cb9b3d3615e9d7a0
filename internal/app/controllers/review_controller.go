package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// ReviewController handles review operations
type ReviewController struct {
	reviewService services.ReviewService
}

// NewReviewController creates a new ReviewController
func NewReviewController(reviewService services.ReviewService) *ReviewController {
	return &ReviewController{reviewService: reviewService}
}

// GetReviews godoc
// @Summary List live reviews of a note, newest first
// @Produce json
// @Param id path int true "Note ID"
// @Success 200 {array} dto.ReviewResponse
// @Router /notes/{id}/reviews [get]
func (c *ReviewController) GetReviews(ctx *gin.Context) {
	noteID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	reviews, err := c.reviewService.GetReviews(ctx, noteID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}

// CreateReview godoc
// @Summary Submit a review for a note
// @Accept json
// @Produce json
// @Param id path int true "Note ID"
// @Param review body dto.CreateReviewRequest true "Review"
// @Success 201 {object} dto.SuccessResponse
// @Router /notes/{id}/reviews [post]
func (c *ReviewController) CreateReview(ctx *gin.Context) {
	noteID, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid note ID"))
		return
	}

	var req dto.CreateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid review data"))
		return
	}

	if _, err := c.reviewService.CreateReview(ctx, noteID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Review submitted"})
}

// UpdateReview godoc
// @Summary Edit a live review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param review body dto.UpdateReviewRequest true "Review"
// @Success 200 {object} dto.SuccessResponse
// @Router /reviews/{id} [put]
func (c *ReviewController) UpdateReview(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid review ID"))
		return
	}

	var req dto.UpdateReviewRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Invalid review data"))
		return
	}

	if err := c.reviewService.UpdateReview(ctx, id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review updated"})
}

// DeleteReview godoc
// @Summary Soft-delete a review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /reviews/{id} [delete]
func (c *ReviewController) DeleteReview(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid review ID"))
		return
	}

	if err := c.reviewService.DeleteReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review moved to trash"})
}

// RestoreReview godoc
// @Summary Restore a trashed review
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} dto.SuccessResponse
// @Router /restore-review/{id} [post]
func (c *ReviewController) RestoreReview(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeInvalidRequest, "Invalid review ID"))
		return
	}

	if err := c.reviewService.RestoreReview(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Review restored"})
}
