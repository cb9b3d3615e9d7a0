package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// DeveloperController serves the developer dashboard's read-only views
type DeveloperController struct {
	statsService services.StatsService
}

// NewDeveloperController creates a new DeveloperController
func NewDeveloperController(statsService services.StatsService) *DeveloperController {
	return &DeveloperController{statsService: statsService}
}

// GetStats godoc
// @Summary Aggregate counters for the dashboard
// @Produce json
// @Success 200 {object} dto.StatsResponse
// @Router /stats [get]
func (c *DeveloperController) GetStats(ctx *gin.Context) {
	stats, err := c.statsService.GetStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// GetDeletedNotes godoc
// @Summary List trashed notes, newest-deleted first
// @Produce json
// @Success 200 {array} dto.DeletedNoteResponse
// @Router /deleted-notes [get]
func (c *DeveloperController) GetDeletedNotes(ctx *gin.Context) {
	notes, err := c.statsService.GetDeletedNotes(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notes)
}

// GetDeletedReviews godoc
// @Summary List trashed reviews, newest-deleted first
// @Produce json
// @Success 200 {array} dto.DeletedReviewResponse
// @Router /deleted-reviews [get]
func (c *DeveloperController) GetDeletedReviews(ctx *gin.Context) {
	reviews, err := c.statsService.GetDeletedReviews(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, reviews)
}
