package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
)

// HealthController answers the frontend's reachability probe
type HealthController struct{}

// NewHealthController creates a new HealthController
func NewHealthController() *HealthController {
	return &HealthController{}
}

// Test godoc
// @Summary Reachability probe
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /test [get]
func (c *HealthController) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "API is working!"})
}
