package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kerem/notesphere/internal/app/models/dto"
	"github.com/kerem/notesphere/internal/app/services"
	"github.com/kerem/notesphere/internal/middleware"
)

// AuthController handles developer dashboard authentication
type AuthController struct {
	authService services.DeveloperAuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.DeveloperAuthService) *AuthController {
	return &AuthController{authService: authService}
}

// DeveloperLogin godoc
// @Summary Exchange the developer password for a dashboard token
// @Accept json
// @Produce json
// @Param credentials body dto.DeveloperLoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Router /auth/developer-login [post]
func (c *AuthController) DeveloperLogin(ctx *gin.Context) {
	var req dto.DeveloperLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Password is required"))
		return
	}

	resp, err := c.authService.Login(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
