package handler

import (
	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/request"
	"github.com/bizscale/bizscale-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles session-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login issues a session token. The body may be empty under the auto-login
// policy.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	}

	token, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", gin.H{"token": token})
}
