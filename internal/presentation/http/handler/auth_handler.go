package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/puwasa/pos-terminal/internal/application/service"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/request"
	"github.com/puwasa/pos-terminal/internal/presentation/http/dto/response"
)

// AuthHandler handles cashier login and logout.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the cashier against the billing backend and stores
// the session on the terminal.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	profile, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", profile)
}

// Logout drops the terminal session. The backend is notified best-effort.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context())
	response.OK(c, "Logged out", nil)
}

// GetProfile returns the logged-in cashier, location and register.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	response.OK(c, "Profile retrieved", h.authService.Profile())
}
