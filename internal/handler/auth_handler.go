package handler

import (
	"github.com/gin-gonic/gin"

	"villa-be-svc/internal/models/response"
	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

// AuthHandler handles login and principal lookups
type AuthHandler struct {
	authService service.AuthService
	logger      *logger.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, logger *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"admin@villa.dev"`
	Password string `json:"password" binding:"required" example:"changeme"`
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Exchange email and password for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=response.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Invalid email or password"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid login request body")
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	utils.SuccessResponse(c, "Login successful", token)
}

// Me handles GET /api/v1/auth/me
// @Summary Current principal
// @Description Get the username and roles of the authenticated caller
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.PrincipalResponse} "Principal retrieved successfully"
// @Failure 401 {object} utils.APIResponse "Unauthorized"
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal := h.authService.Authenticated(c.Request.Context())
	if principal == nil {
		utils.UnauthorizedResponse(c, "Authentication required")
		return
	}

	utils.SuccessResponse(c, "Principal retrieved successfully", response.PrincipalResponse{
		Username: principal.Username,
		Roles:    principal.Roles,
	})
}
