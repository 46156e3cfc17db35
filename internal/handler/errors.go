package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/utils"
)

// respondServiceError maps service errors to the HTTP envelope:
// invalid argument 400, not found 404, bad credentials 401, anything else 500
func respondServiceError(c *gin.Context, err error, fallback string) {
	_ = c.Error(err)

	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		utils.BadRequestResponse(c, err.Error(), err)
	case errors.Is(err, service.ErrResidentNotFound):
		utils.NotFoundResponse(c, "Resident not found")
	case errors.Is(err, service.ErrUsernameNotFound):
		utils.NotFoundResponse(c, "User not found")
	case errors.Is(err, service.ErrInvalidCredentials):
		utils.UnauthorizedResponse(c, "Invalid email or password")
	default:
		utils.InternalServerErrorResponse(c, fallback, err)
	}
}
