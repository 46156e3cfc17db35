package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"villa-be-svc/internal/auth"
	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

const bearerPrefix = "Bearer "

// TokenValidator turns an access token into the principal it was issued for
type TokenValidator interface {
	Validate(token string) (*auth.Principal, error)
}

// AuthRequired rejects requests without a valid bearer token and stores the
// principal in the request context
func AuthRequired(tokens TokenValidator, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), bearerPrefix)
		if !ok || strings.TrimSpace(token) == "" {
			log.WithFields(map[string]interface{}{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
			}).Warn("Unauthorized access: missing token")
			utils.UnauthorizedResponse(c, "Missing or malformed Authorization header")
			c.Abort()
			return
		}

		principal, err := tokens.Validate(strings.TrimSpace(token))
		if err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"path":       c.Request.URL.Path,
				"request_id": GetRequestID(c),
			}).Warn("Unauthorized access: invalid token")
			message := "Invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "Token has expired"
			}
			utils.UnauthorizedResponse(c, message)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(auth.WithPrincipal(c.Request.Context(), principal))
		c.Next()
	}
}

// RequireRole rejects authenticated callers that lack the role. It must run after AuthRequired.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := auth.PrincipalFromContext(c.Request.Context())
		if principal == nil {
			utils.UnauthorizedResponse(c, "Authentication required")
			c.Abort()
			return
		}
		if !principal.HasRole(role) {
			utils.ForbiddenResponse(c, "Insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
