package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"villa-be-svc/pkg/logger"
	"villa-be-svc/pkg/utils"
)

// ErrorHandler recovers from panics and answers with a 500 envelope
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(map[string]interface{}{
			"panic":      fmt.Sprint(recovered),
			"path":       c.Request.URL.Path,
			"request_id": GetRequestID(c),
		}).Error("Recovered from panic")

		utils.InternalServerErrorResponse(c, "Internal server error", nil)
		c.Abort()
	})
}

// NoRouteHandler answers unknown paths with a 404 envelope
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.NotFoundResponse(c, fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path))
	}
}

// NoMethodHandler answers known paths called with the wrong method with a 405 envelope
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		utils.ErrorResponse(c, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s not allowed", c.Request.Method), nil)
	}
}
