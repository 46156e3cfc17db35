package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"villa-be-svc/internal/metrics"
	"villa-be-svc/internal/middleware"
	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/logger"
)

// Routes sets up all API routes
func SetupRoutes(
	router *gin.Engine,
	residentService service.ResidentService,
	authService service.AuthService,
	tokens middleware.TokenValidator,
	gatherer prometheus.Gatherer,
	adminRole string,
	logger *logger.Logger,
) {
	// Initialize handlers
	residentHandler := NewResidentHandler(residentService, logger)
	authHandler := NewAuthHandler(authService, logger)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}

	requireAuth := middleware.AuthRequired(tokens, logger)
	requireAdmin := middleware.RequireRole(adminRole)

	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", HealthCheck)

		// Auth routes
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", requireAuth, authHandler.Me)
		}

		// Resident routes
		residents := v1.Group("/residents", requireAuth)
		{
			residents.POST("", requireAdmin, residentHandler.CreateResident)
			residents.GET("", residentHandler.ListResidents)
			residents.GET("/all", residentHandler.GetAllResidents)
			residents.GET("/filter", residentHandler.FilterByName)
			residents.GET("/birthdays", residentHandler.FilterByMonth)
			residents.GET("/age", residentHandler.FilterByAge)
			residents.GET("/export", requireAdmin, residentHandler.ExportResidents)
			residents.GET("/:id", residentHandler.GetResident)
			residents.DELETE("/:id", requireAdmin, residentHandler.DeleteResident)
		}
	}
}

// HealthCheck handles GET /api/v1/health
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/v1/health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"message": "Server is running",
		"service": "Villa Resident Service",
	})
}
