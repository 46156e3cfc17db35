package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"villa-be-svc/docs"
	"villa-be-svc/internal/auth"
	"villa-be-svc/internal/config"
	"villa-be-svc/internal/database"
	"villa-be-svc/internal/handler"
	"villa-be-svc/internal/locale"
	"villa-be-svc/internal/metrics"
	"villa-be-svc/internal/middleware"
	"villa-be-svc/internal/repository"
	"villa-be-svc/internal/scheduler"
	"villa-be-svc/internal/service"
	"villa-be-svc/pkg/logger"
)

// @title Villa Resident Service API
// @version 1.0
// @description RESTful API for villa resident administration
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%s", cfg.Server.Port)
	docs.SwaggerInfo.Schemes = []string{"http"}

	// Initialize logger
	appLogger := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	appLogger.Info("Starting Villa Resident Service...")

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Resolve resident locale and time zone
	months, err := locale.NewMonthNames(cfg.Resident.Locale)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to resolve resident locale")
	}
	location := cfg.Resident.Location()
	appLogger.WithFields(map[string]interface{}{
		"locale":   months.Tag().String(),
		"timezone": location.String(),
	}).Info("Resident locale resolved")

	// Initialize database
	db, err := database.NewDatabase(&cfg.Database, appLogger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to database")
	}
	appLogger.Info("Database connected successfully")

	// Run auto migration
	if err := db.AutoMigrate(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run database migrations")
	}
	appLogger.Info("Database migrations completed successfully")

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry)

	// Initialize repositories
	residentRepo := repository.NewResidentRepository(db.DB)
	userRepo := repository.NewUserRepository(db.DB)
	logSchedulerRepo := repository.NewLogSchedulerRepository(db.DB)

	// Initialize services
	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpiresIn)
	userService := service.NewUserService(userRepo, appLogger)
	authService := service.NewAuthService(userService, tokens, appLogger)
	residentService := service.NewResidentService(residentRepo, userService, months, location, collector, appLogger)

	// Create bootstrap admin account
	if cfg.Auth.BootstrapAdminEmail != "" {
		if err := userService.EnsureAdmin(cfg.Auth.BootstrapAdminEmail, cfg.Auth.BootstrapAdminPassword); err != nil {
			appLogger.WithError(err).Fatal("Failed to create bootstrap admin")
		}
	}

	// Start birthday scheduler
	var birthdayScheduler *scheduler.BirthdayScheduler
	if cfg.Scheduler.Enabled {
		birthdayScheduler = scheduler.NewBirthdayScheduler(residentService, logSchedulerRepo, months, location, appLogger, cfg.Scheduler.BirthdayCronExpression)
		if err := birthdayScheduler.Start(); err != nil {
			appLogger.WithError(err).Fatal("Failed to start birthday scheduler")
		}
	}

	// Initialize Gin router
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg.CORS.Origins()))
	router.Use(middleware.LoggerMiddleware(appLogger))
	router.Use(middleware.Metrics(collector))
	router.Use(middleware.ErrorHandler(appLogger))
	router.NoRoute(middleware.NoRouteHandler())
	router.NoMethod(middleware.NoMethodHandler())

	// Setup routes
	handler.SetupRoutes(router, residentService, authService, tokens, registry, cfg.Auth.AdminRole, appLogger)

	// Create HTTP server
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Server starting...")
		appLogger.WithField("swagger", fmt.Sprintf("http://localhost:%s/swagger/index.html", cfg.Server.Port)).Info("Swagger documentation available")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	appLogger.WithField("port", cfg.Server.Port).Info("Server started successfully")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	if birthdayScheduler != nil {
		birthdayScheduler.Stop()
	}

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	// Close database connection
	if err := db.Close(); err != nil {
		appLogger.WithError(err).Error("Failed to close database connection")
	}

	appLogger.Info("Server exited successfully")
}
