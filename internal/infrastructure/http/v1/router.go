// Package v1 provides HTTP API version 1.
package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/hr"
	"pulseboard/internal/domain/dashboard/inventory"
	"pulseboard/internal/domain/dashboard/production"
	"pulseboard/internal/domain/dashboard/purchasing"
	"pulseboard/internal/domain/dashboard/sales"
	"pulseboard/internal/infrastructure/http/v1/handlers"
	"pulseboard/internal/infrastructure/http/v1/middleware"
	"pulseboard/internal/infrastructure/storage/postgres"
	"pulseboard/internal/infrastructure/storage/postgres/report_repo"
	"pulseboard/pkg/logger"
)

// RouterConfig holds router configuration.
type RouterConfig struct {
	// Pool is the connection to the ERP database
	Pool *postgres.Pool

	// Dialect selects the SQL date expressions used by report queries
	Dialect period.Dialect

	// Logger for request logging
	Logger *logger.Logger

	// JWTValidator for token validation
	JWTValidator middleware.JWTValidator

	// CORSOrigins lists allowed browser origins; empty allows none
	CORSOrigins []string
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(corsMiddleware(cfg.CORSOrigins))
	router.Use(middleware.Compress())
	router.Use(middleware.ErrorHandler())

	// Health endpoints (no auth required)
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTValidator))

		registerDashboardRoutes(protected, cfg)
	}

	return router
}

// corsMiddleware configures browser access for the dashboard frontends.
func corsMiddleware(origins []string) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.HeaderRequestID, middleware.HeaderTraceID},
		ExposeHeaders:    []string{middleware.HeaderRequestID, middleware.HeaderTraceID},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(corsConfig)
}

// RoleDashboardViewer grants read access to every dashboard report.
const RoleDashboardViewer = "dashboard:viewer"

// registerDashboardRoutes registers dashboard report endpoints.
func registerDashboardRoutes(rg *gin.RouterGroup, cfg RouterConfig) {
	dashboard := rg.Group("/dashboard")
	dashboard.Use(middleware.RequireRole(RoleDashboardViewer))
	baseHandler := handlers.NewBaseHandler()

	// --- INVENTORY ---
	{
		repo := report_repo.NewInventoryRepo(cfg.Pool, cfg.Dialect)
		service := inventory.NewService(repo)
		handler := handlers.NewInventoryHandler(baseHandler, service)
		handler.RegisterRoutes(dashboard.Group("/inventory"))
	}

	// --- SALES ---
	{
		repo := report_repo.NewSalesRepo(cfg.Pool, cfg.Dialect)
		service := sales.NewService(repo)
		handler := handlers.NewSalesHandler(baseHandler, service)
		handler.RegisterRoutes(dashboard.Group("/sales"))
	}

	// --- PURCHASING ---
	{
		repo := report_repo.NewPurchasingRepo(cfg.Pool, cfg.Dialect)
		service := purchasing.NewService(repo)
		handler := handlers.NewPurchasingHandler(baseHandler, service)
		handler.RegisterRoutes(dashboard.Group("/purchasing"))
	}

	// --- PRODUCTION ---
	{
		repo := report_repo.NewProductionRepo(cfg.Pool, cfg.Dialect)
		service := production.NewService(repo)
		handler := handlers.NewProductionHandler(baseHandler, service)
		handler.RegisterRoutes(dashboard.Group("/production"))
	}

	// --- HR ---
	{
		repo := report_repo.NewHRRepo(cfg.Pool, cfg.Dialect)
		service := hr.NewService(repo)
		handler := handlers.NewHRHandler(baseHandler, service)
		handler.RegisterRoutes(dashboard.Group("/hr"))
	}
}
