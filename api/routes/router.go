// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"venuehub/internal/auth"
	"venuehub/internal/events"
	"venuehub/internal/shared/config"
	"venuehub/internal/shared/database"
	"venuehub/internal/shared/middleware"
	"venuehub/internal/venues"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB) *Router {
	return &Router{
		config: cfg,
		db:     db,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Shared auth middleware, backed by the Redis token denylist
	tokenStore := auth.NewTokenStore(r.db.GetRedisClient())
	authRequired := middleware.JWTAuth(r.config, tokenStore)

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api, tokenStore, authRequired)
		r.setupVenueRoutes(api, authRequired)
		r.setupEventRoutes(api, authRequired)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venuehub-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venuehub-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup, tokenStore *auth.TokenStore, authRequired gin.HandlerFunc) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, tokenStore, r.config)
	authController := auth.NewController(authService)

	auth.SetupAuthRoutes(rg, authController, authRequired)
}

// setupVenueRoutes configures venue management routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo)
	venueController := venues.NewController(venueService)

	venues.SetupVenueRoutes(rg, venueController, authRequired)
}

// setupEventRoutes configures event management routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup, authRequired gin.HandlerFunc) {
	eventRepo := events.NewRepository(r.db.GetPostgreSQL())
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	eventService := events.NewService(eventRepo, venueRepo)
	eventController := events.NewController(eventService)

	events.SetupEventRoutes(rg, eventController, authRequired)
}
