package auth

import (
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all auth routes
func SetupAuthRoutes(rg *gin.RouterGroup, controller *Controller, authRequired gin.HandlerFunc) {
	// Public routes (no authentication required)
	rg.POST("/login", controller.Login)
	rg.POST("/register", controller.Register)

	// Protected routes (authentication required)
	protected := rg.Group("")
	protected.Use(authRequired)
	{
		protected.GET("/me", controller.Me)
		protected.POST("/logout", controller.Logout)
	}
}
