package venues

import (
	"github.com/gin-gonic/gin"
)

func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller, authRequired gin.HandlerFunc) {
	venueRoutes := rg.Group("/venues")
	venueRoutes.Use(authRequired)
	{
		venueRoutes.GET("", controller.List)          // GET /api/v1/venues
		venueRoutes.GET("/:id", controller.Get)       // GET /api/v1/venues/:id
		venueRoutes.POST("", controller.Create)       // POST /api/v1/venues
		venueRoutes.PATCH("/:id", controller.Update)  // PATCH /api/v1/venues/:id
		venueRoutes.DELETE("/:id", controller.Delete) // DELETE /api/v1/venues/:id
	}
}
