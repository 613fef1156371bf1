package events

import (
	"github.com/gin-gonic/gin"
)

func SetupEventRoutes(rg *gin.RouterGroup, controller *Controller, authRequired gin.HandlerFunc) {
	eventRoutes := rg.Group("/events")
	eventRoutes.Use(authRequired)
	{
		eventRoutes.GET("", controller.List)          // GET /api/v1/events
		eventRoutes.GET("/:id", controller.Get)       // GET /api/v1/events/:id
		eventRoutes.POST("", controller.Create)       // POST /api/v1/events
		eventRoutes.PATCH("/:id", controller.Update)  // PATCH /api/v1/events/:id
		eventRoutes.DELETE("/:id", controller.Delete) // DELETE /api/v1/events/:id
	}
}
