package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers location routes. Mutations require authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/locations")
	{
		group.GET("/list-location", h.List)
		group.POST("/create-location", authMiddleware, h.Create)
		group.PUT("/update_location/:id", authMiddleware, h.Update)
		group.DELETE("/delete_location/:id", authMiddleware, h.Delete)
	}
}
