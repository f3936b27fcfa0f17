package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers price rule routes. Listing is public;
// mutations require authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/prices")
	{
		group.POST("/create-price", authMiddleware, h.Create)
		group.GET("/list-price", h.List)
		group.PUT("/update-price/:id", authMiddleware, h.Update)
		group.DELETE("/delete-price/:id", authMiddleware, h.Delete)
	}
}
