package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers field routes. Listing and detail are public;
// mutations require authentication.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/fields")
	{
		group.GET("/list_fields", h.List)
		group.GET("/detail_field/:id", h.Get)
		group.POST("/create-field", authMiddleware, h.Create)
		group.PUT("/update_field/:id", authMiddleware, h.Update)
		group.DELETE("/delete_field/:id", authMiddleware, h.Delete)
	}
}
