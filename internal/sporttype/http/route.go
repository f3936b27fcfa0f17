package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers sport-type routes under the fields group,
// mirroring the public API layout.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/fields")
	{
		group.GET("/list/sport_type", h.List)
		group.POST("/create/sport_type", authMiddleware, h.Create)
		group.PUT("/update/sport_type/:id", authMiddleware, h.Update)
		group.DELETE("/delete/sport_type/:id", authMiddleware, h.Delete)
	}
}
