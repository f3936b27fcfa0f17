package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers field-type routes under the fields group,
// mirroring the public API layout.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/fields")
	{
		group.GET("/field-type", h.List)
		group.POST("/create/type_field", authMiddleware, h.Create)
		group.PUT("/update/type_field/:id", authMiddleware, h.Update)
		group.DELETE("/delete/type_field/:id", authMiddleware, h.Delete)
	}
}
