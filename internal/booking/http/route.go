package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. All of them are tied to the
// authenticated user.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/booking", authMiddleware)
	{
		group.POST("/create", h.Create)
		group.PUT("/:id", h.Amend)
		group.GET("/list-booking", h.ListMine)
		group.GET("/:id/bills", h.ListBills)
	}
}
