package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers schedule window routes and the field-slot
// routes, mirroring the public API layout.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/schedules")
	{
		group.POST("/schedule/create", authMiddleware, h.Create)
		group.GET("/schedule/list", h.List)
		group.PUT("/schedule/update/:id", authMiddleware, h.Update)

		group.GET("/schedule_type/list", authMiddleware, h.ListSlots)
		group.POST("/schedule_type/create", authMiddleware, h.CreateSlot)
		group.PUT("/schedule_type/update/:id", authMiddleware, h.UpdateSlot)
	}
}
