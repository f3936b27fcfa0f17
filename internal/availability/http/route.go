package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the availability listing under the fields group.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	g.GET("/fields/list_available", h.ListAvailable)
}
