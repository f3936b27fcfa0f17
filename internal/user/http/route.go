package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers authentication routes.
func RegisterRoutes(g *gin.RouterGroup, h *Handler) {
	group := g.Group("/auth")
	{
		group.POST("/register", h.Register)
		group.POST("/login", h.Login)
	}
}
