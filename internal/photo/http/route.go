package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers photo routes. Uploads and deletes require
// authentication; serving is public.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	g.POST("/fields/:id/photos", authMiddleware, h.Upload)
	g.GET("/fields/:id/photos", h.ListByField)

	photos := g.Group("/photos")
	{
		photos.GET("/:id", h.Serve)
		photos.GET("/:id/thumbnail", h.ServeThumbnail)
		photos.DELETE("/:id", authMiddleware, h.Delete)
	}
}
