package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the facility routes. The "Faciliti" spelling matches
// the path the existing client was built against.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/Faciliti")

	// === Authenticated Routes ===
	group.Use(authMiddleware)
	{
		group.GET("/List", h.List)
		group.GET("/Detail/:id", h.Detail)
		group.GET("/:id/Photo", h.Photo)
		group.GET("/:id/Photo/Thumbnail", h.Thumbnail)
	}

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(adminMiddleware)
	{
		adminGroup.POST("", h.Create)
		adminGroup.PUT("/:id", h.Update)
		adminGroup.DELETE("/:id", h.Delete)
		adminGroup.PUT("/:id/Photo", h.UploadPhoto)
	}
}
