package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/Booking")

	// All booking routes require authentication; finer-grained access
	// (owner vs admin) is decided per handler.
	group.Use(authMiddleware)
	{
		group.GET("/List", h.List)
		group.POST("", h.Create)
		group.GET("/:id", h.Get)
		group.GET("/Detail/:id", h.Get)
		group.GET("/User/:id", h.ByUser)
		group.GET("/Stats/:id", h.Stats)
		group.PUT("/:id", h.Update)
		group.DELETE("/:id", h.Cancel)
	}
}
