package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers user routes, including login and registration.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware, rateLimitMiddleware gin.HandlerFunc) {
	group := g.Group("/User")

	// === Public Routes (rate limited) ===
	group.POST("/Login", rateLimitMiddleware, h.Login)
	group.POST("/Register", rateLimitMiddleware, h.Register)

	// === Authenticated Routes ===
	group.GET("/Me", authMiddleware, h.Me)

	// === Administration Routes ===
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.GET("", h.List)
		adminGroup.POST("", h.Register)
		adminGroup.GET("/:id", h.Get)
		adminGroup.PUT("/:id", h.Update)
		adminGroup.DELETE("/:id", h.Delete)
	}
}
