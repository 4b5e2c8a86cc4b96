package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/Notification")
	group.Use(authMiddleware)
	{
		group.GET("/user/:id", h.ListByUser)
		group.PUT("/:id/read", h.MarkRead)
	}
}
