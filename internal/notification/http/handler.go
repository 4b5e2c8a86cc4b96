package http

import (
	"errors"
	"net/http"

	"github.com/campuskit/facility-booking-backend/internal/auth"
	"github.com/campuskit/facility-booking-backend/internal/notification"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/campuskit/facility-booking-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service notification.Service
}

func NewHandler(service notification.Service) *Handler {
	return &Handler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == user.RoleAdmin
}

// ListByUser returns the notifications of a user, newest first.
// Users may only read their own; admins may read anyone's.
func (h *Handler) ListByUser(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if uri.ID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not allowed"})
		return
	}

	list, err := h.service.ListByUser(c.Request.Context(), uri.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	items := make([]NotificationResponse, len(list))
	for i, n := range list {
		items[i] = NewResponse(n)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) MarkRead(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	err := h.service.MarkRead(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, notification.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		case errors.Is(err, notification.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
