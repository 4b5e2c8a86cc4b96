package http

import (
	"errors"
	"net/http"

	"github.com/campuskit/facility-booking-backend/internal/auth"
	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/feedback"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/campuskit/facility-booking-backend/internal/pkg/response"
	"github.com/campuskit/facility-booking-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service feedback.Service
}

func NewHandler(service feedback.Service) *Handler {
	return &Handler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == user.RoleAdmin
}

func (h *Handler) List(c *gin.Context) {
	var req ListFeedbackRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query", "details": err.Error()})
		return
	}

	list, total, err := h.service.List(c.Request.Context(), feedback.Filter{
		UserID:     req.UserID,
		FacilityID: req.FacilityID,
		MinRating:  req.MinRating,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list feedback"})
		return
	}

	items := make([]FeedbackResponse, len(list))
	for i, f := range list {
		items[i] = NewResponse(f)
	}
	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		if errors.Is(err, feedback.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get feedback"})
		return
	}

	c.JSON(http.StatusOK, NewResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateFeedbackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	userID := auth.GetUserID(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	f, err := h.service.Create(c.Request.Context(), feedback.CreateRequest{
		UserID:     userID,
		FacilityID: body.FacilityID,
		Rating:     body.Rating,
		Content:    body.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrInvalidRating), errors.Is(err, feedback.ErrContentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, facility.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create feedback"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(f))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateFeedbackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c), feedback.UpdateRequest{
		Rating:  body.Rating,
		Content: body.Content,
	})
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
		case errors.Is(err, feedback.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case errors.Is(err, feedback.ErrInvalidRating), errors.Is(err, feedback.ErrContentRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update feedback"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	err := h.service.Delete(c.Request.Context(), uri.ID, auth.GetUserID(c), isAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, feedback.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "feedback not found"})
		case errors.Is(err, feedback.ErrPermissionDenied):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete feedback"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
