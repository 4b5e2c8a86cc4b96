package http

import (
	"errors"
	"net/http"

	"github.com/campuskit/facility-booking-backend/internal/campus"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service campus.Service
}

func NewHandler(service campus.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list campuses"})
		return
	}

	items := make([]CampusResponse, len(list))
	for i, cm := range list {
		items[i] = NewResponse(cm)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	cm, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, campus.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "campus not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get campus"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(cm))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cm, err := h.service.Create(c.Request.Context(), campus.CreateRequest{
		Name:    body.Name,
		Address: body.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, campus.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create campus"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(cm))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	cm, err := h.service.Update(c.Request.Context(), uri.ID, campus.UpdateRequest{
		Name:    body.Name,
		Address: body.Address,
	})
	if err != nil {
		switch {
		case errors.Is(err, campus.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "campus not found"})
		case errors.Is(err, campus.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update campus"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(cm))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, campus.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "campus not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete campus"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
