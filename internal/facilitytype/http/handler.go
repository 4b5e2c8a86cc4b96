package http

import (
	"errors"
	"net/http"

	"github.com/campuskit/facility-booking-backend/internal/facilitytype"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/campuskit/facility-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service facilitytype.Service
}

func NewHandler(service facilitytype.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := facilitytype.Filter{
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facility types"})
		return
	}

	items := make([]FacilityTypeResponse, len(list))
	for i, ft := range list {
		items[i] = NewResponse(ft)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	ft, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		switch {
		case errors.Is(err, facilitytype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility type not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get facility type"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(ft))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	ft, err := h.service.Create(c.Request.Context(), facilitytype.CreateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, facilitytype.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create facility type"})
		}
		return
	}

	c.JSON(http.StatusCreated, NewResponse(ft))
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

	ft, err := h.service.Update(c.Request.Context(), uri.ID, facilitytype.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
	})
	if err != nil {
		switch {
		case errors.Is(err, facilitytype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility type not found"})
		case errors.Is(err, facilitytype.ErrNameRequired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update facility type"})
		}
		return
	}

	c.JSON(http.StatusOK, NewResponse(ft))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		switch {
		case errors.Is(err, facilitytype.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "facility type not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete facility type"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
