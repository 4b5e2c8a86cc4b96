package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/campuskit/facility-booking-backend/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service      facility.Service
	photoService facility.PhotoService
}

func NewHandler(service facility.Service, photoService facility.PhotoService) *Handler {
	return &Handler{
		service:      service,
		photoService: photoService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := facility.Filter{
		CampusID: req.CampusID,
		TypeID:   req.TypeID,
		Status:   req.Status,
		Keyword:  req.Keyword,
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	list, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list facilities"})
		return
	}

	items := make([]FacilityResponse, len(list))
	for i, f := range list {
		items[i] = NewResponse(f)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Detail(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(f))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		Code:      body.Code,
		Name:      body.Name,
		TypeID:    body.TypeID,
		CampusID:  body.CampusID,
		Capacity:  body.Capacity,
		Equipment: body.Equipment,
		Status:    body.Status,
		Floor:     body.Floor,
	})
	if err != nil {
		response.Error(c, err)
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

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, facility.UpdateRequest{
		Code:      body.Code,
		Name:      body.Name,
		TypeID:    body.TypeID,
		CampusID:  body.CampusID,
		Capacity:  body.Capacity,
		Equipment: body.Equipment,
		Status:    body.Status,
		Floor:     body.Floor,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(f))
}

func (h *Handler) Delete(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(c.Request.Context(), req.ID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	header, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo must be an image"})
		return
	}

	f, err := h.photoService.SetPhoto(c.Request.Context(), uri.ID, header)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(f))
}

func (h *Handler) Photo(c *gin.Context) {
	h.servePhoto(c, false)
}

func (h *Handler) Thumbnail(c *gin.Context) {
	h.servePhoto(c, true)
}

func (h *Handler) servePhoto(c *gin.Context, thumbnail bool) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var (
		stream io.ReadCloser
		err    error
	)
	if thumbnail {
		stream, err = h.photoService.Thumbnail(c.Request.Context(), uri.ID)
	} else {
		stream, err = h.photoService.Photo(c.Request.Context(), uri.ID)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	c.Header("Content-Type", "image/jpeg")
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}
