package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/campuskit/facility-booking-backend/internal/auth"
	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
	"github.com/campuskit/facility-booking-backend/internal/pkg/response"
	"github.com/campuskit/facility-booking-backend/internal/user"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func isAdmin(c *gin.Context) bool {
	return auth.GetUserRole(c) == user.RoleAdmin
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	// Access control: admins may see everything and filter by user;
	// everyone else is forced onto their own bookings.
	filterUserID := req.UserID
	if !isAdmin(c) {
		filterUserID = auth.GetUserID(c)
	}

	filter := booking.Filter{
		UserID:     filterUserID,
		FacilityID: req.FacilityID,
		CampusID:   req.CampusID,
		Status:     req.Status,
		Date:       req.Date,
		Page:       req.Page,
		PageSize:   req.PageSize,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	resp := response.NewPageResponse(items, req.Page, req.PageSize, total)
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Create(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	body, err := NormalizeCreateBooking(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	// The token, not the payload, decides who the booking belongs to.
	// The payload's userId survives only as a fallback for tooling that
	// calls with a service token.
	userID := auth.GetUserID(c)
	if userID == 0 {
		userID = body.UserID
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		UserID:         userID,
		FacilityID:     body.FacilityID,
		SlotNumber:     body.SlotNumber,
		BookingDate:    body.BookingDate,
		Purpose:        body.Purpose,
		NumberOfMember: body.NumberOfMember,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	// Owner or admin only.
	if b.UserID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// ByUser serves GET /Booking/User/:id.
func (h *Handler) ByUser(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if req.ID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	page, pageSize := request.Pagination(c)

	bookings, total, err := h.service.List(c.Request.Context(), booking.Filter{
		UserID:   req.ID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

// Update serves PUT /Booking/:id. Admins approve or reject; an owner may
// only move their own pending booking to Cancelled.
func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body DecideBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if strings.EqualFold(body.Status, string(booking.StatusCancelled)) {
		b, err := h.service.Cancel(c.Request.Context(), uri.ID, auth.GetUserID(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		c.JSON(http.StatusOK, NewBookingResponse(b))
		return
	}

	if !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	b, err := h.service.Decide(c.Request.Context(), uri.ID, booking.DecideRequest{
		Status:          body.Status,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// Cancel serves DELETE /Booking/:id for the booking owner.
func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if _, err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Stats serves GET /Booking/Stats/:id.
func (h *Handler) Stats(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if req.ID != auth.GetUserID(c) && !isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	st, err := h.service.Stats(c.Request.Context(), req.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute booking stats"})
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(st))
}
