package http

import (
	"net/http"

	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/pkg/response"
	"github.com/campuskit/facility-booking-backend/internal/slot"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service        slot.Service
	bookingService booking.Service
}

func NewHandler(service slot.Service, bookingService booking.Service) *Handler {
	return &Handler{
		service:        service,
		bookingService: bookingService,
	}
}

// List serves the fixed slot catalog.
func (h *Handler) List(c *gin.Context) {
	slots, err := h.service.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list slots"})
		return
	}

	items := make([]SlotResponse, len(slots))
	for i, s := range slots {
		items[i] = NewSlotResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

// Status answers which slots are free for a facility on a date. The answer
// is computed in one read on the server, so the client never has to stitch
// together racing fetches.
func (h *Handler) Status(c *gin.Context) {
	var req StatusRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "facilityId and date are required", "details": err.Error()})
		return
	}

	a, err := h.bookingService.Availability(c.Request.Context(), req.FacilityID, req.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStatusResponse(a))
}
