package http

import (
	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/slot"
)

// SlotResponse uses the camelCase field names the existing client binds to.
type SlotResponse struct {
	SlotID     int64  `json:"slotId"`
	SlotNumber int    `json:"slotNumber"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
}

func NewSlotResponse(s *slot.Slot) SlotResponse {
	return SlotResponse{
		SlotID:     s.ID,
		SlotNumber: s.Number,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}

// SlotStatusResponse is a catalog entry with its availability flag for one
// facility and date.
type SlotStatusResponse struct {
	SlotResponse
	Available bool `json:"available"`
}

type StatusRequest struct {
	FacilityID int64  `form:"facilityId" binding:"required,min=1"`
	Date       string `form:"date" binding:"required"`
}

type StatusResponse struct {
	FacilityID int64                `json:"facilityId"`
	Date       string               `json:"date"`
	Slots      []SlotStatusResponse `json:"slots"`
}

func NewStatusResponse(a *booking.Availability) StatusResponse {
	slots := make([]SlotStatusResponse, len(a.Slots))
	for i, ss := range a.Slots {
		slots[i] = SlotStatusResponse{
			SlotResponse: NewSlotResponse(ss.Slot),
			Available:    ss.Available,
		}
	}
	return StatusResponse{
		FacilityID: a.FacilityID,
		Date:       a.Date,
		Slots:      slots,
	}
}
