package http

import (
	"time"

	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
)

// BookingResponse uses the camelCase field names the existing client binds to.
type BookingResponse struct {
	ID              int64     `json:"id"`
	FacilityID      int64     `json:"facilityId"`
	FacilityCode    string    `json:"facilityCode"`
	FacilityName    string    `json:"facilityName"`
	CampusName      string    `json:"campusName"`
	UserID          int64     `json:"userId"`
	UserName        string    `json:"userName"`
	BookingDate     string    `json:"bookingDate"`
	SlotNumber      int       `json:"slotNumber"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	Purpose         string    `json:"purpose"`
	NumberOfMember  int       `json:"numberOfMember"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejectionReason"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		FacilityID:      b.FacilityID,
		FacilityCode:    b.FacilityCode,
		FacilityName:    b.FacilityName,
		CampusName:      b.CampusName,
		UserID:          b.UserID,
		UserName:        b.UserName,
		BookingDate:     b.BookingDate,
		SlotNumber:      b.SlotNumber,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		Purpose:         b.Purpose,
		NumberOfMember:  b.NumberOfMember,
		Status:          string(b.Status),
		RejectionReason: b.RejectionReason,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

type ListBookingsRequest struct {
	request.ListParams
	FacilityID int64  `form:"facilityId" binding:"omitempty,min=1"`
	CampusID   int64  `form:"campusId" binding:"omitempty,min=1"`
	UserID     int64  `form:"userId" binding:"omitempty,min=1"`
	Status     string `form:"status"`
	Date       string `form:"date"`
}

// DecideBookingRequest is the admin decision body. rejectionReason is a plain
// string, not a pointer: the client always sends the field, "" on approve.
type DecideBookingRequest struct {
	Status          string `json:"status" binding:"required"`
	RejectionReason string `json:"rejectionReason"`
}

// StatsResponse mirrors the shape the usage-report view consumes.
type StatsResponse struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Cancelled int `json:"cancelled"`
}

func NewStatsResponse(st *booking.Stats) StatsResponse {
	return StatsResponse{
		Total:     st.Total,
		Pending:   st.Pending,
		Approved:  st.Approved,
		Rejected:  st.Rejected,
		Cancelled: st.Cancelled,
	}
}
