package booking

import (
	"net/http"
	"strings"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrAuthRequired        = apperror.New(http.StatusUnauthorized, "authentication required")
	ErrSlotRequired        = apperror.New(http.StatusBadRequest, "slot is required")
	ErrUnknownSlot         = apperror.New(http.StatusBadRequest, "unknown slot number")
	ErrSlotTaken           = apperror.New(http.StatusConflict, "slot is already booked for that date")
	ErrInvalidDate         = apperror.New(http.StatusBadRequest, "booking date must be YYYY-MM-DD")
	ErrDateOutOfWindow     = apperror.New(http.StatusBadRequest, "booking date is outside the allowed window")
	ErrMemberCount         = apperror.New(http.StatusBadRequest, "number of members exceeds facility capacity")
	ErrFacilityNotFound    = apperror.New(http.StatusNotFound, "facility not found")
	ErrFacilityUnavailable = apperror.New(http.StatusConflict, "facility is not available for booking")
	ErrNotPending          = apperror.New(http.StatusConflict, "booking is not pending")
	ErrReasonRequired      = apperror.New(http.StatusBadRequest, "rejection reason is required")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrPermissionDenied    = apperror.New(http.StatusForbidden, "permission denied")
)

// DefaultPurpose is filled in when the client submits a blank purpose.
const DefaultPurpose = "Studying"

// DateLayout is the wire format for booking dates.
const DateLayout = "2006-01-02"

type Status string

// Status values use the capitalization the client renders, but every
// comparison in this package ignores case.
const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

// Is compares statuses case-insensitively.
func (s Status) Is(other Status) bool {
	return strings.EqualFold(string(s), string(other))
}

// ParseStatus canonicalizes a status string, case-insensitively.
func ParseStatus(s string) (Status, bool) {
	for _, known := range []Status{StatusPending, StatusApproved, StatusRejected, StatusCancelled} {
		if strings.EqualFold(s, string(known)) {
			return known, true
		}
	}
	return "", false
}

// Booking is a request to reserve a facility for a slot on a date.
type Booking struct {
	ID              int64
	FacilityID      int64
	FacilityCode    string
	FacilityName    string
	CampusName      string
	UserID          int64
	UserName        string
	BookingDate     string // YYYY-MM-DD
	SlotNumber      int
	StartTime       string // HH:MM:SS, from the slot catalog
	EndTime         string
	Purpose         string
	NumberOfMember  int
	Status          Status
	RejectionReason string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID     int64
	FacilityID int64
	CampusID   int64
	Status     string
	Date       string
	Page       int
	PageSize   int
}

// Stats aggregates a user's bookings by status.
type Stats struct {
	Total     int
	Pending   int
	Approved  int
	Rejected  int
	Cancelled int
}
