package facility

import (
	"net/http"
	"strings"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "facility not found")
	ErrCodeRequired    = apperror.New(http.StatusBadRequest, "facility code is required")
	ErrNameRequired    = apperror.New(http.StatusBadRequest, "facility name is required")
	ErrInvalidCampus   = apperror.New(http.StatusBadRequest, "invalid campus_id")
	ErrInvalidType     = apperror.New(http.StatusBadRequest, "invalid type_id")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "capacity must be at least 1")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "invalid facility status")
	ErrDuplicateCode   = apperror.New(http.StatusConflict, "facility code already in use")
	ErrNoPhoto         = apperror.New(http.StatusNotFound, "facility has no photo")
)

// Facility statuses as they travel on the wire.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusClosed      = "Closed"
)

// ValidStatus reports whether s is a known facility status, ignoring case.
func ValidStatus(s string) bool {
	switch strings.ToLower(s) {
	case "available", "maintenance", "closed":
		return true
	}
	return false
}

// Facility represents a bookable room, lab, or field.
type Facility struct {
	ID         int64
	Code       string // e.g. "A101"; what booking rows reference on the wire
	Name       string
	TypeID     int64
	TypeName   string
	CampusID   int64
	CampusName string
	Capacity   int
	Equipment  string // comma separated list, kept as the client sends it
	Status     string
	Floor      int

	PhotoPath     *string
	ThumbnailPath *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing facilities.
type Filter struct {
	CampusID int64
	TypeID   int64
	Status   string
	Keyword  string
	Page     int
	PageSize int
}
