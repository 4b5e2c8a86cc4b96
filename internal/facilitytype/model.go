package facilitytype

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("facility type not found")
	ErrNameRequired = errors.New("name is required")
)

// FacilityType represents a category of facilities (e.g., Meeting Room, Lab, Football Field).
type FacilityType struct {
	ID          int64
	Name        string
	Description string
	CreatedAt   time.Time
}

// Filter defines parameters for listing facility types.
type Filter struct {
	Keyword  string
	Page     int
	PageSize int
}
