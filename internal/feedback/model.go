package feedback

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("feedback not found")
	ErrContentRequired  = errors.New("content is required")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrPermissionDenied = errors.New("not allowed to modify this feedback")
)

// Feedback is a rating and comment a user leaves on a facility.
type Feedback struct {
	ID         int64
	UserID     int64
	UserName   string
	FacilityID int64
	Rating     int
	Content    string
	CreatedAt  time.Time
}

// Filter defines parameters for listing feedback.
type Filter struct {
	UserID     int64
	FacilityID int64
	MinRating  int
	Page       int
	PageSize   int
}
