package http

import (
	"time"

	"github.com/campuskit/facility-booking-backend/internal/feedback"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
)

// FeedbackResponse uses the camelCase field names the existing client binds to.
type FeedbackResponse struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"userId"`
	UserName   string    `json:"userName"`
	FacilityID int64     `json:"facilityId"`
	Rating     int       `json:"rating"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func NewResponse(f *feedback.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:         f.ID,
		UserID:     f.UserID,
		UserName:   f.UserName,
		FacilityID: f.FacilityID,
		Rating:     f.Rating,
		Content:    f.Content,
		CreatedAt:  f.CreatedAt,
	}
}

// CreateFeedbackRequest defines the payload for leaving feedback.
type CreateFeedbackRequest struct {
	FacilityID int64  `json:"facilityId" binding:"required,min=1"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Content    string `json:"content" binding:"required"`
}

// UpdateFeedbackRequest defines fields the author may change.
type UpdateFeedbackRequest struct {
	Rating  *int    `json:"rating"`
	Content *string `json:"content"`
}

// ListFeedbackRequest defines query parameters for listing feedback.
type ListFeedbackRequest struct {
	request.ListParams
	UserID     int64 `form:"userId"`
	FacilityID int64 `form:"facilityId"`
	MinRating  int   `form:"minRating" binding:"omitempty,min=1,max=5"`
}
