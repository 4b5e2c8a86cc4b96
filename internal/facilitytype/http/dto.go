package http

import (
	"time"

	"github.com/campuskit/facility-booking-backend/internal/facilitytype"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
)

type FacilityTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewResponse(ft *facilitytype.FacilityType) FacilityTypeResponse {
	return FacilityTypeResponse{
		ID:          ft.ID,
		Name:        ft.Name,
		Description: ft.Description,
		CreatedAt:   ft.CreatedAt,
	}
}

type ListRequest struct {
	request.ListParams
	Keyword string `form:"keyword"`
}

type CreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type UpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}
