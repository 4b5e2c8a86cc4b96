package http

import (
	"time"

	"github.com/campuskit/facility-booking-backend/internal/campus"
)

type CampusResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(c *campus.Campus) CampusResponse {
	return CampusResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

type CreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type UpdateRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}
