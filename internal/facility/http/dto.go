package http

import (
	"strconv"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/pkg/request"
)

// FacilityTag is the compact form embedded in other modules' responses.
type FacilityTag struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// FacilityResponse uses the camelCase field names the existing client binds to.
type FacilityResponse struct {
	ID           int64     `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	TypeID       int64     `json:"typeId"`
	TypeName     string    `json:"typeName"`
	CampusID     int64     `json:"campusId"`
	CampusName   string    `json:"campusName"`
	Capacity     int       `json:"capacity"`
	Equipment    string    `json:"equipment"`
	Status       string    `json:"status"`
	Floor        int       `json:"floor"`
	PhotoURL     *string   `json:"photoUrl"`
	ThumbnailURL *string   `json:"thumbnailUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewResponse(f *facility.Facility) FacilityResponse {
	resp := FacilityResponse{
		ID:         f.ID,
		Code:       f.Code,
		Name:       f.Name,
		TypeID:     f.TypeID,
		TypeName:   f.TypeName,
		CampusID:   f.CampusID,
		CampusName: f.CampusName,
		Capacity:   f.Capacity,
		Equipment:  f.Equipment,
		Status:     f.Status,
		Floor:      f.Floor,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	if f.PhotoPath != nil {
		u := photoURL(f.ID)
		resp.PhotoURL = &u
	}
	if f.ThumbnailPath != nil {
		u := thumbnailURL(f.ID)
		resp.ThumbnailURL = &u
	}
	return resp
}

func photoURL(id int64) string {
	return "/api/Faciliti/" + strconv.FormatInt(id, 10) + "/Photo"
}

func thumbnailURL(id int64) string {
	return "/api/Faciliti/" + strconv.FormatInt(id, 10) + "/Photo/Thumbnail"
}

type ListRequest struct {
	request.ListParams
	CampusID int64  `form:"campusId" binding:"omitempty,min=1"`
	TypeID   int64  `form:"typeId" binding:"omitempty,min=1"`
	Status   string `form:"status"`
	Keyword  string `form:"keyword"`
}

type CreateRequest struct {
	Code      string `json:"code" binding:"required"`
	Name      string `json:"name" binding:"required"`
	TypeID    int64  `json:"typeId" binding:"required,min=1"`
	CampusID  int64  `json:"campusId" binding:"required,min=1"`
	Capacity  int    `json:"capacity" binding:"required,min=1"`
	Equipment string `json:"equipment"`
	Status    string `json:"status"`
	Floor     int    `json:"floor"`
}

type UpdateRequest struct {
	Code      *string `json:"code"`
	Name      *string `json:"name"`
	TypeID    *int64  `json:"typeId"`
	CampusID  *int64  `json:"campusId"`
	Capacity  *int    `json:"capacity"`
	Equipment *string `json:"equipment"`
	Status    *string `json:"status"`
	Floor     *int    `json:"floor"`
}
