package facility

import (
	"context"
	"strings"

	"github.com/campuskit/facility-booking-backend/internal/campus"
	"github.com/campuskit/facility-booking-backend/internal/facilitytype"
)

type CreateRequest struct {
	Code      string
	Name      string
	TypeID    int64
	CampusID  int64
	Capacity  int
	Equipment string
	Status    string
	Floor     int
}

type UpdateRequest struct {
	Code      *string
	Name      *string
	TypeID    *int64
	CampusID  *int64
	Capacity  *int
	Equipment *string
	Status    *string
	Floor     *int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id int64) (*Facility, error)
	GetByCode(ctx context.Context, code string) (*Facility, error)
	List(ctx context.Context, filter Filter) ([]*Facility, int, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo       Repository
	campService campus.Service
	typeService facilitytype.Service
}

func NewService(repo Repository, campService campus.Service, typeService facilitytype.Service) Service {
	return &service{
		repo:        repo,
		campService: campService,
		typeService: typeService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, ErrCodeRequired
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if req.Capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	status := req.Status
	if status == "" {
		status = StatusAvailable
	}
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	// Validation: campus and type must exist.
	if _, err := s.campService.GetByID(ctx, req.CampusID); err != nil {
		return nil, ErrInvalidCampus
	}
	if _, err := s.typeService.GetByID(ctx, req.TypeID); err != nil {
		return nil, ErrInvalidType
	}

	f := &Facility{
		Code:      strings.TrimSpace(req.Code),
		Name:      req.Name,
		TypeID:    req.TypeID,
		CampusID:  req.CampusID,
		Capacity:  req.Capacity,
		Equipment: req.Equipment,
		Status:    status,
		Floor:     req.Floor,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	// Re-read to resolve joined campus/type names.
	return s.repo.GetByID(ctx, f.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByCode(ctx context.Context, code string) (*Facility, error) {
	return s.repo.GetByCode(ctx, code)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Facility, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		if strings.TrimSpace(*req.Code) == "" {
			return nil, ErrCodeRequired
		}
		f.Code = strings.TrimSpace(*req.Code)
	}
	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		f.Name = *req.Name
	}
	if req.TypeID != nil {
		if _, err := s.typeService.GetByID(ctx, *req.TypeID); err != nil {
			return nil, ErrInvalidType
		}
		f.TypeID = *req.TypeID
	}
	if req.CampusID != nil {
		if _, err := s.campService.GetByID(ctx, *req.CampusID); err != nil {
			return nil, ErrInvalidCampus
		}
		f.CampusID = *req.CampusID
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			return nil, ErrInvalidCapacity
		}
		f.Capacity = *req.Capacity
	}
	if req.Equipment != nil {
		f.Equipment = *req.Equipment
	}
	if req.Status != nil {
		if !ValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		f.Status = *req.Status
	}
	if req.Floor != nil {
		f.Floor = *req.Floor
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
