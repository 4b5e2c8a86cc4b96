package feedback

import (
	"context"
	"strings"

	"github.com/campuskit/facility-booking-backend/internal/facility"
)

type CreateRequest struct {
	UserID     int64
	FacilityID int64
	Rating     int
	Content    string
}

type UpdateRequest struct {
	Rating  *int
	Content *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Feedback, error)
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	List(ctx context.Context, filter Filter) ([]*Feedback, int, error)
	Update(ctx context.Context, id, actorID int64, isAdmin bool, req UpdateRequest) (*Feedback, error)
	Delete(ctx context.Context, id, actorID int64, isAdmin bool) error
}

type service struct {
	repo       Repository
	facilities facility.Service
}

func NewService(repo Repository, facilities facility.Service) Service {
	return &service{
		repo:       repo,
		facilities: facilities,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Feedback, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrContentRequired
	}

	// Ensure the facility exists.
	if _, err := s.facilities.GetByID(ctx, req.FacilityID); err != nil {
		return nil, err
	}

	f := &Feedback{
		UserID:     req.UserID,
		FacilityID: req.FacilityID,
		Rating:     req.Rating,
		Content:    strings.TrimSpace(req.Content),
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, f.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id, actorID int64, isAdmin bool, req UpdateRequest) (*Feedback, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && f.UserID != actorID {
		return nil, ErrPermissionDenied
	}

	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, ErrInvalidRating
		}
		f.Rating = *req.Rating
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, ErrContentRequired
		}
		f.Content = strings.TrimSpace(*req.Content)
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) Delete(ctx context.Context, id, actorID int64, isAdmin bool) error {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && f.UserID != actorID {
		return ErrPermissionDenied
	}
	return s.repo.Delete(ctx, id)
}
