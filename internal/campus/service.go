package campus

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name    string
	Address string
}

type UpdateRequest struct {
	Name    *string
	Address *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Campus, error)
	GetByID(ctx context.Context, id int64) (*Campus, error)
	List(ctx context.Context) ([]*Campus, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*Campus, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Campus, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}

	c := &Campus{
		Name:    req.Name,
		Address: req.Address,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Campus, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Campus, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, req UpdateRequest) (*Campus, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		c.Name = *req.Name
	}
	if req.Address != nil {
		c.Address = *req.Address
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
