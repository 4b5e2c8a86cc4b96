package slot

import "context"

type Service interface {
	List(ctx context.Context) ([]*Slot, error)
	GetByNumber(ctx context.Context, number int) (*Slot, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Slot, error) {
	return s.repo.List(ctx)
}

func (s *service) GetByNumber(ctx context.Context, number int) (*Slot, error) {
	return s.repo.GetByNumber(ctx, number)
}
