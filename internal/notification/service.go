package notification

import (
	"context"
)

type Service interface {
	Notify(ctx context.Context, userID int64, title, message string) (*Notification, error)
	ListByUser(ctx context.Context, userID int64) ([]*Notification, error)
	MarkRead(ctx context.Context, id, actorID int64, isAdmin bool) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Notify(ctx context.Context, userID int64, title, message string) (*Notification, error) {
	n := &Notification{
		UserID:  userID,
		Title:   title,
		Message: message,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *service) ListByUser(ctx context.Context, userID int64) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, actorID int64, isAdmin bool) error {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !isAdmin && n.UserID != actorID {
		return ErrPermissionDenied
	}
	return s.repo.MarkRead(ctx, id)
}
