package notification

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("notification not found")
	ErrPermissionDenied = errors.New("not allowed to access this notification")
)

// Notification is an in-app message shown to a single user.
type Notification struct {
	ID        int64
	UserID    int64
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
