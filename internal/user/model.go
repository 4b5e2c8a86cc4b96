package user

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveUser       = errors.New("user is inactive")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrInvalidRole        = errors.New("invalid role")
)

// Roles recognized by the system.
const (
	RoleStudent  = "student"
	RoleLecturer = "lecturer"
	RoleAdmin    = "admin"
)

// ValidRole reports whether r is a known role, ignoring case.
func ValidRole(r string) bool {
	switch strings.ToLower(r) {
	case RoleStudent, RoleLecturer, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	FullName     string
	Role         string
	Campus       string
	IsActive     bool
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}

// Filter defines filter options for listing users.
type Filter struct {
	Keyword  string // matches email or full name
	Role     string
	Campus   string
	IsActive *bool // pointer to distinguish false from not-set

	Page     int
	PageSize int
}
