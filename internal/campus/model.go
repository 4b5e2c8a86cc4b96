package campus

import (
	"net/http"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "campus not found")
	ErrNameRequired = apperror.New(http.StatusBadRequest, "campus name is required")
)

// Campus is one of the physical site groupings used to partition facility listings.
type Campus struct {
	ID        int64
	Name      string
	Address   string
	CreatedAt time.Time
}
