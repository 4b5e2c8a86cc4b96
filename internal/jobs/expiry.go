package jobs

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/pkg/metrics"
	"github.com/robfig/cron/v3"
)

// ExpiryReason is stored as the rejection reason on swept bookings.
const ExpiryReason = "Expired: booking date has passed"

// BookingExpirer is the slice of the booking repository the sweep needs.
type BookingExpirer interface {
	ExpirePending(ctx context.Context, reason string) (int64, error)
}

// ExpirySweeper periodically rejects pending bookings whose date has passed.
type ExpirySweeper struct {
	bookings BookingExpirer
	cron     *cron.Cron
	spec     string
}

func NewExpirySweeper(bookings BookingExpirer, spec string) *ExpirySweeper {
	return &ExpirySweeper{
		bookings: bookings,
		cron:     cron.New(),
		spec:     spec,
	}
}

// Start registers the sweep on the cron schedule and starts the scheduler.
func (s *ExpirySweeper) Start() error {
	if _, err := s.cron.AddFunc(s.spec, func() {
		if err := s.Sweep(context.Background()); err != nil {
			log.Printf("expiry sweep failed: %v", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule expiry sweep: %w", err)
	}
	s.cron.Start()
	log.Printf("expiry sweep scheduled (%s)", s.spec)
	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *ExpirySweeper) Stop(ctx context.Context) error {
	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(10 * time.Second):
		return fmt.Errorf("timed out waiting for expiry sweep to stop")
	}
}

// Sweep runs one expiry pass.
func (s *ExpirySweeper) Sweep(ctx context.Context) error {
	n, err := s.bookings.ExpirePending(ctx, ExpiryReason)
	if err != nil {
		return err
	}
	if n > 0 {
		metrics.BookingsExpired.Add(float64(n))
		log.Printf("expiry sweep rejected %d past-date pending bookings", n)
	}
	return nil
}
