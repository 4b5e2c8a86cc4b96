package booking

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/pkg/metrics"
	"github.com/campuskit/facility-booking-backend/internal/slot"
)

type CreateRequest struct {
	UserID         int64
	FacilityID     int64
	SlotNumber     int
	BookingDate    string
	Purpose        string
	NumberOfMember int
}

// DecideRequest carries an admin's approval decision. RejectionReason is a
// plain string because the wire contract always sends the field, "" when
// approving, never null.
type DecideRequest struct {
	Status          string
	RejectionReason string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Decide(ctx context.Context, id int64, req DecideRequest) (*Booking, error)
	Cancel(ctx context.Context, id int64, byUserID int64) (*Booking, error)
	Stats(ctx context.Context, userID int64) (*Stats, error)
	Availability(ctx context.Context, facilityID int64, date string) (*Availability, error)
}

// DecisionNotifier is told about approval decisions so the owner can be
// informed. Implementations must not fail the request; errors are their own
// problem to log.
type DecisionNotifier interface {
	NotifyDecision(ctx context.Context, b *Booking)
}

type service struct {
	repo        Repository
	facService  facility.Service
	slotService slot.Service
	notifier    DecisionNotifier

	windowDays int
	now        func() time.Time
}

func NewService(repo Repository, facService facility.Service, slotService slot.Service, notifier DecisionNotifier, windowDays int) Service {
	return &service{
		repo:        repo,
		facService:  facService,
		slotService: slotService,
		notifier:    notifier,
		windowDays:  windowDays,
		now:         time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// Preconditions checked before anything talks to the database:
	// the user must be resolvable and a slot must be selected.
	if req.UserID == 0 {
		return nil, ErrAuthRequired
	}
	if req.SlotNumber == 0 {
		return nil, ErrSlotRequired
	}

	date, err := time.Parse(DateLayout, req.BookingDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) || date.After(today.AddDate(0, 0, s.windowDays)) {
		return nil, ErrDateOutOfWindow
	}

	f, err := s.facService.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}
	if !strings.EqualFold(f.Status, facility.StatusAvailable) {
		return nil, ErrFacilityUnavailable
	}

	if req.NumberOfMember < 0 || req.NumberOfMember > f.Capacity {
		return nil, ErrMemberCount
	}

	if _, err := s.slotService.GetByNumber(ctx, req.SlotNumber); err != nil {
		return nil, ErrUnknownSlot
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		purpose = DefaultPurpose
	}

	taken, err := s.repo.HasApprovedSlot(ctx, req.FacilityID, req.BookingDate, req.SlotNumber)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	b := &Booking{
		FacilityID:     req.FacilityID,
		UserID:         req.UserID,
		BookingDate:    req.BookingDate,
		SlotNumber:     req.SlotNumber,
		Purpose:        purpose,
		NumberOfMember: req.NumberOfMember,
		Status:         StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()

	// Re-read to resolve joined facility/user/slot fields.
	return s.repo.GetByID(ctx, b.ID)
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Decide(ctx context.Context, id int64, req DecideRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.Status.Is(StatusPending) {
		return nil, ErrNotPending
	}

	status, ok := ParseStatus(req.Status)
	if !ok || (status != StatusApproved && status != StatusRejected) {
		return nil, ErrInvalidStatus
	}

	reason := strings.TrimSpace(req.RejectionReason)
	switch status {
	case StatusApproved:
		// Approving never carries a reason; the column still gets "".
		reason = ""
	case StatusRejected:
		if reason == "" {
			return nil, ErrReasonRequired
		}
	}

	if err := s.repo.UpdateStatus(ctx, id, status, reason); err != nil {
		return nil, err
	}

	metrics.BookingsDecided.WithLabelValues(strings.ToLower(string(status))).Inc()

	b.Status = status
	b.RejectionReason = reason

	if s.notifier != nil {
		s.notifier.NotifyDecision(ctx, b)
	}

	return b, nil
}

func (s *service) Cancel(ctx context.Context, id int64, byUserID int64) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.UserID != byUserID {
		return nil, ErrPermissionDenied
	}
	if !b.Status.Is(StatusPending) {
		return nil, ErrNotPending
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled, ""); err != nil {
		return nil, err
	}

	b.Status = StatusCancelled
	return b, nil
}

func (s *service) Stats(ctx context.Context, userID int64) (*Stats, error) {
	return s.repo.StatsByUser(ctx, userID)
}

func (s *service) Availability(ctx context.Context, facilityID int64, date string) (*Availability, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, ErrInvalidDate
	}

	f, err := s.facService.GetByID(ctx, facilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}

	catalog, err := s.slotService.List(ctx)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.ListForFacilityDate(ctx, facilityID, date)
	if err != nil {
		return nil, err
	}

	unavailable, skipped := UnavailableSlotIDs(f.Code, date, catalog, existing)
	if skipped > 0 {
		log.Printf("availability: facility %s date %s: %d approved booking(s) matched no catalog slot", f.Code, date, skipped)
	}

	taken := make(map[int64]bool, len(unavailable))
	for _, id := range unavailable {
		taken[id] = true
	}

	slots := make([]SlotStatus, len(catalog))
	for i, sl := range catalog {
		slots[i] = SlotStatus{Slot: sl, Available: !taken[sl.ID]}
	}

	return &Availability{
		FacilityID:          facilityID,
		Date:                date,
		Slots:               slots,
		SkippedUnknownStart: skipped,
	}, nil
}
