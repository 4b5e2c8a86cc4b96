package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/facility-booking-backend/internal/facility"
	"github.com/campuskit/facility-booking-backend/internal/slot"
)

type fakeRepo struct {
	bookings map[int64]*Booking
	nextID   int64

	approvedTaken bool
	calls         int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[int64]*Booking), nextID: 1}
}

func (r *fakeRepo) Create(ctx context.Context, b *Booking) error {
	r.calls++
	b.ID = r.nextID
	r.nextID++
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*Booking, error) {
	r.calls++
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.calls++
	return nil, 0, nil
}

func (r *fakeRepo) ListForFacilityDate(ctx context.Context, facilityID int64, date string) ([]*Booking, error) {
	r.calls++
	var out []*Booking
	for _, b := range r.bookings {
		if b.FacilityID == facilityID && b.BookingDate == date {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, status Status, reason string) error {
	r.calls++
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.RejectionReason = reason
	return nil
}

func (r *fakeRepo) HasApprovedSlot(ctx context.Context, facilityID int64, date string, slotNumber int) (bool, error) {
	r.calls++
	return r.approvedTaken, nil
}

func (r *fakeRepo) StatsByUser(ctx context.Context, userID int64) (*Stats, error) {
	r.calls++
	st := &Stats{}
	for _, b := range r.bookings {
		if b.UserID != userID {
			continue
		}
		st.Total++
		switch {
		case b.Status.Is(StatusPending):
			st.Pending++
		case b.Status.Is(StatusApproved):
			st.Approved++
		case b.Status.Is(StatusRejected):
			st.Rejected++
		case b.Status.Is(StatusCancelled):
			st.Cancelled++
		}
	}
	return st, nil
}

func (r *fakeRepo) ExpirePending(ctx context.Context, reason string) (int64, error) {
	r.calls++
	var n int64
	for _, b := range r.bookings {
		if b.Status.Is(StatusPending) {
			b.Status = StatusRejected
			b.RejectionReason = reason
			n++
		}
	}
	return n, nil
}

type fakeFacilityService struct {
	facility *facility.Facility
}

func (f *fakeFacilityService) Create(ctx context.Context, req facility.CreateRequest) (*facility.Facility, error) {
	return nil, nil
}
func (f *fakeFacilityService) GetByID(ctx context.Context, id int64) (*facility.Facility, error) {
	if f.facility == nil || f.facility.ID != id {
		return nil, facility.ErrNotFound
	}
	return f.facility, nil
}
func (f *fakeFacilityService) GetByCode(ctx context.Context, code string) (*facility.Facility, error) {
	if f.facility == nil || f.facility.Code != code {
		return nil, facility.ErrNotFound
	}
	return f.facility, nil
}
func (f *fakeFacilityService) List(ctx context.Context, filter facility.Filter) ([]*facility.Facility, int, error) {
	return nil, 0, nil
}
func (f *fakeFacilityService) Update(ctx context.Context, id int64, req facility.UpdateRequest) (*facility.Facility, error) {
	return nil, nil
}
func (f *fakeFacilityService) Delete(ctx context.Context, id int64) error { return nil }

type fakeSlotService struct {
	slots []*slot.Slot
}

func (s *fakeSlotService) List(ctx context.Context) ([]*slot.Slot, error) {
	return s.slots, nil
}
func (s *fakeSlotService) GetByNumber(ctx context.Context, number int) (*slot.Slot, error) {
	for _, sl := range s.slots {
		if sl.Number == number {
			return sl, nil
		}
	}
	return nil, slot.ErrNotFound
}

type recordingNotifier struct {
	notified []*Booking
}

func (n *recordingNotifier) NotifyDecision(ctx context.Context, b *Booking) {
	n.notified = append(n.notified, b)
}

func fixedNow() time.Time {
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
}

func newTestService(repo *fakeRepo, notifier DecisionNotifier) Service {
	facilities := &fakeFacilityService{facility: &facility.Facility{
		ID:       1,
		Code:     "A101",
		Name:     "Lecture Hall A101",
		Capacity: 30,
		Status:   facility.StatusAvailable,
	}}
	slots := &fakeSlotService{slots: []*slot.Slot{
		{ID: 1, Number: 1, StartTime: "07:30:00", EndTime: "09:10:00"},
		{ID: 2, Number: 2, StartTime: "09:20:00", EndTime: "11:00:00"},
	}}

	svc := NewService(repo, facilities, slots, notifier, 14).(*service)
	svc.now = fixedNow
	return svc
}

func validCreateRequest() CreateRequest {
	return CreateRequest{
		UserID:         7,
		FacilityID:     1,
		SlotNumber:     1,
		BookingDate:    "2026-09-05",
		Purpose:        "Group project",
		NumberOfMember: 4,
	}
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		b, err := svc.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, StatusPending, b.Status)
		assert.Equal(t, "Group project", b.Purpose)
		assert.Equal(t, int64(7), b.UserID)
	})

	t.Run("missing user rejected before touching the repo", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		req := validCreateRequest()
		req.UserID = 0

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrAuthRequired)
		assert.Zero(t, repo.calls)
	})

	t.Run("missing slot rejected before touching the repo", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		req := validCreateRequest()
		req.SlotNumber = 0

		_, err := svc.Create(ctx, req)
		require.ErrorIs(t, err, ErrSlotRequired)
		assert.Zero(t, repo.calls)
	})

	t.Run("blank purpose defaults", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		req := validCreateRequest()
		req.Purpose = "   "

		b, err := svc.Create(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, DefaultPurpose, b.Purpose)
	})

	t.Run("malformed date", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		req := validCreateRequest()
		req.BookingDate = "05/09/2026"

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("date outside the window", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		for _, date := range []string{"2026-08-31", "2026-09-16"} {
			req := validCreateRequest()
			req.BookingDate = date

			_, err := svc.Create(ctx, req)
			assert.ErrorIs(t, err, ErrDateOutOfWindow, "date %s", date)
		}
	})

	t.Run("today and window edge are accepted", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		for _, date := range []string{"2026-09-01", "2026-09-15"} {
			req := validCreateRequest()
			req.BookingDate = date

			_, err := svc.Create(ctx, req)
			assert.NoError(t, err, "date %s", date)
		}
	})

	t.Run("unknown facility", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		req := validCreateRequest()
		req.FacilityID = 99

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})

	t.Run("member count above capacity", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		req := validCreateRequest()
		req.NumberOfMember = 31

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrMemberCount)
	})

	t.Run("zero members accepted", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		req := validCreateRequest()
		req.NumberOfMember = 0

		_, err := svc.Create(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("unknown slot number", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		req := validCreateRequest()
		req.SlotNumber = 9

		_, err := svc.Create(ctx, req)
		assert.ErrorIs(t, err, ErrUnknownSlot)
	})

	t.Run("approved booking already holds the slot", func(t *testing.T) {
		repo := newFakeRepo()
		repo.approvedTaken = true
		svc := newTestService(repo, nil)

		_, err := svc.Create(ctx, validCreateRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
	})
}

func TestServiceDecide(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeRepo, status Status) int64 {
		b := &Booking{
			FacilityID:  1,
			UserID:      7,
			BookingDate: "2026-09-05",
			SlotNumber:  1,
			Status:      status,
		}
		require.NoError(t, repo.Create(ctx, b))
		return b.ID
	}

	t.Run("approve clears the reason", func(t *testing.T) {
		repo := newFakeRepo()
		notifier := &recordingNotifier{}
		svc := newTestService(repo, notifier)
		id := seed(repo, StatusPending)

		b, err := svc.Decide(ctx, id, DecideRequest{Status: "Approved", RejectionReason: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, StatusApproved, b.Status)
		assert.Equal(t, "", b.RejectionReason)
		require.Len(t, notifier.notified, 1)
		assert.Equal(t, StatusApproved, notifier.notified[0].Status)
	})

	t.Run("reject stores the reason", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, StatusPending)

		b, err := svc.Decide(ctx, id, DecideRequest{Status: "rejected", RejectionReason: "room closed that day"})
		require.NoError(t, err)
		assert.Equal(t, StatusRejected, b.Status)
		assert.Equal(t, "room closed that day", b.RejectionReason)
	})

	t.Run("reject without reason", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, StatusPending)

		_, err := svc.Decide(ctx, id, DecideRequest{Status: "Rejected", RejectionReason: "  "})
		assert.ErrorIs(t, err, ErrReasonRequired)
	})

	t.Run("deciding a non-pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, StatusApproved)

		_, err := svc.Decide(ctx, id, DecideRequest{Status: "Rejected", RejectionReason: "too late"})
		assert.ErrorIs(t, err, ErrNotPending)
	})

	t.Run("only approve and reject are decisions", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, StatusPending)

		for _, status := range []string{"Cancelled", "Pending", "done"} {
			_, err := svc.Decide(ctx, id, DecideRequest{Status: status})
			assert.ErrorIs(t, err, ErrInvalidStatus, "status %s", status)
		}
	})

	t.Run("unknown booking", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		_, err := svc.Decide(ctx, 404, DecideRequest{Status: "Approved"})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceCancel(t *testing.T) {
	ctx := context.Background()

	seed := func(repo *fakeRepo, userID int64, status Status) int64 {
		b := &Booking{FacilityID: 1, UserID: userID, BookingDate: "2026-09-05", SlotNumber: 1, Status: status}
		require.NoError(t, repo.Create(ctx, b))
		return b.ID
	}

	t.Run("owner cancels pending booking", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, 7, StatusPending)

		b, err := svc.Cancel(ctx, id, 7)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, b.Status)
	})

	t.Run("non-owner cannot cancel", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, 7, StatusPending)

		_, err := svc.Cancel(ctx, id, 8)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("approved booking cannot be cancelled", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)
		id := seed(repo, 7, StatusApproved)

		_, err := svc.Cancel(ctx, id, 7)
		assert.ErrorIs(t, err, ErrNotPending)
	})
}

func TestServiceStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := newTestService(repo, nil)

	for _, st := range []Status{StatusPending, StatusApproved, StatusApproved, StatusRejected, StatusCancelled} {
		require.NoError(t, repo.Create(ctx, &Booking{UserID: 7, FacilityID: 1, Status: st}))
	}
	require.NoError(t, repo.Create(ctx, &Booking{UserID: 8, FacilityID: 1, Status: StatusApproved}))

	st, err := svc.Stats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, &Stats{Total: 5, Pending: 1, Approved: 2, Rejected: 1, Cancelled: 1}, st)
}

func TestServiceAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("approved booking marks its slot unavailable", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		require.NoError(t, repo.Create(ctx, &Booking{
			FacilityID:   1,
			FacilityCode: "A101",
			BookingDate:  "2026-09-05",
			SlotNumber:   1,
			StartTime:    "07:30:00",
			Status:       StatusApproved,
			UserID:       7,
		}))

		av, err := svc.Availability(ctx, 1, "2026-09-05")
		require.NoError(t, err)
		require.Len(t, av.Slots, 2)
		assert.False(t, av.Slots[0].Available)
		assert.True(t, av.Slots[1].Available)
		assert.Zero(t, av.SkippedUnknownStart)
	})

	t.Run("pending bookings leave everything available", func(t *testing.T) {
		repo := newFakeRepo()
		svc := newTestService(repo, nil)

		require.NoError(t, repo.Create(ctx, &Booking{
			FacilityID:   1,
			FacilityCode: "A101",
			BookingDate:  "2026-09-05",
			StartTime:    "07:30:00",
			Status:       StatusPending,
			UserID:       7,
		}))

		av, err := svc.Availability(ctx, 1, "2026-09-05")
		require.NoError(t, err)
		for _, s := range av.Slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("bad date", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		_, err := svc.Availability(ctx, 1, "tomorrow")
		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("unknown facility", func(t *testing.T) {
		svc := newTestService(newFakeRepo(), nil)

		_, err := svc.Availability(ctx, 99, "2026-09-05")
		assert.ErrorIs(t, err, ErrFacilityNotFound)
	})
}
