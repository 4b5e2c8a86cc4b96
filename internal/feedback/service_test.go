package feedback

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/facility-booking-backend/internal/facility"
)

type fakeFeedbackRepo struct {
	items  map[int64]*Feedback
	nextID int64
}

func newFakeFeedbackRepo() *fakeFeedbackRepo {
	return &fakeFeedbackRepo{items: make(map[int64]*Feedback), nextID: 1}
}

func (r *fakeFeedbackRepo) Create(ctx context.Context, f *Feedback) error {
	f.ID = r.nextID
	r.nextID++
	copied := *f
	r.items[f.ID] = &copied
	return nil
}

func (r *fakeFeedbackRepo) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	f, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeFeedbackRepo) List(ctx context.Context, filter Filter) ([]*Feedback, int, error) {
	var out []*Feedback
	for _, f := range r.items {
		copied := *f
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeFeedbackRepo) Update(ctx context.Context, f *Feedback) error {
	if _, ok := r.items[f.ID]; !ok {
		return ErrNotFound
	}
	copied := *f
	r.items[f.ID] = &copied
	return nil
}

func (r *fakeFeedbackRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

type stubFacilityService struct {
	known map[int64]bool
}

func (s *stubFacilityService) Create(ctx context.Context, req facility.CreateRequest) (*facility.Facility, error) {
	return nil, nil
}
func (s *stubFacilityService) GetByID(ctx context.Context, id int64) (*facility.Facility, error) {
	if !s.known[id] {
		return nil, facility.ErrNotFound
	}
	return &facility.Facility{ID: id}, nil
}
func (s *stubFacilityService) GetByCode(ctx context.Context, code string) (*facility.Facility, error) {
	return nil, facility.ErrNotFound
}
func (s *stubFacilityService) List(ctx context.Context, filter facility.Filter) ([]*facility.Facility, int, error) {
	return nil, 0, nil
}
func (s *stubFacilityService) Update(ctx context.Context, id int64, req facility.UpdateRequest) (*facility.Facility, error) {
	return nil, nil
}
func (s *stubFacilityService) Delete(ctx context.Context, id int64) error { return nil }

func newTestService(repo Repository) Service {
	return NewService(repo, &stubFacilityService{known: map[int64]bool{1: true}})
}

func TestFeedbackCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc := newTestService(newFakeFeedbackRepo())

		f, err := svc.Create(ctx, CreateRequest{UserID: 7, FacilityID: 1, Rating: 4, Content: " Great room "})
		require.NoError(t, err)
		assert.Equal(t, 4, f.Rating)
		assert.Equal(t, "Great room", f.Content)
	})

	t.Run("rating bounds", func(t *testing.T) {
		svc := newTestService(newFakeFeedbackRepo())

		for _, rating := range []int{0, 6, -1} {
			_, err := svc.Create(ctx, CreateRequest{UserID: 7, FacilityID: 1, Rating: rating, Content: "x"})
			assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
		}
	})

	t.Run("blank content", func(t *testing.T) {
		svc := newTestService(newFakeFeedbackRepo())

		_, err := svc.Create(ctx, CreateRequest{UserID: 7, FacilityID: 1, Rating: 3, Content: "  "})
		assert.ErrorIs(t, err, ErrContentRequired)
	})

	t.Run("unknown facility", func(t *testing.T) {
		svc := newTestService(newFakeFeedbackRepo())

		_, err := svc.Create(ctx, CreateRequest{UserID: 7, FacilityID: 99, Rating: 3, Content: "x"})
		assert.ErrorIs(t, err, facility.ErrNotFound)
	})
}

func TestFeedbackMutationPermissions(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (Service, int64) {
		repo := newFakeFeedbackRepo()
		svc := newTestService(repo)
		f, err := svc.Create(ctx, CreateRequest{UserID: 7, FacilityID: 1, Rating: 3, Content: "ok"})
		require.NoError(t, err)
		return svc, f.ID
	}

	t.Run("author updates own feedback", func(t *testing.T) {
		svc, id := seed(t)

		rating := 5
		f, err := svc.Update(ctx, id, 7, false, UpdateRequest{Rating: &rating})
		require.NoError(t, err)
		assert.Equal(t, 5, f.Rating)
	})

	t.Run("stranger cannot update", func(t *testing.T) {
		svc, id := seed(t)

		rating := 1
		_, err := svc.Update(ctx, id, 8, false, UpdateRequest{Rating: &rating})
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("admin may update anyone's", func(t *testing.T) {
		svc, id := seed(t)

		rating := 1
		_, err := svc.Update(ctx, id, 8, true, UpdateRequest{Rating: &rating})
		assert.NoError(t, err)
	})

	t.Run("stranger cannot delete, admin can", func(t *testing.T) {
		svc, id := seed(t)

		assert.ErrorIs(t, svc.Delete(ctx, id, 8, false), ErrPermissionDenied)
		assert.NoError(t, svc.Delete(ctx, id, 8, true))
	})
}
