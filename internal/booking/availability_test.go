package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuskit/facility-booking-backend/internal/slot"
)

func testCatalog() []*slot.Slot {
	return []*slot.Slot{
		{ID: 1, Number: 1, StartTime: "07:30:00", EndTime: "09:10:00"},
		{ID: 2, Number: 2, StartTime: "09:20:00", EndTime: "11:00:00"},
		{ID: 3, Number: 3, StartTime: "11:10:00", EndTime: "12:50:00"},
	}
}

func TestUnavailableSlotIDs(t *testing.T) {
	catalog := testCatalog()

	t.Run("approved booking blocks its slot", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
		}

		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		require.Equal(t, []int64{1}, ids)
		assert.Zero(t, skipped)
	})

	t.Run("pending booking blocks nothing", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusPending},
		}

		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Empty(t, ids)
		assert.Zero(t, skipped)
	})

	t.Run("status comparison ignores case", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "09:20:00", Status: Status("approved")},
		}

		ids, _ := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{2}, ids)
	})

	t.Run("other facility and other date are ignored", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "B202", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
			{FacilityCode: "A101", BookingDate: "2026-09-02", StartTime: "07:30:00", Status: StatusApproved},
		}

		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Empty(t, ids)
		assert.Zero(t, skipped)
	})

	t.Run("matches facility by stringified numeric id", func(t *testing.T) {
		existing := []*Booking{
			{FacilityID: 7, BookingDate: "2026-09-01", StartTime: "11:10:00", Status: StatusApproved},
		}

		ids, _ := UnavailableSlotIDs("7", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{3}, ids)
	})

	t.Run("HH:MM start times normalize to catalog HH:MM:SS", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30", Status: StatusApproved},
		}

		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{1}, ids)
		assert.Zero(t, skipped)
	})

	t.Run("duplicate approved bookings produce one id", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
		}

		ids, _ := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{1}, ids)
	})

	t.Run("result is sorted regardless of booking order", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "11:10:00", Status: StatusApproved},
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
		}

		ids, _ := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{1, 3}, ids)
	})

	t.Run("unknown start time is counted, not dropped silently", func(t *testing.T) {
		existing := []*Booking{
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "08:00:00", Status: StatusApproved},
			{FacilityCode: "A101", BookingDate: "2026-09-01", StartTime: "07:30:00", Status: StatusApproved},
		}

		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", catalog, existing)
		assert.Equal(t, []int64{1}, ids)
		assert.Equal(t, 1, skipped)
	})

	t.Run("empty inputs", func(t *testing.T) {
		ids, skipped := UnavailableSlotIDs("A101", "2026-09-01", nil, nil)
		assert.Empty(t, ids)
		assert.Zero(t, skipped)
	})
}

func TestParseStatus(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Status
		ok   bool
	}{
		{"Pending", StatusPending, true},
		{"pending", StatusPending, true},
		{"APPROVED", StatusApproved, true},
		{"Rejected", StatusRejected, true},
		{"cancelled", StatusCancelled, true},
		{"finished", "", false},
		{"", "", false},
	} {
		got, ok := ParseStatus(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}
