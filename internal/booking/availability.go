package booking

import (
	"sort"
	"strconv"

	"github.com/campuskit/facility-booking-backend/internal/slot"
)

// UnavailableSlotIDs computes, for one facility and one date, the set of
// catalog slot IDs that are already taken by an approved booking.
//
// A slot is unavailable iff some booking matches the facility (by code, or by
// the stringified numeric id some feeds carry instead), matches the date
// exactly, has status Approved ignoring case, and starts at the slot's start
// time. Start times are compared after HH:MM / HH:MM:SS normalization.
//
// Bookings whose start time matches no catalog slot are not an error; they
// are tallied in skipped so callers can surface the skew instead of hiding it.
func UnavailableSlotIDs(facility string, date string, catalog []*slot.Slot, existing []*Booking) (ids []int64, skipped int) {
	seen := make(map[int64]bool)

	for _, b := range existing {
		if b.BookingDate != date {
			continue
		}
		if !facilityMatches(facility, b) {
			continue
		}
		if !b.Status.Is(StatusApproved) {
			continue
		}

		found := false
		for _, s := range catalog {
			if slot.SameTime(s.StartTime, b.StartTime) {
				if !seen[s.ID] {
					seen[s.ID] = true
					ids = append(ids, s.ID)
				}
				found = true
				break
			}
		}
		if !found {
			skipped++
		}
	}

	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, skipped
}

func facilityMatches(facility string, b *Booking) bool {
	if b.FacilityCode != "" && b.FacilityCode == facility {
		return true
	}
	return strconv.FormatInt(b.FacilityID, 10) == facility
}

// SlotStatus pairs a catalog slot with its availability for one facility+date.
type SlotStatus struct {
	Slot      *slot.Slot
	Available bool
}

// Availability is the full answer for one facility and date.
type Availability struct {
	FacilityID int64
	Date       string
	Slots      []SlotStatus

	// SkippedUnknownStart counts approved bookings whose start time matched
	// no catalog slot. Non-zero values point at a time-format mismatch
	// upstream and are logged by the service.
	SkippedUnknownStart int
}
