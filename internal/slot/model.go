package slot

import (
	"errors"
	"strings"
)

var (
	ErrNotFound = errors.New("slot not found")
)

// Slot is a fixed time interval in the daily schedule catalog.
// The catalog is system wide, not per facility, and is seeded once.
// Times travel as "HH:MM:SS" strings, which is what the client renders.
type Slot struct {
	ID        int64
	Number    int
	StartTime string
	EndTime   string
}

// NormalizeTime pads "HH:MM" to "HH:MM:SS" so times from different
// producers compare equal. Anything else is returned unchanged.
func NormalizeTime(t string) string {
	t = strings.TrimSpace(t)
	if len(t) == 5 && t[2] == ':' {
		return t + ":00"
	}
	return t
}

// SameTime compares two clock strings after normalization.
func SameTime(a, b string) bool {
	return NormalizeTime(a) == NormalizeTime(b)
}
