package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTime(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"07:30", "07:30:00"},
		{"07:30:00", "07:30:00"},
		{" 07:30 ", "07:30:00"},
		{"7:30", "7:30"}, // not HH:MM shaped, left alone
		{"", ""},
		{"19:00", "19:00:00"},
	} {
		assert.Equal(t, tc.want, NormalizeTime(tc.in), "input %q", tc.in)
	}
}

func TestSameTime(t *testing.T) {
	assert.True(t, SameTime("07:30", "07:30:00"))
	assert.True(t, SameTime("07:30:00", "07:30:00"))
	assert.False(t, SameTime("07:30:00", "09:20:00"))
	assert.False(t, SameTime("07:30", "07:31"))
}
