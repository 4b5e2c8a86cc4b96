package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCreateBooking(t *testing.T) {
	t.Run("canonical camelCase payload", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{
			"bookingDate": "2026-09-05",
			"purpose": "Seminar",
			"numberOfMember": 4,
			"userId": 7,
			"facilityId": 1,
			"slotNumber": 2
		}`))
		require.NoError(t, err)
		assert.Equal(t, CreateBookingBody{
			BookingDate:    "2026-09-05",
			Purpose:        "Seminar",
			NumberOfMember: 4,
			UserID:         7,
			FacilityID:     1,
			SlotNumber:     2,
		}, body)
	})

	t.Run("snake_case aliases", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{
			"booking_date": "2026-09-05",
			"number_of_member": 4,
			"user_id": 7,
			"facility_id": 1,
			"slot_number": 2
		}`))
		require.NoError(t, err)
		assert.Equal(t, "2026-09-05", body.BookingDate)
		assert.Equal(t, 4, body.NumberOfMember)
		assert.Equal(t, int64(7), body.UserID)
		assert.Equal(t, int64(1), body.FacilityID)
		assert.Equal(t, 2, body.SlotNumber)
	})

	t.Run("odd legacy aliases", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{
			"date": "2026-09-05",
			"numberOfMembers": 4,
			"roomId": 1,
			"slot": 2
		}`))
		require.NoError(t, err)
		assert.Equal(t, "2026-09-05", body.BookingDate)
		assert.Equal(t, 4, body.NumberOfMember)
		assert.Equal(t, int64(1), body.FacilityID)
		assert.Equal(t, 2, body.SlotNumber)
	})

	t.Run("numeric fields sent as strings", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{
			"userId": "7",
			"facilityId": "12",
			"slotNumber": "3",
			"numberOfMember": "5"
		}`))
		require.NoError(t, err)
		assert.Equal(t, int64(7), body.UserID)
		assert.Equal(t, int64(12), body.FacilityID)
		assert.Equal(t, 3, body.SlotNumber)
		assert.Equal(t, 5, body.NumberOfMember)
	})

	t.Run("first alias wins", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{
			"bookingDate": "2026-09-05",
			"date": "2026-09-06"
		}`))
		require.NoError(t, err)
		assert.Equal(t, "2026-09-05", body.BookingDate)
	})

	t.Run("missing fields stay zero", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{}`))
		require.NoError(t, err)
		assert.Equal(t, CreateBookingBody{}, body)
	})

	t.Run("empty numeric string is zero", func(t *testing.T) {
		body, err := NormalizeCreateBooking([]byte(`{"slotNumber": ""}`))
		require.NoError(t, err)
		assert.Zero(t, body.SlotNumber)
	})

	t.Run("non-numeric string rejected", func(t *testing.T) {
		_, err := NormalizeCreateBooking([]byte(`{"facilityId": "first floor"}`))
		assert.Error(t, err)
	})

	t.Run("invalid JSON rejected", func(t *testing.T) {
		_, err := NormalizeCreateBooking([]byte(`{"bookingDate": `))
		assert.Error(t, err)
	})
}
