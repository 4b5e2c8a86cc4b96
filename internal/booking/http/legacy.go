package http

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// CreateBookingBody is the normalized create payload.
type CreateBookingBody struct {
	BookingDate    string
	Purpose        string
	NumberOfMember int
	UserID         int64
	FacilityID     int64
	SlotNumber     int
}

// Field aliases accepted in the create payload. The old backend and the
// client never agreed on spelling, so every known variant maps to one
// canonical field here instead of being patched at call sites.
var createBookingAliases = map[string][]string{
	"bookingDate":    {"bookingDate", "booking_date", "date"},
	"purpose":        {"purpose"},
	"numberOfMember": {"numberOfMember", "number_of_member", "numberOfMembers"},
	"userId":         {"userId", "user_id"},
	"facilityId":     {"facilityId", "facility_id", "roomId"},
	"slotNumber":     {"slotNumber", "slot_number", "slot"},
}

// NormalizeCreateBooking decodes a create payload accepting the legacy field
// aliases, and coerces numeric fields that some clients send as strings
// (e.g. a facility id of "7").
func NormalizeCreateBooking(raw []byte) (CreateBookingBody, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return CreateBookingBody{}, fmt.Errorf("invalid JSON body: %w", err)
	}

	var body CreateBookingBody
	var err error

	if v, ok := lookup(fields, createBookingAliases["bookingDate"]); ok {
		if body.BookingDate, err = asString(v); err != nil {
			return CreateBookingBody{}, fmt.Errorf("bookingDate: %w", err)
		}
	}
	if v, ok := lookup(fields, createBookingAliases["purpose"]); ok {
		if body.Purpose, err = asString(v); err != nil {
			return CreateBookingBody{}, fmt.Errorf("purpose: %w", err)
		}
	}
	if v, ok := lookup(fields, createBookingAliases["numberOfMember"]); ok {
		n, err := asInt64(v)
		if err != nil {
			return CreateBookingBody{}, fmt.Errorf("numberOfMember: %w", err)
		}
		body.NumberOfMember = int(n)
	}
	if v, ok := lookup(fields, createBookingAliases["userId"]); ok {
		if body.UserID, err = asInt64(v); err != nil {
			return CreateBookingBody{}, fmt.Errorf("userId: %w", err)
		}
	}
	if v, ok := lookup(fields, createBookingAliases["facilityId"]); ok {
		if body.FacilityID, err = asInt64(v); err != nil {
			return CreateBookingBody{}, fmt.Errorf("facilityId: %w", err)
		}
	}
	if v, ok := lookup(fields, createBookingAliases["slotNumber"]); ok {
		n, err := asInt64(v)
		if err != nil {
			return CreateBookingBody{}, fmt.Errorf("slotNumber: %w", err)
		}
		body.SlotNumber = int(n)
	}

	return body, nil
}

// lookup returns the first alias present in the payload.
func lookup(fields map[string]json.RawMessage, aliases []string) (json.RawMessage, bool) {
	for _, key := range aliases {
		if v, ok := fields[key]; ok {
			return v, true
		}
	}
	return nil, false
}

func asString(raw json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("expected string, got %s", string(raw))
	}
	return s, nil
}

// asInt64 accepts a JSON number or a string holding one.
func asInt64(raw json.RawMessage) (int64, error) {
	var n json.Number
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&n); err == nil {
		if i, err := n.Int64(); err == nil {
			return i, nil
		}
		return 0, fmt.Errorf("expected integer, got %s", string(raw))
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("expected number or numeric string, got %s", string(raw))
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected numeric string, got %q", s)
	}
	return i, nil
}
