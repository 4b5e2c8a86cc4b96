package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/campuskit/facility-booking-backend/internal/booking"
	"github.com/campuskit/facility-booking-backend/internal/user"
)

// BookingNotifier tells booking owners about approval decisions. It writes an
// in-app notification and sends an email, both best effort.
type BookingNotifier struct {
	notifications Service
	users         user.Service
	email         EmailSender
}

var _ booking.DecisionNotifier = (*BookingNotifier)(nil)

func NewBookingNotifier(notifications Service, users user.Service, email EmailSender) *BookingNotifier {
	return &BookingNotifier{
		notifications: notifications,
		users:         users,
		email:         email,
	}
}

func (n *BookingNotifier) NotifyDecision(ctx context.Context, b *booking.Booking) {
	title, message := decisionMessage(b)

	if _, err := n.notifications.Notify(ctx, b.UserID, title, message); err != nil {
		log.Printf("failed to write decision notification for booking %d: %v", b.ID, err)
	}

	u, err := n.users.GetByID(ctx, b.UserID)
	if err != nil {
		log.Printf("failed to resolve owner of booking %d for email: %v", b.ID, err)
		return
	}

	go func(toEmail, toName, subject, body string) {
		if err := n.email.Send(toEmail, toName, subject, body); err != nil {
			log.Printf("failed to send decision email for booking %d: %v", b.ID, err)
		}
	}(u.Email, u.FullName, title, message)
}

func decisionMessage(b *booking.Booking) (title, message string) {
	slot := fmt.Sprintf("%s %s-%s", b.BookingDate, b.StartTime, b.EndTime)

	if b.Status.Is(booking.StatusApproved) {
		title = "Booking approved"
		message = fmt.Sprintf(
			"Your booking of %s (%s) on %s has been approved.",
			b.FacilityName, b.FacilityCode, slot,
		)
		return title, message
	}

	title = "Booking rejected"
	message = fmt.Sprintf(
		"Your booking of %s (%s) on %s has been rejected. Reason: %s",
		b.FacilityName, b.FacilityCode, slot, b.RejectionReason,
	)
	return title, message
}
