package notification

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailSender delivers a plain-text email to a single recipient.
type EmailSender interface {
	Send(toEmail, toName, subject, body string) error
}

// SendGridSender sends email through the SendGrid API. When no API key is
// configured it logs and drops the message instead of failing.
type SendGridSender struct {
	apiKey   string
	fromMail string
	fromName string
}

func NewSendGridSender(apiKey, fromMail, fromName string) *SendGridSender {
	if fromName == "" {
		fromName = "CampusKit"
	}
	return &SendGridSender{
		apiKey:   apiKey,
		fromMail: fromMail,
		fromName: fromName,
	}
}

func (s *SendGridSender) Send(toEmail, toName, subject, body string) error {
	if s.apiKey == "" || s.fromMail == "" {
		log.Printf("email disabled, dropping message to %s (subject: %s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.fromMail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}
