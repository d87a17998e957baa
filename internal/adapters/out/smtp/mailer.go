// Package smtp implements transactional mail delivery over SMTP.
package smtp

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer sends plain-text mail through a single SMTP endpoint.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates a new SMTP mailer.
func NewMailer(host string, port int, username string, password string, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send delivers a single plain-text message. The dial honours ctx
// cancellation only up to the point the SMTP session starts.
func (m *Mailer) Send(ctx context.Context, to string, subject string, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	return m.dialer.DialAndSend(msg)
}
