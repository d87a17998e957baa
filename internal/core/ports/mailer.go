package ports

import "context"

// Mailer sends transactional email to platform users.
type Mailer interface {
	Send(ctx context.Context, to string, subject string, body string) error
}
