package ports

import (
	"context"
	"time"
)

// OtpStore holds one-time passwords keyed by email address.
// Codes expire after their TTL and are removed on first successful read,
// so every code can be used at most once.
type OtpStore interface {
	// Save stores the code for the email, replacing any previous one.
	// The code becomes unreadable once ttl elapses.
	Save(ctx context.Context, email string, code string, ttl time.Duration) error

	// Consume atomically reads and deletes the code stored for the email.
	// Returns errs.ObjectNotFoundError when no live code exists.
	Consume(ctx context.Context, email string) (string, error)
}
