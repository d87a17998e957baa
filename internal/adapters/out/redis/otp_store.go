// Package redis implements the one-time password store on Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"bottleshop/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// OtpStore keeps one-time passwords in Redis under a per-email key.
// Expiry is delegated to Redis via the key TTL, and GETDEL makes the
// read-and-invalidate step atomic.
type OtpStore struct {
	client *redis.Client
}

// NewOtpStore creates a new Redis-backed OTP store.
func NewOtpStore(client *redis.Client) *OtpStore {
	return &OtpStore{client: client}
}

// Save stores the code for the email, replacing any previous one.
func (s *OtpStore) Save(ctx context.Context, email string, code string, ttl time.Duration) error {
	return s.client.Set(ctx, otpKey(email), code, ttl).Err()
}

// Consume atomically reads and deletes the code stored for the email.
func (s *OtpStore) Consume(ctx context.Context, email string) (string, error) {
	code, err := s.client.GetDel(ctx, otpKey(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", errs.NewObjectNotFoundError("otp", email)
	}

	if err != nil {
		return "", err
	}

	return code, nil
}

func otpKey(email string) string {
	return fmt.Sprintf("otp:%s", strings.ToLower(strings.TrimSpace(email)))
}
