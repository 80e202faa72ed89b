package ports

import (
	"context"
	"time"
)

// ResetTokenStore keeps single-use password-reset tokens with a TTL.
// Consume must atomically return the owning user id and delete the token
// so a token can never be redeemed twice.
type ResetTokenStore interface {
	Save(ctx context.Context, token, userID string, ttl time.Duration) error
	Consume(ctx context.Context, token string) (userID string, err error)
}

// Mailer delivers password-reset notifications. Actual email transport is
// outside this service; implementations may simply log.
type Mailer interface {
	SendPasswordReset(ctx context.Context, email, name, token string) error
}
