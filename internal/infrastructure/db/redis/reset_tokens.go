package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/learnhub/course-catalog/internal/core/domain"
)

// ResetTokenStore keeps password-reset tokens in Redis under a TTL.
// Key format: pwreset:<token> → user id. Expiry is handled by Redis;
// there is no sweep.
type ResetTokenStore struct {
	client *redis.Client
}

func NewResetTokenStore(client *redis.Client) *ResetTokenStore {
	return &ResetTokenStore{client: client}
}

// Save stores a token for the given user. The token value is the key, so
// redeeming requires knowing the full 64-hex-char secret.
func (s *ResetTokenStore) Save(ctx context.Context, token, userID string, ttl time.Duration) error {
	if err := s.client.Set(ctx, key(token), userID, ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Consume atomically fetches and deletes a token. GETDEL guarantees a
// token can only ever be redeemed once, even under concurrent requests.
func (s *ResetTokenStore) Consume(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, key(token)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", domain.ErrResetTokenInvalid
		}
		return "", fmt.Errorf("consume reset token: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return userID, nil
}

func key(token string) string {
	return "pwreset:" + token
}
