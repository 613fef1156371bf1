package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const denylistKeyPrefix = "venuehub:auth:denylist:"

// TokenStore tracks invalidated token IDs in Redis. Entries expire with
// the token itself, so the denylist never outgrows the set of live tokens.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// Deny marks a token id as invalidated for the token's remaining lifetime.
func (s *TokenStore) Deny(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired, nothing to deny
		return nil
	}

	if err := s.client.Set(ctx, denylistKeyPrefix+jti, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to denylist token: %w", err)
	}

	return nil
}

// IsDenied reports whether a token id has been invalidated.
func (s *TokenStore) IsDenied(ctx context.Context, jti string) (bool, error) {
	count, err := s.client.Exists(ctx, denylistKeyPrefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check token denylist: %w", err)
	}

	return count > 0, nil
}
