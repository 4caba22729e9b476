// Package session stores revoked auth-token ids so that logout takes
// effect before the token's natural expiry.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationRedis records revoked token ids in Redis, keyed by jti, with a
// TTL equal to the token's remaining lifetime. Once the token would have
// expired anyway the entry evicts itself.
type RevocationRedis struct {
	client *redis.Client
	prefix string
}

// NewRevocationRedis creates a Redis-backed revocation store.
func NewRevocationRedis(client *redis.Client, prefix string) *RevocationRedis {
	return &RevocationRedis{client: client, prefix: prefix}
}

func (r *RevocationRedis) key(tokenID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, tokenID)
}

// Revoke marks a token id as revoked until the token's expiry. Tokens that
// have already expired need no entry.
func (r *RevocationRedis) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, r.key(tokenID), "revoked", ttl).Err()
}

// IsRevoked reports whether a token id has been revoked.
func (r *RevocationRedis) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
