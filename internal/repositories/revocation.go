package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/intervuo/interview-platform/internal/logger"
)

// RevocationCacheRepository keeps a denylist of revoked session token ids in
// Redis. Entries expire together with the token they revoke, so the list
// never needs explicit cleanup.
type RevocationCacheRepository struct {
	client *redis.Client
}

// NewRevocationCacheRepository creates a new repository instance.
func NewRevocationCacheRepository(client *redis.Client) *RevocationCacheRepository {
	return &RevocationCacheRepository{client: client}
}

func revocationKey(tokenID string) string {
	return fmt.Sprintf("session:revoked:%s", tokenID)
}

// Revoke marks a token id as revoked for ttl, the remaining token lifetime.
func (r *RevocationCacheRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := revocationKey(tokenID)
	err := r.client.Set(ctx, key, "1", ttl).Err()

	logger.Log.Infow("token revoke",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// IsRevoked reports whether a token id is on the denylist.
func (r *RevocationCacheRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	key := revocationKey(tokenID)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		logger.Log.Infow("token revocation check",
			"key", key,
			"error", err,
		)
		return false, err
	}

	return true, nil
}
