package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RepoCache stores GitHub repo listings with a TTL.
// Key format: github:repos:<username>
type RepoCache struct {
	client *redis.Client
}

// NewRepoCache creates a RepoCache wrapping the given Redis client.
func NewRepoCache(client *redis.Client) *RepoCache {
	return &RepoCache{client: client}
}

// Get returns the cached payload for username, or nil on a cache miss.
func (c *RepoCache) Get(ctx context.Context, username string) (json.RawMessage, error) {
	raw, err := c.client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("repo cache get: %w", err)
	}
	return json.RawMessage(raw), nil
}

// Set stores the payload for username, expiring after ttl.
func (c *RepoCache) Set(ctx context.Context, username string, payload json.RawMessage, ttl time.Duration) error {
	return c.client.Set(ctx, c.key(username), []byte(payload), ttl).Err()
}

func (c *RepoCache) key(username string) string {
	return fmt.Sprintf("github:repos:%s", username)
}
