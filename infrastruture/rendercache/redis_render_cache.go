// Package rendercache caches rendered maze text in Redis so the hot
// plain-text endpoint skips the document store.
package rendercache

import (
	"context"
	"time"

	"github.com/davidjwbbc/bbc-kata3-mazegenerator/service/i"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "maze:rendered:"

// RedisRenderCache stores rendered maze text in Redis with TTL support.
type RedisRenderCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRenderCache initializes a RedisRenderCache with the provided Redis client and TTL.
func NewRedisRenderCache(client *redis.Client, ttlSeconds int) (i.RenderCache, error) {
	return &RedisRenderCache{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// Set stores the rendered text for a maze, refreshing its expiry.
func (rrc *RedisRenderCache) Set(ctx context.Context, id uuid.UUID, rendered string) error {
	return rrc.client.Set(ctx, keyPrefix+id.String(), rendered, rrc.ttl).Err()
}

// Get retrieves the rendered text for a maze. A missing or expired key is
// reported as an error, which callers treat as a cache miss.
func (rrc *RedisRenderCache) Get(ctx context.Context, id uuid.UUID) (string, error) {
	return rrc.client.Get(ctx, keyPrefix+id.String()).Result()
}
