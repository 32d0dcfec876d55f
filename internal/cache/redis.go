// Package cache fronts the fill engine with a Redis solution cache: grids
// that were already solved once come back without a search.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/redis/go-redis/v9"

	"github.com/crossfill/xwords/pkg/grid"
)

// DefaultTTL is how long cached solutions live unless configured otherwise.
const DefaultTTL = 24 * time.Hour

// SolutionCache stores solved grid contents keyed by the input grid.
type SolutionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis at the given URL. A zero ttl means DefaultTTL.
func New(redisURL string, ttl time.Duration) (*SolutionCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &SolutionCache{client: client, ttl: ttl}, nil
}

// key derives the cache key from the input grid's dimensions and contents.
func key(g grid.Grid) string {
	return fmt.Sprintf("xwords:fill:%dx%d:%016x", g.Width(), g.Height(), xxhash.Sum64String(g.Contents()))
}

// Get returns the cached solution contents for g, if present.
func (c *SolutionCache) Get(ctx context.Context, g grid.Grid) (string, bool, error) {
	val, err := c.client.Get(ctx, key(g)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read solution cache: %w", err)
	}
	return val, true, nil
}

// Set stores the solution contents for g.
func (c *SolutionCache) Set(ctx context.Context, g grid.Grid, solution string) error {
	if err := c.client.Set(ctx, key(g), solution, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write solution cache: %w", err)
	}
	return nil
}

// Close releases the Redis connection.
func (c *SolutionCache) Close() error { return c.client.Close() }
