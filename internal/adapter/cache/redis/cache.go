// Package redis caches Google Books search results in Redis.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/bud-backend/internal/config"
	"github.com/heartmarshall/bud-backend/internal/domain"
)

const keyPrefix = "bud:gbsearch:"

// NewClient connects to Redis and pings it.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

// SearchCache stores normalized search results keyed by query.
type SearchCache struct {
	rdb *goredis.Client
	ttl time.Duration
	log *slog.Logger
}

// NewSearchCache wraps an existing client. Entries expire after ttl.
func NewSearchCache(rdb *goredis.Client, ttl time.Duration, logger *slog.Logger) *SearchCache {
	return &SearchCache{rdb: rdb, ttl: ttl, log: logger.With("adapter", "redis_search_cache")}
}

// searchKey normalizes whitespace and case so equivalent queries share an entry.
func searchKey(query string, maxResults int) string {
	q := strings.Join(strings.Fields(strings.ToLower(query)), " ")
	return fmt.Sprintf("%s%d:%s", keyPrefix, maxResults, q)
}

// Get returns cached volumes. ok is false on a miss.
func (c *SearchCache) Get(ctx context.Context, query string, maxResults int) (vols []domain.GoogleVolume, ok bool, err error) {
	key := searchKey(query, maxResults)
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, &vols); err != nil {
		c.log.WarnContext(ctx, "dropping corrupt cache entry", slog.String("key", key))
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false, nil
	}
	return vols, true, nil
}

// Set stores volumes under the normalized query.
func (c *SearchCache) Set(ctx context.Context, query string, maxResults int, vols []domain.GoogleVolume) error {
	key := searchKey(query, maxResults)
	raw, err := json.Marshal(vols)
	if err != nil {
		return fmt.Errorf("marshal volumes: %w", err)
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Ping reports whether Redis is reachable. Used by the readiness probe.
func (c *SearchCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}
