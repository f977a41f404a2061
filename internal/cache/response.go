// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	// responseKeyPrefix is the Valkey key prefix for cached API responses.
	responseKeyPrefix = "resp:"

	// DefaultResponseTTL is how long a public response stays cached.
	DefaultResponseTTL = 2 * time.Minute
)

// ResponseCache stores serialized public API responses in Valkey, grouped
// by resource so an admin write can drop everything it affects. Cache
// errors are logged and treated as misses.
type ResponseCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewResponseCache creates a cache backed by client. A zero ttl uses
// DefaultResponseTTL.
func NewResponseCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *ResponseCache {
	if ttl == 0 {
		ttl = DefaultResponseTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseCache{client: client, ttl: ttl, logger: logger}
}

// Key builds the cache key for a request on resource. requestURI should
// include the query string so filtered lists are cached separately.
func Key(resource, requestURI string) string {
	return resource + ":" + requestURI
}

// Get returns the cached body for key.
func (rc *ResponseCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := rc.client.Get(ctx, responseKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		rc.logger.Warn("response cache get error", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return val, true
}

// Set stores body under key with the configured TTL.
func (rc *ResponseCache) Set(ctx context.Context, key string, body []byte) {
	if err := rc.client.Set(ctx, responseKeyPrefix+key, body, rc.ttl).Err(); err != nil {
		rc.logger.Warn("response cache set error", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateResource drops every cached response for the given resources.
func (rc *ResponseCache) InvalidateResource(ctx context.Context, resources ...string) {
	for _, r := range resources {
		rc.deletePattern(ctx, responseKeyPrefix+r+":*")
	}
}

// InvalidateAll drops every cached response.
func (rc *ResponseCache) InvalidateAll(ctx context.Context) {
	rc.deletePattern(ctx, responseKeyPrefix+"*")
}

func (rc *ResponseCache) deletePattern(ctx context.Context, pattern string) {
	var cursor uint64
	var deleted int
	for {
		keys, next, err := rc.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			rc.logger.Warn("response cache scan error", zap.String("pattern", pattern), zap.Error(err))
			return
		}
		if len(keys) > 0 {
			if err := rc.client.Del(ctx, keys...).Err(); err != nil {
				rc.logger.Warn("response cache bulk delete error", zap.Error(err))
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		rc.logger.Debug("response cache invalidated", zap.String("pattern", pattern), zap.Int("deleted", deleted))
	}
}
