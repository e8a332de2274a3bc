package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
)

// JSONCache stores JSON-encoded values under namespaced keys. Every failure is
// logged and swallowed: reads degrade to misses and writes to no-ops.
type JSONCache struct {
	client  *Client
	log     *logger.Logger
	metrics *metrics.CacheMetrics
}

// NewJSONCache wraps client. log and m may be nil.
func NewJSONCache(client *Client, log *logger.Logger, m *metrics.CacheMetrics) *JSONCache {
	return &JSONCache{client: client, log: log, metrics: m}
}

// Get decodes the value at key into dest and reports whether it was found.
func (c *JSONCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, c.client.Key(key))
	if err != nil {
		if IsMiss(err) {
			c.metrics.Observe("get", metrics.CacheResultMiss)
			return false
		}
		c.metrics.Observe("get", metrics.CacheResultError)
		c.warn(ctx, key, "cache get failed", err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.metrics.Observe("get", metrics.CacheResultError)
		c.warn(ctx, key, "cache entry undecodable", err)
		return false
	}
	c.metrics.Observe("get", metrics.CacheResultHit)
	return true
}

// Set encodes value and stores it with ttl.
func (c *JSONCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.metrics.Observe("set", metrics.CacheResultError)
		c.warn(ctx, key, "cache encode failed", err)
		return
	}
	if err := c.client.Set(ctx, c.client.Key(key), payload, ttl); err != nil {
		c.metrics.Observe("set", metrics.CacheResultError)
		c.warn(ctx, key, "cache set failed", err)
		return
	}
	c.metrics.Observe("set", metrics.CacheResultOK)
}

// Delete removes keys in a single round trip.
func (c *JSONCache) Delete(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	namespaced := make([]string, 0, len(keys))
	for _, key := range keys {
		namespaced = append(namespaced, c.client.Key(key))
	}
	if err := c.client.Del(ctx, namespaced...); err != nil {
		c.metrics.Observe("delete", metrics.CacheResultError)
		for _, key := range keys {
			c.warn(ctx, key, "cache delete failed", err)
		}
		return
	}
	c.metrics.Observe("delete", metrics.CacheResultOK)
}

func (c *JSONCache) warn(ctx context.Context, key, msg string, err error) {
	if c.log == nil {
		return
	}
	ctx = c.log.WithFields(ctx, map[string]any{
		"cache_key": key,
		"error":     err.Error(),
	})
	c.log.Warn(ctx, msg)
}
