// Package cache provides the Redis-backed query cache shared by the read endpoints.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is the expiry applied to every cached payload. The cache is
// purely time-bounded; entries are never invalidated explicitly.
const DefaultTTL = 300 * time.Second

// DefaultPrefix is the leading segment of every cache key.
const DefaultPrefix = "mkt"

// Gateway wraps a Redis client with the key scheme, TTL policy and JSON
// serialization used by the query endpoints. A nil client is allowed and
// turns every operation into a no-op, so the service can run cache-less.
type Gateway struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

// NewGateway creates a Gateway over the given Redis client.
// If ttl is 0 or negative, it defaults to DefaultTTL. If prefix is empty, it uses DefaultPrefix.
func NewGateway(rdb *redis.Client, ttl time.Duration, prefix string) *Gateway {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Gateway{
		rdb:    rdb,
		ttl:    ttl,
		prefix: prefix,
	}
}

// Enabled reports whether a Redis client is configured.
func (g *Gateway) Enabled() bool {
	return g.rdb != nil
}

// Key builds the deterministic cache key for a query: prefix, semantic
// scope and identifying parameters joined by ":". Each part is escaped so
// that distinct parameter lists can never collide on the delimiter.
func (g *Gateway) Key(scope string, parts ...string) string {
	elems := make([]string, 0, len(parts)+2)
	elems = append(elems, g.prefix, safe(scope))
	for _, p := range parts {
		elems = append(elems, safe(p))
	}
	return strings.Join(elems, ":")
}

// Get loads the payload stored under key into dest and reports whether it
// succeeded. A miss, an I/O error and a corrupt payload all report false;
// a corrupt payload is additionally deleted best-effort. Callers treat
// false uniformly as "not cached".
func (g *Gateway) Get(ctx context.Context, key string, dest any) bool {
	if g.rdb == nil {
		return false
	}

	b, err := g.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}

	if err := json.Unmarshal(b, dest); err != nil {
		// Delete corrupted cache entry
		_ = g.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// Set serializes value and stores it under key with the standard TTL.
// Failures are logged and swallowed; callers never fail because of a
// cache write.
func (g *Gateway) Set(ctx context.Context, key string, value any) {
	if g.rdb == nil {
		return
	}

	b, err := json.Marshal(value)
	if err != nil {
		slog.Warn("cache serialization failed", "key", key, "error", err)
		return
	}
	if err := g.rdb.Set(ctx, key, b, g.ttl).Err(); err != nil {
		slog.Warn("cache write failed", "key", key, "error", err)
	}
}

// TTL reports the expiry applied by Set.
func (g *Gateway) TTL() time.Duration {
	return g.ttl
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	// Simple escaping of characters that are problematic for Redis keys
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
