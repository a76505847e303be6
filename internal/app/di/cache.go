package di

import (
	"market_backend/internal/platform/cache"

	"github.com/redis/go-redis/v9"
)

// NewQueryCache creates the query cache gateway over the given Redis client.
// A nil client is allowed; the service then answers every query from the store.
func NewQueryCache(rdb *redis.Client) *cache.Gateway {
	return cache.NewGateway(rdb, cache.DefaultTTL, cache.DefaultPrefix)
}
