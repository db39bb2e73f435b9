package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Dashboard cache keys
const (
	DashboardKeyPrefix = "dashboard:"
	DashboardKeyFmt    = "dashboard:%s:%s:%s"
)

var client *redis.Client

// Init connects to Redis. On failure the client stays nil and every cache
// function below becomes a no-op.
func Init(addr, password string, db int) error {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		c.Close()
		client = nil
		return err
	}
	client = c
	return nil
}

// GetClient returns the Redis client, or nil when Redis is not available.
func GetClient() *redis.Client {
	return client
}

// Close releases the connection pool.
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// DashboardKey builds the cache key of a dashboard query. Empty parts are
// written as "all".
func DashboardKey(businessID, startDate, endDate string) string {
	return fmt.Sprintf(DashboardKeyFmt, orAll(businessID), orAll(startDate), orAll(endDate))
}

func orAll(s string) string {
	if s == "" {
		return "all"
	}
	return s
}

// GetCached returns cached data for a key
func GetCached(ctx context.Context, key string) ([]byte, bool) {
	if client == nil {
		return nil, false
	}
	data, err := client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return data, true
}

// SetCached stores data with a TTL
func SetCached(ctx context.Context, key string, data []byte, ttl time.Duration) {
	if client == nil {
		return
	}
	client.Set(ctx, key, data, ttl)
}

// InvalidatePattern removes all keys matching a glob pattern
func InvalidatePattern(ctx context.Context, pattern string) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// InvalidateLedgerCaches clears every cached aggregate that reads the
// ledger or the orders table.
// Called when: any ledger entry or order is written
func InvalidateLedgerCaches(ctx context.Context) {
	InvalidatePattern(ctx, DashboardKeyPrefix+"*")
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
