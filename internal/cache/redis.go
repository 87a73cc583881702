package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Optional read cache in front of the menu listing. When REDIS_URL is not
// configured every operation is a no-op and callers fall through to the
// record store.

const (
	// MenuKey caches the full public menu listing.
	MenuKey = "delights:menu"

	// MenuTTL bounds staleness if an invalidation is ever missed.
	MenuTTL = 5 * time.Minute
)

var (
	redisClient *redis.Client
	enabled     bool
)

// Initialize sets up the Redis connection if a URL is provided.
func Initialize(redisURL string) {
	if redisURL == "" {
		log.Println("Redis URL not provided, menu caching disabled")
		enabled = false
		return
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v, caching disabled", err)
		enabled = false
		return
	}

	redisClient = redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v, caching disabled", err)
		enabled = false
		return
	}

	enabled = true
	log.Println("Redis cache initialized")
}

// Close closes the Redis connection.
func Close() {
	if redisClient != nil {
		redisClient.Close()
	}
}

// Set stores a value with an expiration. No-op when caching is disabled.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if !enabled {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return redisClient.Set(ctx, key, data, expiration).Err()
}

// Get retrieves a cached value into dest. Returns redis.Nil on a miss or
// when caching is disabled.
func Get(ctx context.Context, key string, dest interface{}) error {
	if !enabled {
		return redis.Nil
	}

	data, err := redisClient.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

// Delete removes a key. No-op when caching is disabled.
func Delete(ctx context.Context, key string) error {
	if !enabled {
		return nil
	}

	return redisClient.Del(ctx, key).Err()
}
