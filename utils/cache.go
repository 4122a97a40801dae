package utils

import (
	"context"
	"fmt"
	"log"
	"time"

	"slotify/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the shared Redis client used for availability response caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the shared cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// AvailabilityCacheKey builds the cache key for an availability response.
func AvailabilityCacheKey(providerID, serviceID, date string) string {
	return fmt.Sprintf("avail:%s:%s:%s", providerID, serviceID, date)
}

// InvalidateAvailability drops all cached availability entries for a provider on a
// given date. Called after a commit or cancellation changes the busy set.
func InvalidateAvailability(ctx context.Context, client *redis.Client, providerID, date string) {
	if client == nil {
		return
	}
	pattern := fmt.Sprintf("avail:%s:*:%s", providerID, date)
	iter := client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("availability cache invalidation failed: " + err.Error())
	}
}
