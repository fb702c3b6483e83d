package config

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds the cache client from REDIS_ADDR. An empty address or a
// failed ping returns nil: the cache is optional and callers must work
// without it.
func ConnectRedis() *redis.Client {
	addr := strings.TrimSpace(EnvOrDefault("REDIS_ADDR", ""))
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: EnvOrDefault("REDIS_PASSWORD", ""),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
