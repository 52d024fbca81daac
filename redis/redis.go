package redis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	// Test connection
	_, err := Client.Ping(Ctx).Result()
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	fmt.Println("✅ Connected to Redis")
}

// BlacklistToken stores a revoked token until it would have expired
// anyway. The auth middleware rejects blacklisted tokens.
func BlacklistToken(token string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, blacklistKey(token), "revoked", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked by a logout.
func IsTokenBlacklisted(token string) bool {
	if Client == nil {
		return false
	}
	n, err := Client.Exists(Ctx, blacklistKey(token)).Result()
	return err == nil && n > 0
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}
