package configs

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis builds the cache client. A failed ping is not fatal: the
// canvas cache is best effort and the caller may still wire it, or skip it.
func ConnectRedis(cfg RedisConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("Redis ping error: %v", err)
	} else {
		log.Println("Connected to Redis!")
	}
	return client
}
