package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RDB is nil when REDIS_ADDR is unset; callers treat the cache as
// best-effort and fall back to Postgres/in-memory state.
var RDB *redis.Client

func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("⚠️  REDIS_ADDR not set, running without cache")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("⚠️  Redis unreachable (%v), running without cache", err)
		return
	}

	RDB = client
	log.Println("✅ Connected to Redis")
}
