package database

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// ConnectRedis opens the optional cache connection. Callers pass a nil
// client through to the services when no Redis is configured.
func ConnectRedis(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0, // use default DB
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, err
	}
	return client, nil
}
