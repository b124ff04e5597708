// Package redis holds the Redis client used for login throttling. The
// connection is optional infrastructure: callers degrade gracefully when
// it is unavailable, so dial and command timeouts are kept short.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// Config carries the connection settings for the throttle store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds dialing, individual commands, and the startup ping.
	Timeout time.Duration
}

// Connect builds the client backing the login throttle and confirms the
// server is reachable with a ping before handing it out.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
