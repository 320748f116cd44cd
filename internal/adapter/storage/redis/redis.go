package redis

import (
	"context"
	"fmt"
	"time"

	"trust-engine/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Analyzer reads sit on the request path under a per-analyzer timeout,
// so keep the client's own timeouts tighter than the defaults.
const (
	dialTimeout = 2 * time.Second
	opTimeout   = 500 * time.Millisecond
)

// NewClient creates a Redis client for the velocity counter store and
// verifies connectivity before returning it.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	log.Info().
		Str("addr", cfg.Addr()).
		Int("db", cfg.DB).
		Msg("Redis connection established")

	return client, nil
}
