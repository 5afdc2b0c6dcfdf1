// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis provides a managed client for volatile shared state.

In Movix it backs the cross-instance rate limiter and takes part in readiness.
It is optional: every consumer must keep working when no client is configured.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/taibuivan/movix/internal/platform/constants"
)

// Client settings. The limiter issues one short pipeline per request, so the
// pool stays small and every network step is bounded tightly.
const (
	poolSize     = 10
	minIdleConns = 2
	dialTimeout  = 1 * time.Second
	opTimeout    = 250 * time.Millisecond
	pingTimeout  = 2 * time.Second
)

/*
NewClient parses redisURL, applies the client settings and verifies the
server answers before returning.

Parameters:
  - ctx: context.Context bounding the initial ping
  - redisURL: string (redis:// or rediss://)
  - logger: *slog.Logger

Returns:
  - *goredis.Client
  - error: invalid URL or unreachable server
*/
func NewClient(ctx context.Context, redisURL string, logger *slog.Logger) (*goredis.Client, error) {
	options, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.ClientName = constants.AppName
	options.PoolSize = poolSize
	options.MinIdleConns = minIdleConns
	options.DialTimeout = dialTimeout
	options.ReadTimeout = opTimeout
	options.WriteTimeout = opTimeout

	client := goredis.NewClient(options)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
	)
	return client, nil
}

// Ping reports whether the server answers within the ping timeout.
func Ping(ctx context.Context, client goredis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}
