// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/taibuivan/movix/internal/platform/constants"
	"github.com/taibuivan/movix/internal/platform/ctxutil"
	"github.com/taibuivan/movix/internal/platform/metrics"
)

// # Rate Limiting

// Limiter decides whether one more request from key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit rejects requests once the client IP exceeds the limiter's budget.
// Limiter failures never block traffic: the request is logged and let through.
func RateLimit(limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			allowed, err := limiter.Allow(request.Context(), clientIP(request))
			if err != nil {
				ctxutil.GetLogger(request.Context()).WarnContext(request.Context(), "rate_limiter_unavailable",
					slog.String("error", err.Error()),
				)
				allowed = true
			}

			if !allowed {
				writer.Header().Set(constants.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(constants.RateLimitWindow.Seconds()))))
				writeError(writer, http.StatusTooManyRequests, "RATE_LIMITED", "Rate limit exceeded")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// # In-process token buckets

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps one token bucket per key in memory.
type LocalLimiter struct {
	mu      sync.Mutex
	clients map[string]*rateLimitClient
	rps     rate.Limit
	burst   int
}

/*
NewLocalLimiter creates an in-process limiter and starts its cleanup loop.

Parameters:
  - ctx: context.Context (cancel to stop the cleanup goroutine)
  - rps: float64 (refill rate per key)
  - burst: int (bucket size per key)

Returns:
  - *LocalLimiter
*/
func NewLocalLimiter(ctx context.Context, rps float64, burst int) *LocalLimiter {
	limiter := &LocalLimiter{
		clients: make(map[string]*rateLimitClient),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				limiter.evictIdle(constants.RateLimitClientTTL)
			case <-ctx.Done():
				return
			}
		}
	}()

	return limiter
}

// Allow implements [Limiter]. It never fails.
func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	client, found := l.clients[key]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[key] = client
	}
	client.lastSeen = time.Now()

	if !client.limiter.Allow() {
		metrics.RateLimitedTotal.WithLabelValues("local").Inc()
		return false, nil
	}
	return true, nil
}

func (l *LocalLimiter) evictIdle(ttl time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for key, client := range l.clients {
		if time.Since(client.lastSeen) > ttl {
			delete(l.clients, key)
		}
	}
}

// # Shared fixed window (Redis)

// RedisLimiter counts requests per key in fixed windows shared by every
// instance. When Redis is unreachable it defers to the fallback limiter.
type RedisLimiter struct {
	client   goredis.UniversalClient
	limit    int64
	window   time.Duration
	fallback Limiter
	now      func() time.Time
}

// NewRedisLimiter allows up to limit requests per key in each window.
func NewRedisLimiter(client goredis.UniversalClient, limit int, window time.Duration, fallback Limiter) *RedisLimiter {
	return &RedisLimiter{
		client:   client,
		limit:    int64(limit),
		window:   window,
		fallback: fallback,
		now:      time.Now,
	}
}

// Allow implements [Limiter].
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowStart := l.now().Truncate(l.window).Unix()
	redisKey := fmt.Sprintf("%s%s:%d", constants.RedisPrefixRateLimit, key, windowStart)

	var counter *goredis.IntCmd
	_, err := l.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		counter = pipe.Incr(ctx, redisKey)
		pipe.Expire(ctx, redisKey, 2*l.window)
		return nil
	})
	if err != nil {
		if l.fallback != nil {
			return l.fallback.Allow(ctx, key)
		}
		return false, fmt.Errorf("ratelimit: redis window update failed: %w", err)
	}

	if counter.Val() > l.limit {
		metrics.RateLimitedTotal.WithLabelValues("redis").Inc()
		return false, nil
	}
	return true, nil
}
