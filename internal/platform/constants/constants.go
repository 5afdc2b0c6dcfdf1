// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants holds the fixed values shared across the Movix layers:
service identity, deadlines, limiter tuning, header names and the few JSON
keys built by hand instead of through a struct.
*/
package constants

import "time"

// # Service Identity

const (
	AppName    = "movix-api"
	AppVersion = "0.1.0-dev"
)

// # Deadlines

const (
	// DefaultReadTimeout bounds reading a whole request. Catalogue requests carry no body.
	DefaultReadTimeout = 5 * time.Second

	// DefaultReadHeaderTimeout bounds reading request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// DefaultWriteTimeout bounds writing a response. Unbounded pages
	// (pageSize=0) can be large, so it is wider than reads.
	DefaultWriteTimeout = 30 * time.Second

	// DefaultIdleTimeout bounds keep-alive connections between requests.
	DefaultIdleTimeout = 120 * time.Second

	// GlobalRequestTimeout is the per-request deadline. It is also the
	// PostgreSQL statement_timeout, so the database gives up no later than the caller.
	GlobalRequestTimeout = 30 * time.Second

	// StartupTimeout bounds connection and migration work done before serving.
	StartupTimeout = 30 * time.Second

	// ShutdownTimeout is how long in-flight requests get to finish on shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// RateLimitWindow is the fixed window of the shared (Redis) limiter.
	RateLimitWindow = 1 * time.Second

	// RateLimitCleanupInterval is how often idle in-process buckets are swept.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a bucket may sit idle before it is swept.
	RateLimitClientTTL = 3 * time.Minute

	// RedisPrefixRateLimit namespaces limiter counters as ratelimit:ip:<ip>:<window>.
	RedisPrefixRateLimit = "ratelimit:ip:"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderRetryAfter    = "Retry-After"

	// HeaderXTotalCount repeats the filtered total of a list response.
	HeaderXTotalCount = "X-Total-Count"

	ContentTypeJSON = "application/json; charset=utf-8"
)

// # JSON Keys

const (
	FieldApp    = "app"
	FieldName   = "name"
	FieldStatus = "status"
	FieldChecks = "checks"
)
