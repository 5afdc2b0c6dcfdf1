// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package metrics declares the Prometheus collectors exported on /metrics.

Metrics Categories:

  - HTTP: request counts and latency per route pattern.
  - Catalogue: latency of each query stage and the size of result sets.
  - Guard: rate limiter rejections.

Collectors are registered on the default registry through promauto, so
importing the package is enough to expose them.
*/
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "movix"

var (
	// HTTPRequestsTotal counts finished requests by method, route pattern and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks end-to-end handler latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// QueryDuration tracks the latency of each catalogue query stage (count, fetch, find).
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "query_duration_seconds",
			Help:      "Duration of catalogue queries in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"stage", "outcome"},
	)

	// SearchTotalItems observes the filtered-set size reported by searches.
	SearchTotalItems = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "search_total_items",
			Help:      "Number of items matching a search before pagination",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// RateLimitedTotal counts requests rejected by the rate limiter, per backend.
	RateLimitedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "guard",
			Name:      "rate_limited_total",
			Help:      "Total number of requests rejected by the rate limiter",
		},
		[]string{"backend"},
	)
)

// Outcome labels for QueryDuration.
const (
	OutcomeOK        = "ok"
	OutcomeError     = "error"
	OutcomeCancelled = "cancelled"
)

// ObserveQuery records the duration of one query stage since start.
func ObserveQuery(stage, outcome string, start time.Time) {
	QueryDuration.WithLabelValues(stage, outcome).Observe(time.Since(start).Seconds())
}
