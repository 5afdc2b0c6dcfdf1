// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware provides the cross-cutting HTTP processing chain.

Chain order, outermost first, as wired by the api package:

  - RequestID: correlation id in context and response header.
  - ClientIP: client address, from proxy headers only when trusted.
  - Tracing: OpenTelemetry server span per request.
  - StructuredLogger: request-scoped slog logger and one access line.
  - Metrics: Prometheus counters and latency per route pattern.
  - PanicRecovery: JSON 500 instead of a dropped connection.
  - CORS and RateLimit: admission.
  - Deadline: per-request context timeout.
*/
package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/movix/internal/platform/constants"
	"github.com/taibuivan/movix/internal/platform/ctxutil"
	"github.com/taibuivan/movix/internal/platform/respond"
)

// statusRecorder captures what downstream handlers wrote. Nested middleware
// share one recorder instead of stacking wrappers.
type statusRecorder struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

func newStatusRecorder(writer http.ResponseWriter) *statusRecorder {
	if recorder, ok := writer.(*statusRecorder); ok {
		return recorder
	}
	return &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
}

func (recorder *statusRecorder) WriteHeader(code int) {
	if !recorder.wroteHeader {
		recorder.status = code
		recorder.wroteHeader = true
	}
	recorder.ResponseWriter.WriteHeader(code)
}

func (recorder *statusRecorder) Write(body []byte) (int, error) {
	recorder.wroteHeader = true
	written, err := recorder.ResponseWriter.Write(body)
	recorder.bytes += written
	return written, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (recorder *statusRecorder) Unwrap() http.ResponseWriter {
	return recorder.ResponseWriter
}

// # Client Address

// ClientIP resolves the client address once and stores it in the context for
// the limiter and the access log. Forwarding headers are only honored when
// trustProxy is set.
func ClientIP(trustProxy bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := ctxutil.WithClientIP(request.Context(), RealIP(request, trustProxy))
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RealIP returns the client address. With trustProxy it prefers X-Real-IP,
// then the first X-Forwarded-For hop. The connection's remote host is the
// fallback and the only source when trustProxy is false.
func RealIP(request *http.Request, trustProxy bool) string {
	if trustProxy {
		if ip := strings.TrimSpace(request.Header.Get(constants.HeaderXRealIP)); ip != "" {
			return ip
		}

		if forwarded := request.Header.Get(constants.HeaderXForwardedFor); forwarded != "" {
			first, _, _ := strings.Cut(forwarded, ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}

	if host, _, err := net.SplitHostPort(request.RemoteAddr); err == nil {
		return host
	}
	return request.RemoteAddr
}

// clientIP reads the address stored by [ClientIP], falling back to the
// remote host when the middleware is not installed.
func clientIP(request *http.Request) string {
	if ip := ctxutil.GetClientIP(request.Context()); ip != "" {
		return ip
	}
	return RealIP(request, false)
}

// # Deadline

// Deadline bounds every request context by timeout. Handlers observe the
// deadline through the context and write their own 504, so nothing here
// touches the response.
func Deadline(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx, cancel := context.WithTimeout(request.Context(), timeout)
			defer cancel()

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// writeError renders a middleware rejection with the same envelope handlers use.
func writeError(writer http.ResponseWriter, status int, code, message string) {
	respond.JSON(writer, status, respond.ErrorEnvelope{Error: message, Code: code})
}
