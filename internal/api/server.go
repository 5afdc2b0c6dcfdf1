// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taibuivan/movix/internal/core/catalog"
	"github.com/taibuivan/movix/internal/core/reference"
	"github.com/taibuivan/movix/internal/platform/config"
	"github.com/taibuivan/movix/internal/platform/constants"
	"github.com/taibuivan/movix/internal/platform/middleware"
	"github.com/taibuivan/movix/internal/platform/respond"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. Always 200 while the process is up.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. 200 only when every dependency answers.
	Readiness http.HandlerFunc

	// Catalog serves item search and lookup.
	Catalog *catalog.Handler

	// Reference lists genres and ratings.
	Reference *reference.Handler
}

// # Server Initialization

/*
NewServer constructs the chi router with the full middleware chain and
registers all route groups.

Parameters:
  - cfg: *config.Config
  - log: *slog.Logger
  - limiter: middleware.Limiter (local or Redis backed)
  - h: Handlers
*/
func NewServer(cfg *config.Config, log *slog.Logger, limiter middleware.Limiter, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.ClientIP(cfg.TrustProxyHeaders))
	r.Use(middleware.Tracing())
	r.Use(middleware.StructuredLogger(log))
	r.Use(middleware.Metrics())
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RateLimit(limiter))
	r.Use(chimw.CleanPath)
	r.Use(middleware.Deadline(constants.GlobalRequestTimeout))

	// Unknown routes answer like a missing item: 404 and nothing else.
	// Set before Mount so sub-routers inherit it.
	r.NotFound(func(writer http.ResponseWriter, _ *http.Request) {
		respond.NotFound(writer)
	})

	// # Infrastructure Endpoints
	r.Get("/", serviceInfo)
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// # Application API
	r.Mount("/catalog-items", h.Catalog.Routes())
	h.Reference.Register(r)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// serviceInfo handles GET / with the service name and a static status.
func serviceInfo(writer http.ResponseWriter, _ *http.Request) {
	respond.Raw(writer, map[string]string{
		constants.FieldName:   constants.AppName,
		constants.FieldStatus: "ok",
	})
}

// Handler exposes the fully wired router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
