// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest starts a throwaway PostgreSQL for integration tests and
// applies the real migrations to it.
package pgtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/movix/internal/platform/migration"
)

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// DSN starts a shared container once per test binary, migrates it and returns
// its connection string. The container lives until the process exits.
func DSN(t *testing.T) string {
	t.Helper()

	once.Do(func() {
		sharedDSN, initErr = startContainerAndMigrate()
	})
	if initErr != nil {
		t.Fatalf("pgtest: failed to setup test DB: %v", initErr)
	}
	return sharedDSN
}

// Conn opens a writable connection for seeding fixtures. It is closed via t.Cleanup.
func Conn(t *testing.T) *pgx.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := pgx.Connect(ctx, DSN(t))
	if err != nil {
		t.Fatalf("pgtest: failed to connect: %v", err)
	}

	t.Cleanup(func() { _ = conn.Close(context.Background()) })
	return conn
}

func startContainerAndMigrate() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	request := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "movix",
			"POSTGRES_PASSWORD": "movix",
			"POSTGRES_DB":       "movix",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: request,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	dsn := fmt.Sprintf("postgres://movix:movix@%s:%s/movix?sslmode=disable", host, port.Port())

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if err := migration.RunUp(dsn, migrationsPath(), logger); err != nil {
		return "", err
	}

	return dsn, nil
}

// migrationsPath resolves data/migrations relative to this source file.
func migrationsPath() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// currentFile is .../internal/platform/postgres/pgtest/pgtest.go
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "..", "data", "migrations")
}
