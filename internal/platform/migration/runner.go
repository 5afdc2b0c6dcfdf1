// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package migration applies the catalogue schema with golang-migrate.

The schema (genre, rating, catalogitem and the indexes the search plan relies
on) lives in data/migrations. It is applied at startup when RUN_MIGRATIONS is
on, and by the integration suite before fixtures are seeded.
*/
package migration

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Registers the "file" source scheme.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// schemaVersion is the applied version as golang-migrate reports it.
// A fresh database has version 0 and is never dirty.
type schemaVersion struct {
	version uint
	dirty   bool
}

/*
RunUp applies every pending up migration. Running it on an up-to-date schema
is a no-op; a dirty schema is refused.

Parameters:
  - dsn: string (postgres:// URL or keyword/value DSN)
  - migrationsPath: string (directory holding the .sql files)
  - logger: *slog.Logger

Returns:
  - error
*/
func RunUp(dsn string, migrationsPath string, logger *slog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: open %s: %w", migrationsPath, err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if closeErr := errors.Join(sourceErr, dbErr); closeErr != nil {
			logger.Warn("migration_close_failed", slog.Any("error", closeErr))
		}
	}()
	migrator.Log = &migrateLogger{logger: logger}

	before, err := currentVersion(migrator)
	if err != nil {
		return err
	}
	if before.dirty {
		return fmt.Errorf("migration: schema is dirty at version %d, fix it by hand before starting", before.version)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration: apply: %w", err)
	}

	after, err := currentVersion(migrator)
	if err != nil {
		return err
	}

	logger.Info("schema_migrated",
		slog.Uint64("from_version", uint64(before.version)),
		slog.Uint64("to_version", uint64(after.version)),
		slog.Bool("changed", before.version != after.version),
	)
	return nil
}

func currentVersion(migrator *migrate.Migrate) (schemaVersion, error) {
	version, dirty, err := migrator.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return schemaVersion{}, nil
	}
	if err != nil {
		return schemaVersion{}, fmt.Errorf("migration: read version: %w", err)
	}
	return schemaVersion{version: version, dirty: dirty}, nil
}

// toPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// the pgx/v5 driver registers. Keyword/value DSNs are returned unchanged.
func toPgx5DSN(dsn string) string {
	for _, scheme := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, scheme); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger routes golang-migrate's progress lines to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *migrateLogger) Verbose() bool { return false }
