// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/movix/internal/platform/database/schema"
	"github.com/taibuivan/movix/internal/platform/postgres"
)

var (
	genreTable  = schema.CoreGenre
	ratingTable = schema.CoreRating

	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

// PostgresRepository implements [Repository] over a [postgres.Querier].
type PostgresRepository struct {
	db postgres.Querier
}

// NewPostgresRepository returns a fully wired postgres implementation.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListGenres retrieves every genre.

Description: Selects the full genre table ordered by name, then id so equal
names keep a stable order.
*/
func (repository *PostgresRepository) ListGenres(ctx context.Context) ([]Genre, error) {
	query, args, err := psql.
		Select(genreTable.Col(genreTable.ID), genreTable.Col(genreTable.Name)).
		From(genreTable.From()).
		OrderBy(genreTable.Col(genreTable.Name)+" ASC", genreTable.Col(genreTable.ID)+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build genre query: %w", err)
	}

	return listNamed[Genre](ctx, repository.db, "list genres", query, args, func(genre *Genre) []any {
		return []any{&genre.ID, &genre.Name}
	})
}

// ListRatings retrieves every rating ordered by name.
func (repository *PostgresRepository) ListRatings(ctx context.Context) ([]Rating, error) {
	query, args, err := psql.
		Select(ratingTable.Col(ratingTable.ID), ratingTable.Col(ratingTable.Name)).
		From(ratingTable.From()).
		OrderBy(ratingTable.Col(ratingTable.Name)+" ASC", ratingTable.Col(ratingTable.ID)+" ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("postgres: build rating query: %w", err)
	}

	return listNamed[Rating](ctx, repository.db, "list ratings", query, args, func(rating *Rating) []any {
		return []any{&rating.ID, &rating.Name}
	})
}

// listNamed runs query and scans every row through dest into a fresh value.
func listNamed[T any](ctx context.Context, db postgres.Querier, action, query string, args []any, dest func(*T) []any) ([]T, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("postgres: %s: %w", action, err)
	}
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		var entry T
		if err := rows.Scan(dest(&entry)...); err != nil {
			return nil, fmt.Errorf("postgres: scan %s: %w", action, err)
		}
		out = append(out, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: %s: %w", action, err)
	}
	return out, nil
}
