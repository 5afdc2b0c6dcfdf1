// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
PostgreSQL implementation of the catalogue [Repository].

Every search is one query plan rendered twice from the same builder:

  - Count: SELECT COUNT(*) over the joined, filtered set.
  - Fetch: the item and relation columns, ordered and windowed.

Genre and rating are resolved by INNER JOIN in the same statement, so a page
costs one round-trip regardless of its size.
*/
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/taibuivan/movix/internal/platform/database/schema"
	"github.com/taibuivan/movix/internal/platform/metrics"
	"github.com/taibuivan/movix/internal/platform/postgres"
	"github.com/taibuivan/movix/pkg/pagination"
)

const tracerName = "github.com/taibuivan/movix/internal/core/catalog"

// Query stage labels, shared by spans and metrics.
const (
	stageCount = "count"
	stageFetch = "fetch"
	stageFind  = "find"
)

var (
	genreTable  = schema.CoreGenre
	ratingTable = schema.CoreRating

	psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db     postgres.Querier
	tracer trace.Tracer
}

// NewPostgresRepository constructs a PostgreSQL backed catalogue store.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{
		db:     db,
		tracer: otel.Tracer(tracerName),
	}
}

// # Query Plan

// selectColumns lists the fetched columns in scan order.
func selectColumns() []string {
	return append(itemTable.Columns(),
		genreTable.Col(genreTable.Name),
		ratingTable.Col(ratingTable.Name),
	)
}

// joinRelations attaches genre and rating to the plan. Both references are
// required, so INNER JOIN never drops a valid item.
func joinRelations(builder squirrel.SelectBuilder) squirrel.SelectBuilder {
	return builder.
		Join(fmt.Sprintf("%s ON %s = %s", genreTable.From(), genreTable.Col(genreTable.ID), itemTable.Col(itemTable.GenreID))).
		Join(fmt.Sprintf("%s ON %s = %s", ratingTable.From(), ratingTable.Col(ratingTable.ID), itemTable.Col(itemTable.RatingID)))
}

// filteredPlan is the FROM/JOIN/WHERE shared by the count and the fetch.
func filteredPlan(spec FilterSpec, columns ...string) squirrel.SelectBuilder {
	builder := joinRelations(psql.Select(columns...).From(itemTable.From()))

	if predicates := buildPredicates(spec); len(predicates) > 0 {
		builder = builder.Where(predicates)
	}
	return builder
}

// countQuery renders the COUNT(*) statement for spec.
func countQuery(spec FilterSpec) (string, []any, error) {
	return filteredPlan(spec, "COUNT(*)").ToSql()
}

// fetchQuery renders the ordered, windowed item statement for spec.
func fetchQuery(spec FilterSpec, window pagination.Window) (string, []any, error) {
	builder := filteredPlan(spec, selectColumns()...).OrderBy(resolveOrder(spec)...)

	if !window.Unbounded {
		builder = builder.Limit(window.Limit).Offset(window.Offset)
	}
	return builder.ToSql()
}

// # Repository Implementation

/*
Search returns a filtered, ordered window of items and the filtered total.

Description: the count runs first; when the window starts past the end of the
filtered set the fetch is skipped. The context is checked before each stage so
a cancelled caller never pays for the next round-trip.

Parameters:
  - ctx: context.Context
  - spec: FilterSpec

Returns:
  - SearchResult
  - error
*/
func (repository *PostgresRepository) Search(ctx context.Context, spec FilterSpec) (SearchResult, error) {
	ctx, span := repository.tracer.Start(ctx, "catalog.Search", trace.WithAttributes(
		attribute.String("catalog.sort", spec.Sort.String()),
		attribute.Bool("catalog.desc", spec.Desc),
		attribute.Int("catalog.page", spec.Page),
		attribute.Int("catalog.page_size", spec.PageSize),
		attribute.Bool("catalog.text_search", spec.Query != nil),
	))
	defer span.End()

	if err := ctx.Err(); err != nil {
		return SearchResult{}, recordError(span, fmt.Errorf("postgres: search catalog items: %w", err))
	}

	total, err := repository.count(ctx, spec)
	if err != nil {
		return SearchResult{}, recordError(span, err)
	}
	span.SetAttributes(attribute.Int64("catalog.total", total))

	window := spec.Window()
	if total == 0 || window.Exhausted(total) {
		return SearchResult{Items: []ItemWithRelations{}, Total: total}, nil
	}

	if err := ctx.Err(); err != nil {
		return SearchResult{}, recordError(span, fmt.Errorf("postgres: search catalog items: %w", err))
	}

	items, err := repository.fetch(ctx, spec, window)
	if err != nil {
		return SearchResult{}, recordError(span, err)
	}

	return SearchResult{Items: items, Total: total}, nil
}

// count returns the size of the filtered set.
func (repository *PostgresRepository) count(ctx context.Context, spec FilterSpec) (total int64, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery(stageCount, outcome(err), start) }()

	query, args, err := countQuery(spec)
	if err != nil {
		return 0, fmt.Errorf("postgres: build count query: %w", err)
	}

	if err := repository.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, queryError(ctx, "count catalog items", err)
	}
	return total, nil
}

// fetch returns the ordered window of items with relations.
func (repository *PostgresRepository) fetch(ctx context.Context, spec FilterSpec, window pagination.Window) (items []ItemWithRelations, err error) {
	start := time.Now()
	defer func() { metrics.ObserveQuery(stageFetch, outcome(err), start) }()

	query, args, err := fetchQuery(spec, window)
	if err != nil {
		return nil, fmt.Errorf("postgres: build fetch query: %w", err)
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, queryError(ctx, "fetch catalog items", err)
	}
	defer rows.Close()

	items = make([]ItemWithRelations, 0, window.Limit)
	for rows.Next() {
		entry, err := scanItem(rows)
		if err != nil {
			return nil, queryError(ctx, "scan catalog item", err)
		}
		items = append(items, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, queryError(ctx, "iterate catalog items", err)
	}

	return items, nil
}

/*
FindByID returns the item with the given id and its relations.

Parameters:
  - ctx: context.Context
  - id: int64

Returns:
  - ItemWithRelations
  - bool: false when the id does not exist
  - error
*/
func (repository *PostgresRepository) FindByID(ctx context.Context, id int64) (found ItemWithRelations, ok bool, err error) {
	ctx, span := repository.tracer.Start(ctx, "catalog.FindByID", trace.WithAttributes(
		attribute.Int64("catalog.item_id", id),
	))
	defer span.End()

	start := time.Now()
	defer func() { metrics.ObserveQuery(stageFind, outcome(err), start) }()

	if err := ctx.Err(); err != nil {
		return ItemWithRelations{}, false, recordError(span, fmt.Errorf("postgres: find catalog item: %w", err))
	}

	query, args, err := joinRelations(psql.Select(selectColumns()...).From(itemTable.From())).
		Where(squirrel.Eq{itemTable.Col(itemTable.ID): id}).
		ToSql()
	if err != nil {
		return ItemWithRelations{}, false, recordError(span, fmt.Errorf("postgres: build find query: %w", err))
	}

	found, err = scanItem(repository.db.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return ItemWithRelations{}, false, nil
	}
	if err != nil {
		return ItemWithRelations{}, false, recordError(span, queryError(ctx, "find catalog item", err))
	}

	return found, true, nil
}

// # Helpers

// scanItem reads one row in [selectColumns] order into a fresh value.
func scanItem(row pgx.Row) (ItemWithRelations, error) {
	var entry ItemWithRelations

	err := row.Scan(
		&entry.ID,
		&entry.Title,
		&entry.Synopsis,
		&entry.Year,
		&entry.CoverURL,
		&entry.TrailerURL,
		&entry.GenreID,
		&entry.RatingID,
		&entry.CreatedAt,
		&entry.Genre.Name,
		&entry.Rating.Name,
	)
	if err != nil {
		return ItemWithRelations{}, err
	}

	entry.Genre.ID = entry.GenreID
	entry.Rating.ID = entry.RatingID
	return entry, nil
}

// queryError wraps a driver error. When the context ended, the context error is
// wrapped too, so errors.Is(err, context.Canceled) holds even if the driver
// reported the abort differently.
func queryError(ctx context.Context, action string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		return fmt.Errorf("postgres: %s: %w: %w", action, ctxErr, err)
	}
	return fmt.Errorf("postgres: %s: %w", action, err)
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return metrics.OutcomeCancelled
	}
	return metrics.OutcomeError
}

func recordError(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
