// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/movix/internal/platform/ctxutil"
	"github.com/taibuivan/movix/internal/platform/dberr"
	"github.com/taibuivan/movix/internal/platform/metrics"
)

// # Service Layer

// Service is the entry point for catalogue reads. It normalizes caller input
// and classifies storage failures into application errors.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] over a [Repository].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

/*
Search normalizes raw and returns the matching window plus total.

Parameters:
  - ctx: context.Context
  - raw: RawFilter (untrusted, any field may be nil)

Returns:
  - SearchResult
  - FilterSpec: the normalized request that was executed
  - error: *apperr.AppError (cancelled, timeout or internal)
*/
func (service *Service) Search(ctx context.Context, raw RawFilter) (SearchResult, FilterSpec, error) {
	spec := Normalize(raw)

	result, err := service.repo.Search(ctx, spec)
	if err != nil {
		return SearchResult{}, spec, dberr.Wrap(err, "search catalog items")
	}

	metrics.SearchTotalItems.Observe(float64(result.Total))

	service.logger.DebugContext(ctx, "catalog_search_served",
		slog.String("request_id", ctxutil.GetRequestID(ctx)),
		slog.String("sort", spec.Sort.String()),
		slog.Bool("desc", spec.Desc),
		slog.Int("page", spec.Page),
		slog.Int("page_size", spec.PageSize),
		slog.Int64("total", result.Total),
		slog.Int("returned", len(result.Items)),
	)

	return result, spec, nil
}

/*
Get fetches a single item by id.

Returns:
  - ItemWithRelations
  - bool: false when the id does not exist
  - error: *apperr.AppError on storage or context failures
*/
func (service *Service) Get(ctx context.Context, id int64) (ItemWithRelations, bool, error) {
	found, ok, err := service.repo.FindByID(ctx, id)
	if err != nil {
		return ItemWithRelations{}, false, dberr.Wrap(err, "find catalog item")
	}
	return found, ok, nil
}
