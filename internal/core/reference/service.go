// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"

	"github.com/taibuivan/movix/internal/platform/dberr"
)

// # Service Layer

// Service exposes reference data and classifies storage failures.
type Service struct {
	repo Repository
}

// NewService constructs a new reference [Service].
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

/*
ListGenres returns every genre.

Parameters:
  - ctx: context.Context

Returns:
  - []Genre
  - error: *apperr.AppError
*/
func (service *Service) ListGenres(ctx context.Context) ([]Genre, error) {
	genres, err := service.repo.ListGenres(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "list genres")
	}
	return genres, nil
}

// ListRatings returns every rating.
func (service *Service) ListRatings(ctx context.Context) ([]Rating, error) {
	ratings, err := service.repo.ListRatings(ctx)
	if err != nil {
		return nil, dberr.Wrap(err, "list ratings")
	}
	return ratings, nil
}
