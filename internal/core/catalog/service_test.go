// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/movix/internal/core/catalog"
	"github.com/taibuivan/movix/internal/platform/apperr"
	"github.com/taibuivan/movix/pkg/pointer"
)

func newTestService(repository catalog.Repository) *catalog.Service {
	return catalog.NewService(repository, slog.New(slog.NewJSONHandler(io.Discard, nil)))
}

/*
TestService_SearchNormalizes verifies the repository only ever sees a
normalized spec, and that the executed spec is returned to the caller.
*/
func TestService_SearchNormalizes(t *testing.T) {
	repository := &fakeRepository{result: catalog.SearchResult{Items: []catalog.ItemWithRelations{}, Total: 0}}

	_, spec, err := newTestService(repository).Search(context.Background(), catalog.RawFilter{
		Query:    pointer.To("   "),
		Page:     pointer.To(0),
		PageSize: pointer.To(9000),
	})
	require.NoError(t, err)

	assert.Equal(t, spec, repository.lastSpec)
	assert.Nil(t, spec.Query)
	assert.Equal(t, 1, spec.Page)
	assert.Equal(t, 2000, spec.PageSize)
}

/*
TestService_ErrorClassification verifies storage errors become application
errors while the context error stays reachable with errors.Is.
*/
func TestService_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantIs     error
	}{
		{"cancelled", fmt.Errorf("postgres: count catalog items: %w", context.Canceled), apperr.StatusClientClosedRequest, context.Canceled},
		{"deadline", fmt.Errorf("postgres: fetch catalog items: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, context.DeadlineExceeded},
		{"storage", errors.New("relation does not exist"), http.StatusInternalServerError, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(&fakeRepository{err: tt.err})

			result, _, err := service.Search(context.Background(), catalog.RawFilter{})
			require.Error(t, err)
			assert.Equal(t, catalog.SearchResult{}, result)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}

			_, ok, err := service.Get(context.Background(), 1)
			assert.False(t, ok)
			assert.Equal(t, tt.wantStatus, apperr.As(err).HTTPStatus)
		})
	}
}

func TestService_GetMissing(t *testing.T) {
	found, ok, err := newTestService(&fakeRepository{}).Get(context.Background(), 42)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, catalog.ItemWithRelations{}, found)
}
