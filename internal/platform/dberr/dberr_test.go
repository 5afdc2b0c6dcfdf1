// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/movix/internal/platform/apperr"
	"github.com/taibuivan/movix/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	classified := apperr.NotFound("Catalog item")

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"no rows", pgx.ErrNoRows, http.StatusNotFound},
		{"already classified", classified, http.StatusNotFound},
		{"cancelled", fmt.Errorf("postgres: fetch: %w", context.Canceled), apperr.StatusClientClosedRequest},
		{"deadline", fmt.Errorf("postgres: count: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
		{"driver failure", errors.New("conn closed"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperr.As(dberr.Wrap(tt.err, "search catalog items"))
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
	assert.Same(t, classified, dberr.Wrap(classified, "noop"))
}
