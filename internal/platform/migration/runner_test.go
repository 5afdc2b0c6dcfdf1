// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPgx5DSN(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want string
	}{
		{"postgres scheme", "postgres://u:p@db:5432/movix", "pgx5://u:p@db:5432/movix"},
		{"postgresql scheme", "postgresql://u:p@db/movix?sslmode=disable", "pgx5://u:p@db/movix?sslmode=disable"},
		{"already pgx5", "pgx5://db/movix", "pgx5://db/movix"},
		{"keyword dsn", "host=db user=u dbname=movix", "host=db user=u dbname=movix"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, toPgx5DSN(tt.dsn))
		})
	}
}
