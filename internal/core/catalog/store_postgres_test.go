// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/movix/internal/platform/postgres"
	"github.com/taibuivan/movix/pkg/pagination"
	"github.com/taibuivan/movix/pkg/pointer"
)

var itemColumns = []string{
	"id", "title", "synopsis", "year", "coverurl", "trailerurl",
	"genreid", "ratingid", "createdat", "genrename", "ratingname",
}

func newMockRepository(t *testing.T) (*PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return NewPostgresRepository(mock), mock
}

func countSQL(where string) string {
	return regexp.QuoteMeta("SELECT COUNT(*) " + fromClause + where)
}

func fetchSQL(tail string) string {
	return regexp.QuoteMeta("SELECT " + columnList + " " + fromClause + tail)
}

var createdAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

/*
TestSearch_Window verifies the count/fetch sequence, arguments and scanning
for a filtered second page.
*/
func TestSearch_Window(t *testing.T) {
	repository, mock := newMockRepository(t)

	spec := FilterSpec{
		GenreID: pointer.To(int64(3)),
		Desc:    true,
		Params:  pagination.Params{Page: 2, PageSize: 2},
	}

	mock.ExpectQuery(countSQL(" WHERE (c.genreid = $1)")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	mock.ExpectQuery(fetchSQL(" WHERE (c.genreid = $1) ORDER BY c.createdat DESC, c.id DESC LIMIT 2 OFFSET 2")).
		WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(3), "Heat", pointer.To("A heist."), 1995, nil, nil, int64(3), int64(2), createdAt, "Crime", "R").
			AddRow(int64(2), "Ronin", nil, 1998, pointer.To("https://img/ronin.jpg"), nil, int64(3), int64(2), createdAt, "Crime", "R"))

	result, err := repository.Search(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Total)
	require.Len(t, result.Items, 2)

	first := result.Items[0]
	assert.Equal(t, int64(3), first.ID)
	assert.Equal(t, "Heat", first.Title)
	require.NotNil(t, first.Synopsis)
	assert.Equal(t, "A heist.", *first.Synopsis)
	assert.Equal(t, Genre{ID: 3, Name: "Crime"}, first.Genre)
	assert.Equal(t, Rating{ID: 2, Name: "R"}, first.Rating)

	assert.Nil(t, result.Items[1].Synopsis)
	assert.Equal(t, "https://img/ronin.jpg", pointer.Val(result.Items[1].CoverURL))

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_TextQuery verifies the escaped pattern is bound for both columns.
*/
func TestSearch_TextQuery(t *testing.T) {
	repository, mock := newMockRepository(t)

	spec := FilterSpec{
		Query:  pointer.To("100%_pure"),
		Sort:   SortTitle,
		Params: pagination.Params{Page: 1, PageSize: 12},
	}
	pattern := `%100\%\_pure%`
	where := " WHERE ((c.title ILIKE $1 OR (c.synopsis IS NOT NULL AND c.synopsis ILIKE $2)))"

	mock.ExpectQuery(countSQL(where)).
		WithArgs(pattern, pattern).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(1)))

	mock.ExpectQuery(fetchSQL(where + " ORDER BY c.title ASC, c.id ASC LIMIT 12 OFFSET 0")).
		WithArgs(pattern, pattern).
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(9), "100%_pure", nil, 2001, nil, nil, int64(1), int64(1), createdAt, "Drama", "PG"))

	result, err := repository.Search(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	assert.Len(t, result.Items, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_PastLastPage verifies the fetch is skipped and the total kept when
the window starts beyond the filtered set.
*/
func TestSearch_PastLastPage(t *testing.T) {
	repository, mock := newMockRepository(t)

	spec := FilterSpec{Params: pagination.Params{Page: 100, PageSize: 10}, Desc: true}

	mock.ExpectQuery(countSQL("")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(5)))

	result, err := repository.Search(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int64(5), result.Total)
	assert.NotNil(t, result.Items)
	assert.Empty(t, result.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_EmptySet verifies no fetch is issued when nothing matches.
*/
func TestSearch_EmptySet(t *testing.T) {
	repository, mock := newMockRepository(t)

	spec := FilterSpec{Year: pointer.To(int32(1800)), Params: pagination.Params{Page: 1, PageSize: pagination.Unbounded}}

	mock.ExpectQuery(countSQL(" WHERE (c.year = $1)")).
		WithArgs(int32(1800)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))

	result, err := repository.Search(context.Background(), spec)
	require.NoError(t, err)

	assert.Zero(t, result.Total)
	assert.Empty(t, result.Items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_Unbounded verifies pageSize 0 fetches without LIMIT/OFFSET.
*/
func TestSearch_Unbounded(t *testing.T) {
	repository, mock := newMockRepository(t)

	spec := FilterSpec{Sort: SortYear, Params: pagination.Params{Page: 3, PageSize: pagination.Unbounded}}

	mock.ExpectQuery(countSQL("")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(2)))

	mock.ExpectQuery(fetchSQL(" ORDER BY c.year ASC, c.id ASC") + "$").
		WillReturnRows(pgxmock.NewRows(itemColumns).
			AddRow(int64(1), "Metropolis", nil, 1927, nil, nil, int64(1), int64(1), createdAt, "Sci-Fi", "G").
			AddRow(int64(2), "Alien", nil, 1979, nil, nil, int64(1), int64(3), createdAt, "Sci-Fi", "R"))

	result, err := repository.Search(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Total)
	assert.Len(t, result.Items, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_Cancelled verifies a cancelled context stops before any query and
reports context.Canceled.
*/
func TestSearch_Cancelled(t *testing.T) {
	repository, mock := newMockRepository(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := repository.Search(ctx, FilterSpec{Params: pagination.Params{Page: 1, PageSize: 12}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, result.Items)
	assert.Zero(t, result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_CancelledDuringCount verifies a driver-reported cancellation is
surfaced as context.Canceled with no partial result.
*/
func TestSearch_CancelledDuringCount(t *testing.T) {
	repository, mock := newMockRepository(t)

	mock.ExpectQuery(countSQL("")).WillReturnError(context.Canceled)

	result, err := repository.Search(context.Background(), FilterSpec{Params: pagination.Params{Page: 1, PageSize: 12}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, SearchResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// cancellingQuerier cancels the request once a single-row read has been scanned,
// which lands the cancellation between the count and the fetch.
type cancellingQuerier struct {
	postgres.Querier
	cancel context.CancelFunc
}

func (querier cancellingQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return cancelAfterScan{Row: querier.Querier.QueryRow(ctx, sql, args...), cancel: querier.cancel}
}

type cancelAfterScan struct {
	pgx.Row
	cancel context.CancelFunc
}

func (row cancelAfterScan) Scan(dest ...any) error {
	err := row.Row.Scan(dest...)
	row.cancel()
	return err
}

/*
TestSearch_CancelledBeforeFetch verifies a cancellation arriving after a
successful count stops the pipeline before the item fetch.
*/
func TestSearch_CancelledBeforeFetch(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	repository := NewPostgresRepository(cancellingQuerier{Querier: mock, cancel: cancel})

	mock.ExpectQuery(countSQL("")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))

	result, err := repository.Search(ctx, FilterSpec{Params: pagination.Params{Page: 1, PageSize: 12}})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, SearchResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestSearch_FetchFailure verifies a failing fetch returns no partial result.
*/
func TestSearch_FetchFailure(t *testing.T) {
	repository, mock := newMockRepository(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(countSQL("")).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(3)))
	mock.ExpectQuery(fetchSQL("")).WillReturnError(boom)

	result, err := repository.Search(context.Background(), FilterSpec{Params: pagination.Params{Page: 1, PageSize: 12}})

	require.ErrorIs(t, err, boom)
	assert.Equal(t, SearchResult{}, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestFindByID covers the found, not-found and failure paths.
*/
func TestFindByID(t *testing.T) {
	findSQL := fetchSQL(" WHERE c.id = $1")

	t.Run("found", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(findSQL).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(itemColumns).
				AddRow(int64(7), "Up", nil, 2009, nil, pointer.To("https://trailer/up"), int64(4), int64(1), createdAt, "Animation", "L"))

		found, ok, err := repository.FindByID(context.Background(), 7)
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equal(t, int64(7), found.ID)
		assert.Equal(t, "Animation", found.Genre.Name)
		assert.Equal(t, "L", found.Rating.Name)
		assert.Equal(t, "https://trailer/up", pointer.Val(found.TrailerURL))
		assert.Equal(t, createdAt, found.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(findSQL).WithArgs(int64(999999)).WillReturnError(pgx.ErrNoRows)

		found, ok, err := repository.FindByID(context.Background(), 999999)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, ItemWithRelations{}, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled before query", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		found, ok, err := repository.FindByID(ctx, 7)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, ok)
		assert.Equal(t, ItemWithRelations{}, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cancelled during query", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(findSQL).WithArgs(int64(7)).WillReturnError(context.Canceled)

		found, ok, err := repository.FindByID(context.Background(), 7)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, ok)
		assert.Equal(t, ItemWithRelations{}, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("storage failure", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(findSQL).WithArgs(int64(1)).WillReturnError(errors.New("disk on fire"))

		_, ok, err := repository.FindByID(context.Background(), 1)
		require.Error(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
