// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for list endpoints.
//
// # Overview
//
// It turns untrusted page/pageSize inputs into bounded [Params] and derives
// the LIMIT/OFFSET [Window] applied to a query. A page size of [Unbounded]
// means "every matching row" and produces a window without LIMIT or OFFSET.
package pagination

import "math"

const (
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
	// DefaultPageSize is used when the size is absent, negative or otherwise invalid.
	DefaultPageSize = 12
	// MaxPageSize is the upper bound for items per page. Larger values are clamped.
	MaxPageSize = 2000
	// Unbounded disables windowing entirely.
	Unbounded = 0
)

// Params holds a normalized page request.
//
// Invariants: Page >= 1 and PageSize is [Unbounded] or within [1, MaxPageSize].
type Params struct {
	Page     int
	PageSize int
}

/*
Normalize clamps raw page inputs. It never fails.

  - page absent or < 1 becomes [DefaultPage].
  - pageSize > [MaxPageSize] becomes [MaxPageSize].
  - pageSize == 0 stays [Unbounded].
  - pageSize absent or negative becomes [DefaultPageSize].

Parameters:
  - page: *int (nil when the caller sent nothing)
  - pageSize: *int (nil when the caller sent nothing)

Returns:
  - Params
*/
func Normalize(page, pageSize *int) Params {
	params := Params{Page: DefaultPage, PageSize: DefaultPageSize}

	if page != nil && *page >= 1 {
		params.Page = *page
	}

	if pageSize != nil {
		switch size := *pageSize; {
		case size > MaxPageSize:
			params.PageSize = MaxPageSize
		case size == Unbounded:
			params.PageSize = Unbounded
		case size >= 1:
			params.PageSize = size
		}
	}

	return params
}

// IsUnbounded reports whether every matching row is requested.
func (p Params) IsUnbounded() bool {
	return p.PageSize == Unbounded
}

// Window is the LIMIT/OFFSET pair applied to a query.
type Window struct {
	Limit     uint64
	Offset    uint64
	Unbounded bool
}

// Window derives the LIMIT/OFFSET for these params. The offset saturates at
// [math.MaxInt64] instead of overflowing, which keeps it within a Postgres bigint.
func (p Params) Window() Window {
	if p.IsUnbounded() {
		return Window{Unbounded: true}
	}

	size := uint64(p.PageSize)
	skipped := uint64(max(p.Page, DefaultPage) - 1)

	offset := uint64(math.MaxInt64)
	if skipped <= offset/size {
		offset = skipped * size
	}

	return Window{Limit: size, Offset: offset}
}

// Exhausted reports whether the window starts at or past the end of a set of
// total rows, in which case fetching it would return nothing.
func (w Window) Exhausted(total int64) bool {
	if w.Unbounded {
		return false
	}
	return total <= 0 || w.Offset >= uint64(total)
}
