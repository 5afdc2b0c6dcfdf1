// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/taibuivan/movix/pkg/pagination"
	"github.com/taibuivan/movix/pkg/pointer"
)

/*
Normalize turns untrusted input into a [FilterSpec]. It never fails: invalid
pagination is clamped and unknown sort keys fall back to the default order.

Rules:
  - page < 1 or absent becomes 1.
  - pageSize > 2000 becomes 2000, 0 stays unbounded, other values < 1 become 12.
  - the query is trimmed and NFC-normalized; an empty result disables text search.
  - desc defaults to true.

Parameters:
  - raw: RawFilter

Returns:
  - FilterSpec
*/
func Normalize(raw RawFilter) FilterSpec {
	return FilterSpec{
		GenreID:  raw.GenreID,
		RatingID: raw.RatingID,
		Year:     raw.Year,
		Query:    normalizeQuery(raw.Query),
		Sort:     ParseSortKey(pointer.Val(raw.SortBy)),
		Desc:     pointer.Fallback(raw.Desc, true),
		Params:   pagination.Normalize(raw.Page, raw.PageSize),
	}
}

// normalizeQuery composes accents (NFC) so "é" typed as e + U+0301 matches the
// stored precomposed form.
func normalizeQuery(query *string) *string {
	if query == nil {
		return nil
	}

	trimmed := strings.TrimSpace(norm.NFC.String(*query))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
