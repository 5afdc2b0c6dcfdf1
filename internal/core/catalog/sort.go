// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// # Sort Keys

// SortKey is the closed set of orderings a search may request.
type SortKey int

const (
	// SortDefault orders by creation time, newest first, whatever desc says.
	SortDefault SortKey = iota
	// SortCreatedAt orders by creation time in the requested direction.
	SortCreatedAt
	// SortTitle orders lexically by title.
	SortTitle
	// SortYear orders numerically by release year.
	SortYear
)

// sortTokens maps lower-cased request tokens to keys.
var sortTokens = map[string]SortKey{
	"createdat": SortCreatedAt,
	"title":     SortTitle,
	"year":      SortYear,
}

// ParseSortKey maps a token (case-insensitive) to a [SortKey]. Unknown and
// empty tokens yield [SortDefault].
func ParseSortKey(token string) SortKey {
	if key, ok := sortTokens[strings.ToLower(strings.TrimSpace(token))]; ok {
		return key
	}
	return SortDefault
}

// String returns the canonical request token.
func (key SortKey) String() string {
	switch key {
	case SortCreatedAt:
		return "createdAt"
	case SortTitle:
		return "title"
	case SortYear:
		return "year"
	}
	return "default"
}

// column returns the catalogitem column the key orders by.
func (key SortKey) column() string {
	switch key {
	case SortTitle:
		return itemTable.Col(itemTable.Title)
	case SortYear:
		return itemTable.Col(itemTable.Year)
	}
	return itemTable.Col(itemTable.CreatedAt)
}

/*
resolveOrder returns the ORDER BY terms for spec.

The primary key comes from spec.Sort. Item id is always appended in the same
direction so rows that tie on the primary key keep a stable order across pages.

Returns:
  - []string: e.g. ["c.year ASC", "c.id ASC"]
*/
func resolveOrder(spec FilterSpec) []string {
	desc := spec.Desc
	if spec.Sort == SortDefault {
		desc = true
	}

	direction := " ASC"
	if desc {
		direction = " DESC"
	}

	return []string{
		spec.Sort.column() + direction,
		itemTable.Col(itemTable.ID) + direction,
	}
}
