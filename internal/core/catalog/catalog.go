// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the read-only media catalogue and its query pipeline.

A search flows through a fixed sequence of stages:

	RawFilter -> Normalize -> predicates + ordering (one plan) -> genre/rating join
	          -> count over the filtered set -> LIMIT/OFFSET window -> SearchResult

Core Responsibility:

  - Catalogue: Items with their genre and rating references resolved.
  - Discovery: Equality filters, a literal substring search, a closed set of
    sort keys and bounded pagination with an accurate total.

Nothing in this package writes to storage.
*/
package catalog

import (
	"time"

	"github.com/taibuivan/movix/pkg/pagination"
)

// # Core Entities

// Item is a single media entry in the catalogue.
type Item struct {
	ID         int64
	Title      string
	Synopsis   *string
	Year       int
	CoverURL   *string
	TrailerURL *string
	GenreID    int64
	RatingID   int64
	CreatedAt  time.Time
}

// Genre is a classification category referenced by items.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Rating is an audience/age classification referenced by items.
type Rating struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemWithRelations is an [Item] with its genre and rating resolved.
// Values are snapshots: they are scanned fresh per query and never written back.
type ItemWithRelations struct {
	Item
	Genre  Genre
	Rating Rating
}

// # Filters

// RawFilter is the untrusted search input as it arrives from the transport.
// A nil field means the caller did not send it, or sent something unparsable.
type RawFilter struct {
	GenreID  *int64
	RatingID *int64
	Year     *int32
	Query    *string
	SortBy   *string
	Desc     *bool
	Page     *int
	PageSize *int
}

// FilterSpec is a normalized search request. Only [Normalize] should build one
// from caller input; its pagination fields always satisfy the bounds of
// [pagination.Params].
type FilterSpec struct {
	GenreID  *int64
	RatingID *int64

	// Year matches the INTEGER column, so it is 32 bits wide.
	Year *int32

	// Query is trimmed, NFC-normalized and nil when nothing is left.
	Query *string

	Sort SortKey
	Desc bool

	pagination.Params
}

// # Results

// SearchResult is one window of a filtered, ordered result set.
// Total counts the whole filtered set, not just the window.
type SearchResult struct {
	Items []ItemWithRelations
	Total int64
}

// # Transport Views

// ItemView is the flat JSON projection of an [ItemWithRelations].
type ItemView struct {
	ID         int64   `json:"id"`
	Title      string  `json:"title"`
	Synopsis   *string `json:"synopsis"`
	Year       int     `json:"year"`
	CoverURL   *string `json:"coverUrl"`
	GenreID    int64   `json:"genreId"`
	GenreName  string  `json:"genreName"`
	RatingID   int64   `json:"ratingId"`
	RatingName string  `json:"ratingName"`
	TrailerURL *string `json:"trailerUrl"`
}

// View projects the item for JSON responses.
func (item ItemWithRelations) View() ItemView {
	return ItemView{
		ID:         item.ID,
		Title:      item.Title,
		Synopsis:   item.Synopsis,
		Year:       item.Year,
		CoverURL:   item.CoverURL,
		GenreID:    item.GenreID,
		GenreName:  item.Genre.Name,
		RatingID:   item.RatingID,
		RatingName: item.Rating.Name,
		TrailerURL: item.TrailerURL,
	}
}

// Views projects a page of items, preserving order. It never returns nil.
func Views(items []ItemWithRelations) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, item.View())
	}
	return views
}
