// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/movix/internal/platform/respond"
	"github.com/taibuivan/movix/pkg/convert"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalogue discovery.
type Handler struct {
	service *Service
}

// NewHandler constructs a new catalogue [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the catalogue endpoints. Mount it at
// /catalog-items.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listItems)
	router.Get("/{id:[0-9]+}", handler.getItem)

	return router
}

// # Catalogue Endpoints

/*
GET /catalog-items.

Description: Searches the catalogue. Malformed optional values are treated as
absent; nothing in the query string can produce a 400.

Request:
  - genreId: int64
  - ratingId: int64
  - year: int
  - q: string (literal, case-insensitive substring of title or synopsis)
  - sortBy: string (title, year, createdAt; case-insensitive)
  - desc: bool (default true)
  - page: int (default 1)
  - pageSize: int (default 12, max 2000, 0 returns every match)

Response:
  - 200: {"items": []ItemView, "total": int} and header X-Total-Count
*/
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	result, _, err := handler.service.Search(request.Context(), rawFilterFromRequest(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.List(writer, Views(result.Items), result.Total)
}

/*
GET /catalog-items/{id}.

Response:
  - 200: ItemView
  - 404: empty body
*/
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	// The route regex admits digits only; overflow is the remaining failure.
	id, err := strconv.ParseInt(chi.URLParam(request, "id"), 10, 64)
	if err != nil {
		respond.NotFound(writer)
		return
	}

	found, ok, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !ok {
		respond.NotFound(writer)
		return
	}

	respond.Raw(writer, found.View())
}

// rawFilterFromRequest lifts query parameters into a [RawFilter] without
// judging them; [Normalize] owns every default.
func rawFilterFromRequest(request *http.Request) RawFilter {
	query := request.URL.Query()

	return RawFilter{
		GenreID:  convert.ToInt64Ptr(query.Get("genreId")),
		RatingID: convert.ToInt64Ptr(query.Get("ratingId")),
		Year:     convert.ToInt32Ptr(query.Get("year")),
		Query:    convert.ToStringPtr(query.Get("q")),
		SortBy:   convert.ToStringPtr(query.Get("sortBy")),
		Desc:     convert.ToBoolPtr(query.Get("desc")),
		Page:     convert.ToIntPtr(query.Get("page")),
		PageSize: convert.ToIntPtr(query.Get("pageSize")),
	}
}
