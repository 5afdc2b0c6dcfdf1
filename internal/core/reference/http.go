// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/movix/internal/platform/respond"
)

// Handler implements the HTTP layer for reference data.
type Handler struct {
	service *Service
}

// NewHandler constructs a new reference [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register attaches the reference endpoints to router. They live at the root
// next to /catalog-items, so there is no sub-router to mount.
func (handler *Handler) Register(router chi.Router) {
	router.Get("/genres", handler.listGenres)
	router.Get("/ratings", handler.listRatings)
}

/*
GET /genres.

Description: Lists every genre, ordered by name.

Response:
  - 200: {"data": []Genre}
*/
func (handler *Handler) listGenres(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.service.ListGenres(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, genres)
}

/*
GET /ratings.

Response:
  - 200: {"data": []Rating}
*/
func (handler *Handler) listRatings(writer http.ResponseWriter, request *http.Request) {
	ratings, err := handler.service.ListRatings(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ratings)
}
