// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond provides HTTP response helpers used by all API handlers.
//
// # Architecture
//
// This package centralizes the presentation logic for HTTP responses.
// Every response (Success, List or Error) across the application follows a
// predictable JSON shape so clients can parse data robustly.
package respond

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/taibuivan/movix/internal/platform/apperr"
	"github.com/taibuivan/movix/internal/platform/constants"
	"github.com/taibuivan/movix/internal/platform/ctxutil"
)

// SuccessEnvelope is the JSON envelope for successful single-resource responses.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope is the JSON body of a counted list: the window of items plus the
// size of the whole filtered set.
type ListEnvelope[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
}

// ErrorEnvelope is the JSON envelope for error responses.
type ErrorEnvelope struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// JSON writes a JSON response with the given status code.
func JSON(writer http.ResponseWriter, statusCode int, payload any) {
	writer.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	writer.WriteHeader(statusCode)
	_ = json.NewEncoder(writer).Encode(payload)
}

// OK writes a 200 OK response with data wrapped in the standard success envelope.
func OK(writer http.ResponseWriter, data any) {
	JSON(writer, http.StatusOK, SuccessEnvelope{Data: data})
}

// Raw writes a 200 OK response with the payload as-is, without an envelope.
func Raw(writer http.ResponseWriter, payload any) {
	JSON(writer, http.StatusOK, payload)
}

/*
List writes a counted page of items.

The total is sent twice: in the body and in the X-Total-Count header, so
clients that only look at headers can render pagers without decoding.

Parameters:
  - writer: http.ResponseWriter
  - items: []T (never encoded as null)
  - total: int64
*/
func List[T any](writer http.ResponseWriter, items []T, total int64) {
	if items == nil {
		items = []T{}
	}
	writer.Header().Set(constants.HeaderXTotalCount, strconv.FormatInt(total, 10))
	JSON(writer, http.StatusOK, ListEnvelope[T]{Items: items, Total: total})
}

// NotFound writes a bare 404 with no body.
func NotFound(writer http.ResponseWriter) {
	writer.WriteHeader(http.StatusNotFound)
}

// Error converts any Go error into a standardized JSON API error response.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.FromContext(err)
	}
	if appError == nil {
		// Unexpected internal error: log full details but hide them from the client.
		logger.ErrorContext(ctx, "unhandled_error_swallowed",
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
		appError = apperr.Internal(err)
	}

	switch {
	case appError.HTTPStatus >= 500:
		logger.ErrorContext(ctx, "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
			slog.Any("cause", appError.Cause),
		)
	case appError.HTTPStatus == apperr.StatusClientClosedRequest:
		logger.InfoContext(ctx, "request_cancelled_by_client",
			slog.String("request_id", ctxutil.GetRequestID(ctx)),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error: appError.Message,
		Code:  appError.Code,
	})
}
