// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr is the single error vocabulary between the services and the
HTTP boundary.

Services classify every failure into an [AppError]. The respond package turns
it into a status code and a client-safe JSON body; the cause stays in logs.

Classes:

  - NOT_FOUND (404)
  - REQUEST_CANCELLED (499): the caller went away.
  - TIMEOUT (504): the request deadline passed first.
  - INTERNAL_ERROR (500): anything storage reported that is not one of the above.
*/
package apperr

import (
	"context"
	"errors"
	"net/http"
)

// StatusClientClosedRequest is the non-standard status used when the caller
// went away before the response was ready.
const StatusClientClosedRequest = 499

// AppError is a classified failure.
//
// # Security
//
// Cause is for server-side logging only and is never serialized.
type AppError struct {
	// Code is the machine-readable class, e.g. "TIMEOUT".
	Code string `json:"code"`
	// Message is safe to show to clients.
	Message string `json:"error"`
	// HTTPStatus is the response status code.
	HTTPStatus int `json:"-"`
	// Cause is the underlying error.
	Cause error `json:"-"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes Cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// NotFound creates a 404 for a named resource, e.g. NotFound("Catalog item").
func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    resource + " not found",
		HTTPStatus: http.StatusNotFound,
	}
}

// Cancelled creates a 499 for a request the caller abandoned.
// The cause is kept so errors.Is(err, context.Canceled) still holds.
func Cancelled(cause error) *AppError {
	return &AppError{
		Code:       "REQUEST_CANCELLED",
		Message:    "The request was cancelled",
		HTTPStatus: StatusClientClosedRequest,
		Cause:      cause,
	}
}

// Timeout creates a 504 for work that ran past its deadline.
func Timeout(cause error) *AppError {
	return &AppError{
		Code:       "TIMEOUT",
		Message:    "The request took too long to complete",
		HTTPStatus: http.StatusGatewayTimeout,
		Cause:      cause,
	}
}

// Internal creates a 500 around an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Classification

// FromContext maps a context error anywhere in err's chain to its [AppError].
// It returns nil when err is neither a cancellation nor a deadline.
func FromContext(err error) *AppError {
	switch {
	case errors.Is(err, context.Canceled):
		return Cancelled(err)
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout(err)
	}
	return nil
}

// As extracts the [*AppError] from err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
