// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/taibuivan/movix/internal/platform/constants"
)

// # Cross-Origin Resource Sharing

// corsMaxAge is how long (seconds) browsers may cache a preflight answer.
const corsMaxAge = 300

// CORS allows the configured origins to read the catalogue from a browser.
// X-Total-Count is exposed so front-ends can build pagers from the header.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{
			constants.HeaderAccept,
			constants.HeaderContentType,
			constants.HeaderXRequestID,
		},
		ExposedHeaders: []string{
			constants.HeaderXTotalCount,
			constants.HeaderXRequestID,
		},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	})
}
