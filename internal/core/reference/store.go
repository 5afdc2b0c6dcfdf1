// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

// # Reference Data Access

// Repository defines the data access contract for reference data.
type Repository interface {

	/*
		ListGenres retrieves every genre ordered by name.

		Returns:
		  - []Genre: never nil
		  - error: Database retrieval failures
	*/
	ListGenres(ctx context.Context) ([]Genre, error)

	/*
		ListRatings retrieves every rating ordered by name.

		Returns:
		  - []Rating: never nil
		  - error: Database retrieval failures
	*/
	ListRatings(ctx context.Context) ([]Rating, error)
}
