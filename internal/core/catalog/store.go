// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalogue Data Access

// Repository defines the read contract for the catalogue.
// Implementations must be stateless and safe for concurrent use.
type Repository interface {

	/*
		Search returns one window of the items matching spec, ordered, with
		genre and rating resolved, plus the size of the whole filtered set.

		Parameters:
		  - ctx: context.Context (checked before each stage)
		  - spec: FilterSpec (already normalized)

		Returns:
		  - SearchResult: Items (possibly empty, never nil) and Total
		  - error: storage failure, or an error wrapping context.Canceled /
		    context.DeadlineExceeded. No partial result is returned with an error.
	*/
	Search(ctx context.Context, spec FilterSpec) (SearchResult, error)

	/*
		FindByID returns the item with the given id and its relations.

		Parameters:
		  - ctx: context.Context
		  - id: int64

		Returns:
		  - ItemWithRelations: zero value when not found
		  - bool: false when no such item exists
		  - error: storage or context failures only, never "not found"
	*/
	FindByID(ctx context.Context, id int64) (ItemWithRelations, bool, error)
}
