// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference serves the master data the catalogue filters refer to.

# Core Responsibility

  - Genres: the classification categories behind the genreId filter.
  - Ratings: the audience classifications behind the ratingId filter.

Clients read these lists to build filter controls. The package is read-only,
like the catalogue it supports.
*/
package reference

import "github.com/taibuivan/movix/internal/core/catalog"

// # Reference Entities

// Genre is re-exported from the catalogue so both endpoints emit one shape.
type Genre = catalog.Genre

// Rating is re-exported from the catalogue so both endpoints emit one shape.
type Rating = catalog.Rating
