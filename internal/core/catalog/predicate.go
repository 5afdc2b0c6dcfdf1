// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/taibuivan/movix/internal/platform/database/schema"
)

var itemTable = schema.CoreCatalogItem

// likeEscaper neutralizes LIKE metacharacters. Postgres uses backslash as the
// default LIKE escape, so no ESCAPE clause is needed.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes the user query match literally inside a LIKE pattern.
func escapeLike(query string) string {
	return likeEscaper.Replace(query)
}

/*
buildPredicates returns the conjunction of every filter present in spec.

Absent filters contribute nothing, so an empty spec yields an empty [squirrel.And]
that callers must not attach to a WHERE clause. Every predicate references
catalogitem columns only.

The text predicate is a case-insensitive literal substring match:

	title ILIKE p OR (synopsis IS NOT NULL AND synopsis ILIKE p)
*/
func buildPredicates(spec FilterSpec) squirrel.And {
	var predicates squirrel.And

	if spec.GenreID != nil {
		predicates = append(predicates, squirrel.Eq{itemTable.Col(itemTable.GenreID): *spec.GenreID})
	}

	if spec.RatingID != nil {
		predicates = append(predicates, squirrel.Eq{itemTable.Col(itemTable.RatingID): *spec.RatingID})
	}

	if spec.Year != nil {
		predicates = append(predicates, squirrel.Eq{itemTable.Col(itemTable.Year): *spec.Year})
	}

	if spec.Query != nil {
		pattern := "%" + escapeLike(*spec.Query) + "%"
		predicates = append(predicates, squirrel.Or{
			squirrel.ILike{itemTable.Col(itemTable.Title): pattern},
			squirrel.And{
				squirrel.NotEq{itemTable.Col(itemTable.Synopsis): nil},
				squirrel.ILike{itemTable.Col(itemTable.Synopsis): pattern},
			},
		})
	}

	return predicates
}
