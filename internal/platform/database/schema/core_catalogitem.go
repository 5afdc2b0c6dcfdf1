package schema

// CoreCatalogItemTable represents the 'core.catalogitem' table
type CoreCatalogItemTable struct {
	Table      string
	Alias      string
	ID         string
	Title      string
	Synopsis   string
	Year       string
	CoverURL   string
	TrailerURL string
	GenreID    string
	RatingID   string
	CreatedAt  string
}

// CoreCatalogItem is the schema definition for core.catalogitem
var CoreCatalogItem = CoreCatalogItemTable{
	Table:      "core.catalogitem",
	Alias:      "c",
	ID:         "id",
	Title:      "title",
	Synopsis:   "synopsis",
	Year:       "year",
	CoverURL:   "coverurl",
	TrailerURL: "trailerurl",
	GenreID:    "genreid",
	RatingID:   "ratingid",
	CreatedAt:  "createdat",
}

// Col qualifies a column with the table alias, e.g. "c.title".
func (t CoreCatalogItemTable) Col(column string) string { return t.Alias + "." + column }

// From renders the aliased table reference used in FROM clauses.
func (t CoreCatalogItemTable) From() string { return t.Table + " " + t.Alias }

func (t CoreCatalogItemTable) Columns() []string {
	return []string{
		t.Col(t.ID),
		t.Col(t.Title),
		t.Col(t.Synopsis),
		t.Col(t.Year),
		t.Col(t.CoverURL),
		t.Col(t.TrailerURL),
		t.Col(t.GenreID),
		t.Col(t.RatingID),
		t.Col(t.CreatedAt),
	}
}
