package schema

// CoreRatingTable represents the 'core.rating' table (age classification)
type CoreRatingTable struct {
	Table string
	Alias string
	ID    string
	Name  string
}

// CoreRating is the schema definition for core.rating
var CoreRating = CoreRatingTable{
	Table: "core.rating",
	Alias: "r",
	ID:    "id",
	Name:  "name",
}

func (t CoreRatingTable) Col(column string) string { return t.Alias + "." + column }

func (t CoreRatingTable) From() string { return t.Table + " " + t.Alias }

func (t CoreRatingTable) Columns() []string { return []string{t.ID, t.Name} }
