package schema

// CoreGenreTable represents the 'core.genre' table
type CoreGenreTable struct {
	Table string
	Alias string
	ID    string
	Name  string
}

// CoreGenre is the schema definition for core.genre
var CoreGenre = CoreGenreTable{
	Table: "core.genre",
	Alias: "g",
	ID:    "id",
	Name:  "name",
}

func (t CoreGenreTable) Col(column string) string { return t.Alias + "." + column }

func (t CoreGenreTable) From() string { return t.Table + " " + t.Alias }

func (t CoreGenreTable) Columns() []string { return []string{t.ID, t.Name} }
