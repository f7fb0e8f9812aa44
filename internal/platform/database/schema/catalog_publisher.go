package schema

// PublisherTable represents the 'publisher' table
type PublisherTable struct {
	Table string
	ID    string
	Name  string
}

// Publisher is the schema definition for publisher
var Publisher = PublisherTable{
	Table: "publisher",
	ID:    "id",
	Name:  "name",
}

func (t PublisherTable) Columns() []string {
	return []string{t.ID, t.Name}
}
