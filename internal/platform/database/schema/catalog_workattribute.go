package schema

// WorkAttributeTable represents the 'workattribute' table
type WorkAttributeTable struct {
	Table string
	ID    string
	Field string
	Type  string
}

// WorkAttribute is the schema definition for workattribute
var WorkAttribute = WorkAttributeTable{
	Table: "workattribute",
	ID:    "id",
	Field: "field",
	Type:  "type",
}

func (t WorkAttributeTable) Columns() []string {
	return []string{t.ID, t.Field, t.Type}
}
