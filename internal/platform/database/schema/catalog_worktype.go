package schema

// WorkTypeTable represents the 'worktype' table
type WorkTypeTable struct {
	Table string
	ID    string
	Type  string
}

// WorkType is the schema definition for worktype
var WorkType = WorkTypeTable{
	Table: "worktype",
	ID:    "id",
	Type:  "type",
}

func (t WorkTypeTable) Columns() []string {
	return []string{t.ID, t.Type}
}
