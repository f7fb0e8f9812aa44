package schema

// WorkAttributeSubAttributeTable represents the 'workattribute_subattribute' table
type WorkAttributeSubAttributeTable struct {
	Table           string
	ID              string
	WorkAttributeID string
	SubAttribute    string
}

// WorkAttributeSubAttribute is the schema definition for workattribute_subattribute
var WorkAttributeSubAttribute = WorkAttributeSubAttributeTable{
	Table:           "workattribute_subattribute",
	ID:              "id",
	WorkAttributeID: "workattribute_id",
	SubAttribute:    "subattribute",
}

func (t WorkAttributeSubAttributeTable) Columns() []string {
	return []string{t.ID, t.WorkAttributeID, t.SubAttribute}
}
