package schema

// WorkAttributeOptionTable represents the 'workattribute_option' table
type WorkAttributeOptionTable struct {
	Table           string
	ID              string
	WorkAttributeID string
	Title           string
	Value           string
}

// WorkAttributeOption is the schema definition for workattribute_option
var WorkAttributeOption = WorkAttributeOptionTable{
	Table:           "workattribute_option",
	ID:              "id",
	WorkAttributeID: "workattribute_id",
	Title:           "title",
	Value:           "value",
}

func (t WorkAttributeOptionTable) Columns() []string {
	return []string{t.ID, t.WorkAttributeID, t.Title, t.Value}
}
