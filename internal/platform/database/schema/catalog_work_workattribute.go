package schema

// WorkWorkAttributeTable represents the 'work_workattribute' table
type WorkWorkAttributeTable struct {
	Table           string
	ID              string
	WorkID          string
	WorkAttributeID string
	Value           string
}

// WorkWorkAttribute is the schema definition for work_workattribute
var WorkWorkAttribute = WorkWorkAttributeTable{
	Table:           "work_workattribute",
	ID:              "id",
	WorkID:          "work_id",
	WorkAttributeID: "workattribute_id",
	Value:           "value",
}

func (t WorkWorkAttributeTable) Columns() []string {
	return []string{t.ID, t.WorkID, t.WorkAttributeID, t.Value}
}
