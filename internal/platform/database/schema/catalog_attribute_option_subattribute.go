package schema

// AttributeOptionSubAttributeTable represents the 'attribute_option_subattribute' table
type AttributeOptionSubAttributeTable struct {
	Table          string
	ID             string
	OptionID       string
	SubAttributeID string
	Value          string
}

// AttributeOptionSubAttribute is the schema definition for attribute_option_subattribute
var AttributeOptionSubAttribute = AttributeOptionSubAttributeTable{
	Table:          "attribute_option_subattribute",
	ID:             "id",
	OptionID:       "workattribute_option_id",
	SubAttributeID: "subattribute_id",
	Value:          "subattr_value",
}

func (t AttributeOptionSubAttributeTable) Columns() []string {
	return []string{t.ID, t.OptionID, t.SubAttributeID, t.Value}
}
