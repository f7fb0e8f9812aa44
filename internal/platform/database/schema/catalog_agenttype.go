package schema

// AgentTypeTable represents the 'agenttype' table
type AgentTypeTable struct {
	Table string
	ID    string
	Type  string
}

// AgentType is the schema definition for agenttype
var AgentType = AgentTypeTable{
	Table: "agenttype",
	ID:    "id",
	Type:  "type",
}

func (t AgentTypeTable) Columns() []string {
	return []string{t.ID, t.Type}
}
