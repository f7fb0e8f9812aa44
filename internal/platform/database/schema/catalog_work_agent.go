package schema

// WorkAgentTable represents the 'work_agent' table
type WorkAgentTable struct {
	Table       string
	ID          string
	WorkID      string
	AgentID     string
	AgentTypeID string
}

// WorkAgent is the schema definition for work_agent
var WorkAgent = WorkAgentTable{
	Table:       "work_agent",
	ID:          "id",
	WorkID:      "work_id",
	AgentID:     "agent_id",
	AgentTypeID: "agenttype_id",
}

func (t WorkAgentTable) Columns() []string {
	return []string{t.ID, t.WorkID, t.AgentID, t.AgentTypeID}
}
