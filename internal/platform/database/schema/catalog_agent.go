package schema

// AgentTable represents the 'agent' table
type AgentTable struct {
	Table            string
	ID               string
	FirstName        string
	LastName         string
	AlternateName    string
	OrganizationName string
	Email            string
}

// Agent is the schema definition for agent
var Agent = AgentTable{
	Table:            "agent",
	ID:               "id",
	FirstName:        "fname",
	LastName:         "lname",
	AlternateName:    "alternate_name",
	OrganizationName: "organization_name",
	Email:            "email",
}

func (t AgentTable) Columns() []string {
	return []string{t.ID, t.FirstName, t.LastName, t.AlternateName, t.OrganizationName, t.Email}
}
