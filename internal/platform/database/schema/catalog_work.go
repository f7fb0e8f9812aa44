package schema

// WorkTable represents the 'work' table
type WorkTable struct {
	Table         string
	ID            string
	Title         string
	Subtitle      string
	ParallelTitle string
	Description   string
	Status        string
	TypeID        string
	ParentID      string
	CreateDate    string
	CreateUserID  string
	ModifyDate    string
	ModifyUserID  string
}

// Work is the schema definition for work
var Work = WorkTable{
	Table:         "work",
	ID:            "id",
	Title:         "title",
	Subtitle:      "subtitle",
	ParallelTitle: "paralleltitle",
	Description:   "description",
	Status:        "status",
	TypeID:        "type_id",
	ParentID:      "work_id",
	CreateDate:    "create_date",
	CreateUserID:  "create_user_id",
	ModifyDate:    "modify_date",
	ModifyUserID:  "modify_user_id",
}

func (t WorkTable) Columns() []string {
	return []string{t.ID, t.Title, t.Subtitle, t.ParallelTitle, t.Description, t.Status, t.TypeID, t.ParentID, t.CreateDate, t.CreateUserID, t.ModifyDate, t.ModifyUserID}
}
