package schema

// WorkFolderTable represents the 'work_folder' table
type WorkFolderTable struct {
	Table    string
	WorkID   string
	FolderID string
}

// WorkFolder is the schema definition for work_folder
var WorkFolder = WorkFolderTable{
	Table:    "work_folder",
	WorkID:   "work_id",
	FolderID: "folder_id",
}

func (t WorkFolderTable) Columns() []string {
	return []string{t.WorkID, t.FolderID}
}
