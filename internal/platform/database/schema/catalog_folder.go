package schema

// FolderTable represents the 'folder' table
type FolderTable struct {
	Table     string
	ID        string
	ParentID  string
	TextEN    string
	TextFR    string
	TextDE    string
	TextNL    string
	TextES    string
	TextIT    string
	SortOrder string
}

// Folder is the schema definition for folder
var Folder = FolderTable{
	Table:     "folder",
	ID:        "id",
	ParentID:  "parent_id",
	TextEN:    "text_en",
	TextFR:    "text_fr",
	TextDE:    "text_de",
	TextNL:    "text_nl",
	TextES:    "text_es",
	TextIT:    "text_it",
	SortOrder: "sort_order",
}

func (t FolderTable) Columns() []string {
	return []string{t.ID, t.ParentID, t.TextEN, t.TextFR, t.TextDE, t.TextNL, t.TextES, t.TextIT, t.SortOrder}
}

// TextColumn returns the localized label column for a language code.
func (t FolderTable) TextColumn(lang string) string {
	return "text_" + lang
}
