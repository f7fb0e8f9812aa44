package schema

// TranslationsTable represents the 'translations' table, which stores one
// localized label per (table, id, lang) for translatable catalog rows.
type TranslationsTable struct {
	Table     string
	ID        string
	TableName string
	Lang      string
	Text      string
}

// Translations is the schema definition for translations
var Translations = TranslationsTable{
	Table:     "translations",
	ID:        "id",
	TableName: `"table"`,
	Lang:      "lang",
	Text:      "text",
}

func (t TranslationsTable) Columns() []string {
	return []string{t.ID, t.TableName, t.Lang, t.Text}
}
