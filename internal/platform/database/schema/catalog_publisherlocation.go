package schema

// PublisherLocationTable represents the 'publisherlocation' table
type PublisherLocationTable struct {
	Table       string
	ID          string
	PublisherID string
	Location    string
}

// PublisherLocation is the schema definition for publisherlocation
var PublisherLocation = PublisherLocationTable{
	Table:       "publisherlocation",
	ID:          "id",
	PublisherID: "publisher_id",
	Location:    "location",
}

func (t PublisherLocationTable) Columns() []string {
	return []string{t.ID, t.PublisherID, t.Location}
}
