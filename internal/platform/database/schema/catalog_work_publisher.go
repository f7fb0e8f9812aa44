package schema

// WorkPublisherTable represents the 'work_publisher' table
type WorkPublisherTable struct {
	Table           string
	ID              string
	WorkID          string
	PublisherID     string
	LocationID      string
	PublishYear     string
	PublishMonth    string
	PublishYearEnd  string
	PublishMonthEnd string
}

// WorkPublisher is the schema definition for work_publisher
var WorkPublisher = WorkPublisherTable{
	Table:           "work_publisher",
	ID:              "id",
	WorkID:          "work_id",
	PublisherID:     "publisher_id",
	LocationID:      "location_id",
	PublishYear:     "publish_year",
	PublishMonth:    "publish_month",
	PublishYearEnd:  "publish_year_end",
	PublishMonthEnd: "publish_month_end",
}

func (t WorkPublisherTable) Columns() []string {
	return []string{t.ID, t.WorkID, t.PublisherID, t.LocationID, t.PublishYear, t.PublishMonth, t.PublishYearEnd, t.PublishMonthEnd}
}
