package catalog

// Event is a dated happening listed in the events directory.
type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Venue       string   `json:"venue,omitempty"`
	District    string   `json:"district"`
	Category    string   `json:"category"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}
