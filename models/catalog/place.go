package catalog

// Place is a point of interest known to the analytics backend. Dashboards
// can be scoped to one place through its ID.
type Place struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	District string  `json:"district"`
	Category string  `json:"category,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}
