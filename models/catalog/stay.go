package catalog

// Stay is an accommodation listing (hotel, homestay, resort).
type Stay struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Landmark      string   `json:"landmark,omitempty"`
	District      string   `json:"district"`
	Type          string   `json:"type"`
	PriceBucket   string   `json:"price_bucket,omitempty"`
	PricePerNight *float64 `json:"price_per_night,omitempty"`
	Rating        *float64 `json:"rating,omitempty"`
	Amenities     []string `json:"amenities,omitempty"`
	Lat           float64  `json:"lat"`
	Lng           float64  `json:"lng"`
}
