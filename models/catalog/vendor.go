package catalog

import "fmt"

// Vendor is a food or retail business listed in the vendor directory.
type Vendor struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Landmark    string   `json:"landmark,omitempty"`
	City        string   `json:"city"`
	District    string   `json:"district"`
	Type        string   `json:"type"`
	PriceBucket string   `json:"price_bucket,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Reviews     int      `json:"reviews,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`

	OpeningHours []OpeningHours `json:"opening_hours,omitempty"`
}

func (v *Vendor) ToString() string {
	return fmt.Sprintf("Vendor(name=%s, district=%s, lat=%f, lng=%f)",
		v.Name, v.District, v.Lat, v.Lng)
}
