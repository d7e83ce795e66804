package filter

import "tourism-server/models/catalog"

func optional(v *float64) (float64, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

var VendorAccessors = Accessors[catalog.Vendor]{
	Text:        func(v catalog.Vendor) []string { return []string{v.Name, v.Description, v.Landmark, v.City} },
	District:    func(v catalog.Vendor) string { return v.District },
	Type:        func(v catalog.Vendor) string { return v.Type },
	PriceBucket: func(v catalog.Vendor) string { return v.PriceBucket },
	Price:       func(v catalog.Vendor) (float64, bool) { return optional(v.Price) },
	Rating:      func(v catalog.Vendor) (float64, bool) { return optional(v.Rating) },
	Tags:        func(v catalog.Vendor) []string { return v.Amenities },
}

var VendorSorters = Sorters[catalog.Vendor]{
	Name:   func(v catalog.Vendor) string { return v.Name },
	Price:  VendorAccessors.Price,
	Rating: VendorAccessors.Rating,
}

var StayAccessors = Accessors[catalog.Stay]{
	Text:        func(s catalog.Stay) []string { return []string{s.Name, s.Description, s.Landmark} },
	District:    func(s catalog.Stay) string { return s.District },
	Type:        func(s catalog.Stay) string { return s.Type },
	PriceBucket: func(s catalog.Stay) string { return s.PriceBucket },
	Price:       func(s catalog.Stay) (float64, bool) { return optional(s.PricePerNight) },
	Rating:      func(s catalog.Stay) (float64, bool) { return optional(s.Rating) },
	Tags:        func(s catalog.Stay) []string { return s.Amenities },
}

var StaySorters = Sorters[catalog.Stay]{
	Name:   func(s catalog.Stay) string { return s.Name },
	Price:  StayAccessors.Price,
	Rating: StayAccessors.Rating,
}

// Events have no rating or price bucket; those dimensions are ignored.
var EventAccessors = Accessors[catalog.Event]{
	Text:     func(e catalog.Event) []string { return []string{e.Title, e.Description, e.Venue} },
	District: func(e catalog.Event) string { return e.District },
	Type:     func(e catalog.Event) string { return e.Category },
	Price:    func(e catalog.Event) (float64, bool) { return optional(e.Price) },
	Tags:     func(e catalog.Event) []string { return e.Tags },
}

var EventSorters = Sorters[catalog.Event]{
	Name:  func(e catalog.Event) string { return e.Title },
	Price: EventAccessors.Price,
}
