package catalog

// Kind names a cached catalog.
type Kind string

const (
	KindVendors Kind = "vendors"
	KindStays   Kind = "stays"
	KindEvents  Kind = "events"
	KindPlaces  Kind = "places"
)

// Kinds lists every catalog refreshed from upstream.
var Kinds = []Kind{KindVendors, KindStays, KindEvents, KindPlaces}
