package models

// Place is a free-text location name such as a district or town.
type Place = string

// RouteCategory describes a trip relative to the home region.
type RouteCategory string

const (
	RouteIntraHome    RouteCategory = "intra_home"
	RouteComingToHome RouteCategory = "coming_to_home"
	RouteLeavingHome  RouteCategory = "leaving_home"
	RouteUnknown      RouteCategory = "unknown"
)

// TransportMode is one way of travelling between two places.
type TransportMode string

const (
	ModeTrain  TransportMode = "Train"
	ModeBus    TransportMode = "Bus"
	ModeFlight TransportMode = "Flight"
	ModeFerry  TransportMode = "Ferry"
	ModeCar    TransportMode = "Car"
)

// TransportOption is a single way to travel a route. Unknown values are nil.
type TransportOption struct {
	Mode        TransportMode `json:"mode"`
	DurationMin *float64      `json:"durationMin"`
	PriceMin    *float64      `json:"priceMin"`
	PriceMax    *float64      `json:"priceMax"`
	Provider    *string       `json:"provider"`
}

// LatLon is a [lat, lon] pair as stored in route polylines.
type LatLon [2]float64

// RouteRecord holds the known transport options between two places.
type RouteRecord struct {
	From     Place             `json:"from"`
	To       Place             `json:"to"`
	Type     RouteCategory     `json:"type"`
	Options  []TransportOption `json:"options"`
	Polyline []LatLon          `json:"polyline,omitempty"`
}
