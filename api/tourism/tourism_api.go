package tourism

import (
	"context"

	"tourism-server/models"
	"tourism-server/models/catalog"
)

// ListParams narrows a list request. Zero values are not sent.
type ListParams struct {
	Query    string
	District string
	Category string
	Limit    int
}

// TourismAPI defines the interface for interacting with the upstream tourism API
type TourismAPI interface {
	ListVendors(ctx context.Context, params ListParams) ([]catalog.Vendor, error)
	ListStays(ctx context.Context, params ListParams) ([]catalog.Stay, error)
	ListEvents(ctx context.Context, params ListParams) ([]catalog.Event, error)
	ListPlaces(ctx context.Context, params ListParams) ([]catalog.Place, error)
	GetKPIs(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.KPI, error)
	GetTimeSeries(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.TimeSeries, error)
}
