package tourism

import (
	"context"
	"fmt"
	"time"

	"tourism-server/config"
	"tourism-server/models"
	"tourism-server/models/catalog"
	"tourism-server/util"
	"tourism-server/util/textutil"
)

// TourismApiClientMock serves the JSON fixtures under resources/ instead of
// calling the upstream API. Time series are projected onto the requested
// range by day of year.
type TourismApiClientMock struct {
	// Err, when set, is returned by every call.
	Err error
}

// NewTourismApiClientMock creates a new instance of TourismApiClientMock
func NewTourismApiClientMock() *TourismApiClientMock {
	return &TourismApiClientMock{}
}

func (c *TourismApiClientMock) ListVendors(ctx context.Context, params ListParams) ([]catalog.Vendor, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	vendors, err := util.ReadVendorsFromJSON(config.GetResourcePath(config.VENDORS_RESOURCE))
	if err != nil {
		return nil, err
	}
	return narrow(vendors, params, func(v catalog.Vendor) (string, string, string) {
		return v.Name + " " + v.Description, v.District, v.Type
	}), nil
}

func (c *TourismApiClientMock) ListStays(ctx context.Context, params ListParams) ([]catalog.Stay, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	stays, err := util.ReadStaysFromJSON(config.GetResourcePath(config.STAYS_RESOURCE))
	if err != nil {
		return nil, err
	}
	return narrow(stays, params, func(s catalog.Stay) (string, string, string) {
		return s.Name + " " + s.Description, s.District, s.Type
	}), nil
}

func (c *TourismApiClientMock) ListEvents(ctx context.Context, params ListParams) ([]catalog.Event, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	events, err := util.ReadEventsFromJSON(config.GetResourcePath(config.EVENTS_RESOURCE))
	if err != nil {
		return nil, err
	}
	return narrow(events, params, func(e catalog.Event) (string, string, string) {
		return e.Title + " " + e.Venue, e.District, e.Category
	}), nil
}

func (c *TourismApiClientMock) ListPlaces(ctx context.Context, params ListParams) ([]catalog.Place, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	places, err := util.ReadPlacesFromJSON(config.GetResourcePath(config.PLACES_RESOURCE))
	if err != nil {
		return nil, err
	}
	return narrow(places, params, func(p catalog.Place) (string, string, string) {
		return p.Name, p.District, p.Category
	}), nil
}

func (c *TourismApiClientMock) GetKPIs(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.KPI, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	return util.ReadJSON[[]models.KPI](config.GetResourcePath(config.KPIS_RESOURCE))
}

func (c *TourismApiClientMock) GetTimeSeries(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.TimeSeries, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	templates, err := util.ReadJSON[[]models.TimeSeries](config.GetResourcePath(config.TIME_SERIES_RESOURCE))
	if err != nil {
		return nil, err
	}
	from, err := time.Parse(time.DateOnly, rng.From)
	if err != nil {
		return nil, fmt.Errorf("date_from: %w", err)
	}
	to, err := time.Parse(time.DateOnly, rng.To)
	if err != nil {
		return nil, fmt.Errorf("date_to: %w", err)
	}

	series := make([]models.TimeSeries, 0, len(templates))
	for _, tpl := range templates {
		byDay := make(map[string]float64, len(tpl.Points))
		for _, p := range tpl.Points {
			if len(p.Date) == len(time.DateOnly) {
				byDay[p.Date[5:]] = p.Value
			}
		}
		points := make([]models.TimeSeriesPoint, 0)
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			points = append(points, models.TimeSeriesPoint{
				Date:  d.Format(time.DateOnly),
				Value: byDay[d.Format("01-02")],
			})
		}
		series = append(series, models.TimeSeries{Name: tpl.Name, Points: points})
	}
	return series, nil
}

// narrow applies the subset of list filtering the upstream API supports.
func narrow[T any](rows []T, params ListParams, fields func(T) (text, district, category string)) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		text, district, category := fields(row)
		if params.Query != "" && !textutil.ContainsFold(text, params.Query) {
			continue
		}
		if params.District != "" && !textutil.EqualFold(district, params.District) {
			continue
		}
		if params.Category != "" && !textutil.EqualFold(category, params.Category) {
			continue
		}
		out = append(out, row)
		if params.Limit > 0 && len(out) == params.Limit {
			break
		}
	}
	return out
}
