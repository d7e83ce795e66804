package services

import (
	"context"
	"sync"

	"tourism-server/api/tourism"
	"tourism-server/models"
	"tourism-server/models/catalog"
)

// fakeTourismAPI returns canned rows and errors and counts calls.
type fakeTourismAPI struct {
	mu    sync.Mutex
	calls map[string]int

	vendors   []catalog.Vendor
	stays     []catalog.Stay
	events    []catalog.Event
	places    []catalog.Place
	kpis      []models.KPI
	series    []models.TimeSeries
	errs      map[string]error
	lastRange models.DateRangeSelection
	lastPOI   string
}

var _ tourism.TourismAPI = (*fakeTourismAPI)(nil)

func newFakeTourismAPI() *fakeTourismAPI {
	return &fakeTourismAPI{calls: map[string]int{}, errs: map[string]error{}}
}

func (f *fakeTourismAPI) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.errs[name]
}

func (f *fakeTourismAPI) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeTourismAPI) ListVendors(ctx context.Context, params tourism.ListParams) ([]catalog.Vendor, error) {
	if err := f.record("vendors"); err != nil {
		return nil, err
	}
	return f.vendors, nil
}

func (f *fakeTourismAPI) ListStays(ctx context.Context, params tourism.ListParams) ([]catalog.Stay, error) {
	if err := f.record("stays"); err != nil {
		return nil, err
	}
	return f.stays, nil
}

func (f *fakeTourismAPI) ListEvents(ctx context.Context, params tourism.ListParams) ([]catalog.Event, error) {
	if err := f.record("events"); err != nil {
		return nil, err
	}
	return f.events, nil
}

func (f *fakeTourismAPI) ListPlaces(ctx context.Context, params tourism.ListParams) ([]catalog.Place, error) {
	if err := f.record("places"); err != nil {
		return nil, err
	}
	return f.places, nil
}

func (f *fakeTourismAPI) GetKPIs(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.KPI, error) {
	f.mu.Lock()
	f.lastRange, f.lastPOI = rng, poiID
	f.mu.Unlock()
	if err := f.record("kpis"); err != nil {
		return nil, err
	}
	return f.kpis, nil
}

func (f *fakeTourismAPI) GetTimeSeries(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.TimeSeries, error) {
	if err := f.record("series"); err != nil {
		return nil, err
	}
	return f.series, nil
}
