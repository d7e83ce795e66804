package tourism

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tourism-server/api"
	"tourism-server/metrics"
	"tourism-server/models"
	"tourism-server/models/catalog"
)

const (
	VENDORS_ENDPOINT     = "/vendors/"
	STAYS_ENDPOINT       = "/stays/"
	EVENTS_ENDPOINT      = "/events/"
	PLACES_ENDPOINT      = "/places/"
	KPIS_ENDPOINT        = "/analytics/kpis/"
	TIME_SERIES_ENDPOINT = "/analytics/time-series/"

	// maxPages stops a list walk whose "next" links never run out.
	maxPages = 100
)

// TourismApiClient embeds the common HTTPClient
type TourismApiClient struct {
	*api.HTTPClient
}

// NewTourismApiClient creates a new instance of TourismApiClient
func NewTourismApiClient(httpClient *api.HTTPClient) *TourismApiClient {
	return &TourismApiClient{
		HTTPClient: httpClient,
	}
}

func (c *TourismApiClient) ListVendors(ctx context.Context, params ListParams) ([]catalog.Vendor, error) {
	return listAll[catalog.Vendor](ctx, c, VENDORS_ENDPOINT, params.values())
}

func (c *TourismApiClient) ListStays(ctx context.Context, params ListParams) ([]catalog.Stay, error) {
	return listAll[catalog.Stay](ctx, c, STAYS_ENDPOINT, params.values())
}

func (c *TourismApiClient) ListEvents(ctx context.Context, params ListParams) ([]catalog.Event, error) {
	return listAll[catalog.Event](ctx, c, EVENTS_ENDPOINT, params.values())
}

func (c *TourismApiClient) ListPlaces(ctx context.Context, params ListParams) ([]catalog.Place, error) {
	return listAll[catalog.Place](ctx, c, PLACES_ENDPOINT, params.values())
}

// GetKPIs retrieves the headline numbers for a date range, optionally scoped to one place.
func (c *TourismApiClient) GetKPIs(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.KPI, error) {
	var response models.KPIResponse
	if err := c.get(ctx, KPIS_ENDPOINT, rangeValues(rng, poiID), &response); err != nil {
		return nil, err
	}
	return response.KPIs, nil
}

// GetTimeSeries retrieves daily series for a date range, optionally scoped to one place.
func (c *TourismApiClient) GetTimeSeries(ctx context.Context, rng models.DateRangeSelection, poiID string) ([]models.TimeSeries, error) {
	var response models.TimeSeriesResponse
	if err := c.get(ctx, TIME_SERIES_ENDPOINT, rangeValues(rng, poiID), &response); err != nil {
		return nil, err
	}
	return response.Series, nil
}

func (c *TourismApiClient) get(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	return c.fetch(ctx, endpoint, endpoint, query, out)
}

// fetch requests target and records its latency under the endpoint label.
func (c *TourismApiClient) fetch(ctx context.Context, endpoint, target string, query url.Values, out interface{}) error {
	start := time.Now()
	err := c.Request(ctx, http.MethodGet, target, query, nil, nil, out)
	metrics.UpstreamDurationMs.WithLabelValues(endpoint).Observe(float64(time.Since(start).Milliseconds()))
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	return nil
}

// listAll walks a paginated list endpoint, following "next" until it is empty.
// Pages may carry their rows under "results" or "items".
func listAll[T any](ctx context.Context, c *TourismApiClient, endpoint string, query url.Values) ([]T, error) {
	result := make([]T, 0)
	target := endpoint
	for page := 0; target != ""; page++ {
		if page >= maxPages {
			return nil, fmt.Errorf("GET %s: more than %d pages", endpoint, maxPages)
		}
		var response models.ListResponse
		if err := c.fetch(ctx, endpoint, target, query, &response); err != nil {
			return nil, err
		}
		rows, err := decodeRows[T](response.Rows())
		if err != nil {
			return nil, fmt.Errorf("GET %s: %w", endpoint, err)
		}
		result = append(result, rows...)

		// next links already carry the query string
		target, query = response.Next, nil
	}
	return result, nil
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Query != "" {
		q.Set("q", p.Query)
	}
	if p.District != "" {
		q.Set("district", p.District)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	return q
}

func rangeValues(rng models.DateRangeSelection, poiID string) url.Values {
	q := url.Values{}
	q.Set("date_from", rng.From)
	q.Set("date_to", rng.To)
	if poiID != "" {
		q.Set("poi_id", poiID)
	}
	return q
}

func decodeRows[T any](rows []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(rows))
	for i, raw := range rows {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode row %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}
