package tourism

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/api"
	"tourism-server/models"
)

func TestListVendors_FollowsNextAcrossEnvelopes(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("page") {
		case "":
			assert.Equal(t, "/vendors/", r.URL.Path)
			assert.Equal(t, "Langkawi", r.URL.Query().Get("district"))
			assert.Equal(t, "nasi", r.URL.Query().Get("q"))
			fmt.Fprintf(w, `{"results":[{"id":"v1","name":"A"}],"next":"%s/vendors/?page=2"}`, srv.URL)
		case "2":
			fmt.Fprint(w, `{"items":[{"id":"v2","name":"B"},{"id":"v3","name":"C"}],"next":""}`)
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
		}
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))

	vendors, err := client.ListVendors(context.Background(), ListParams{Query: "nasi", District: "Langkawi"})

	require.NoError(t, err)
	require.Len(t, vendors, 3)
	assert.Equal(t, "v1", vendors[0].ID)
	assert.Equal(t, "C", vendors[2].Name)
}

func TestListEvents_EmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))

	events, err := client.ListEvents(context.Background(), ListParams{})

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestListStays_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))

	stays, err := client.ListStays(context.Background(), ListParams{})

	assert.Nil(t, stays)
	assert.True(t, errors.Is(err, api.ErrUnexpectedStatus))
	assert.Contains(t, err.Error(), STAYS_ENDPOINT)
}

func TestListPlaces_StopsOnEndlessPagination(t *testing.T) {
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"results":[{"id":"p"}],"next":"%s/places/?loop=1"}`, srv.URL)
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))

	_, err := client.ListPlaces(context.Background(), ListParams{})

	assert.ErrorContains(t, err, "more than")
}

func TestGetKPIs_SendsRangeAndPOI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, KPIS_ENDPOINT, r.URL.Path)
		assert.Equal(t, "2024-03-04", r.URL.Query().Get("date_from"))
		assert.Equal(t, "2024-03-10", r.URL.Query().Get("date_to"))
		assert.Equal(t, "p-001", r.URL.Query().Get("poi_id"))
		fmt.Fprint(w, `{"kpis":[{"key":"visitors","label":"Visitors","value":10,"delta":0.5}]}`)
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))
	rng := models.DateRangeSelection{From: "2024-03-04", To: "2024-03-10", PresetKey: "7d"}

	kpis, err := client.GetKPIs(context.Background(), rng, "p-001")

	require.NoError(t, err)
	assert.Equal(t, []models.KPI{{Key: "visitors", Label: "Visitors", Value: 10, Delta: 0.5}}, kpis)
}

func TestGetTimeSeries_OmitsEmptyPOI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("poi_id"))
		fmt.Fprint(w, `{"series":[{"name":"visitors","points":[{"date":"2024-03-04","value":3}]}]}`)
	}))
	defer srv.Close()

	client := NewTourismApiClient(api.NewHTTPClient(srv.URL, time.Second))

	series, err := client.GetTimeSeries(context.Background(), models.DateRangeSelection{From: "2024-03-04", To: "2024-03-04"}, "")

	require.NoError(t, err)
	require.Len(t, series, 1)
	assert.Equal(t, 3.0, series[0].Points[0].Value)
}
