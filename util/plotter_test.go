package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/models"
)

func TestRenderRouteMap(t *testing.T) {
	var buf bytes.Buffer
	rec := models.RouteRecord{
		From:     "Alor Setar",
		To:       "Langkawi",
		Type:     models.RouteIntraHome,
		Polyline: []models.LatLon{{6.1248, 100.3678}, {6.03, 100.2}, {6.3167, 99.85}},
	}

	require.NoError(t, RenderRouteMap(&buf, rec))

	html := buf.String()
	assert.Contains(t, html, "<html")
	assert.Contains(t, html, "Alor Setar")
	assert.Contains(t, html, "Langkawi")
	assert.Contains(t, html, "intra_home")
}

func TestRenderRouteMap_NoGeometry(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderRouteMap(&buf, models.RouteRecord{From: "Kulim", To: "Baling"}))

	assert.Contains(t, buf.String(), "Kulim")
}

func TestRenderTimeSeries(t *testing.T) {
	var buf bytes.Buffer
	series := []models.TimeSeries{
		{Name: "visitors", Points: []models.TimeSeriesPoint{{Date: "2024-03-09", Value: 2100}, {Date: "2024-03-10", Value: 2400}}},
		{Name: "occupancy_rate", Points: []models.TimeSeriesPoint{{Date: "2024-03-10", Value: 0.7}}},
	}

	require.NoError(t, RenderTimeSeries(&buf, "Visitors", series))

	html := buf.String()
	assert.Contains(t, html, "2024-03-09")
	assert.Contains(t, html, "occupancy_rate")
}
