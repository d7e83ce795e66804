package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/config"
	"tourism-server/models"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadRoutesFromJSON(t *testing.T) {
	content := `[
		{"from":"Alor Setar","to":"Langkawi","type":"intra_home",
		 "options":[{"mode":"Ferry","durationMin":105,"priceMin":18,"priceMax":null,"provider":"Langkawi Ferry Line"}],
		 "polyline":[[6.12,100.37],[6.31,99.85]]}
	]`
	path := createTempFile(t, content)

	routes, err := ReadRoutesFromJSON(path)

	require.NoError(t, err)
	require.Len(t, routes, 1)
	r := routes[0]
	assert.Equal(t, models.RouteIntraHome, r.Type)
	require.Len(t, r.Options, 1)
	assert.Equal(t, models.ModeFerry, r.Options[0].Mode)
	assert.Equal(t, 105.0, *r.Options[0].DurationMin)
	assert.Nil(t, r.Options[0].PriceMax)
	assert.Equal(t, models.LatLon{6.31, 99.85}, r.Polyline[1])
}

func TestReadJSON_Errors(t *testing.T) {
	_, err := ReadVendorsFromJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read file")

	_, err = ReadVendorsFromJSON(createTempFile(t, `{"invalid_json`))
	assert.ErrorContains(t, err, "failed to unmarshal")
}

func TestBundledFixturesLoad(t *testing.T) {
	t.Setenv("PROJECT_ROOT", filepath.Join("..", ""))

	routes, err := ReadRoutesFromJSON(config.GetResourcePath(config.ROUTES_RESOURCE))
	require.NoError(t, err)
	assert.NotEmpty(t, routes)

	vendors, err := ReadVendorsFromJSON(config.GetResourcePath(config.VENDORS_RESOURCE))
	require.NoError(t, err)
	assert.NotEmpty(t, vendors)

	stays, err := ReadStaysFromJSON(config.GetResourcePath(config.STAYS_RESOURCE))
	require.NoError(t, err)
	assert.NotEmpty(t, stays)

	events, err := ReadEventsFromJSON(config.GetResourcePath(config.EVENTS_RESOURCE))
	require.NoError(t, err)
	assert.NotEmpty(t, events)

	places, err := ReadPlacesFromJSON(config.GetResourcePath(config.PLACES_RESOURCE))
	require.NoError(t, err)
	assert.NotEmpty(t, places)
}
