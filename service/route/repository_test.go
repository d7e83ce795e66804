package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/logger"
	"tourism-server/models"
)

func ptr(f float64) *float64 { return &f }

func newTestRepository() *Repository {
	provider := "Langkawi Ferry Line"
	records := []models.RouteRecord{
		{
			From: "Kuala Perlis",
			To:   "Langkawi",
			Type: models.RouteComingToHome,
			Options: []models.TransportOption{
				{Mode: models.ModeFerry, DurationMin: ptr(75), PriceMin: ptr(18), PriceMax: ptr(23), Provider: &provider},
			},
			Polyline: []models.LatLon{{6.40, 100.13}, {6.35, 99.95}, {6.31, 99.85}},
		},
		{
			From:    "Alor Setar",
			To:      "Sungai Petani",
			Type:    models.RouteIntraHome,
			Options: []models.TransportOption{{Mode: models.ModeTrain, DurationMin: ptr(40)}},
		},
	}
	return NewRepository(NewClassifier(home), records, logger.Discard())
}

func TestRepository_DirectMatchIsCaseInsensitive(t *testing.T) {
	repo := newTestRepository()

	rec := repo.Lookup("kuala perlis", "LANGKAWI")

	assert.Equal(t, "Kuala Perlis", rec.From)
	assert.Equal(t, models.RouteComingToHome, rec.Type)
	require.Len(t, rec.Options, 1)
	assert.Equal(t, models.ModeFerry, rec.Options[0].Mode)
}

func TestRepository_ReverseFallback(t *testing.T) {
	repo := newTestRepository()

	rec := repo.Lookup("Langkawi", "Kuala Perlis")

	assert.Equal(t, "Langkawi", rec.From)
	assert.Equal(t, "Kuala Perlis", rec.To)
	assert.Equal(t, models.RouteLeavingHome, rec.Type, "type is recomputed, not copied")
	assert.Equal(t, []models.LatLon{{6.31, 99.85}, {6.35, 99.95}, {6.40, 100.13}}, rec.Polyline)
	require.Len(t, rec.Options, 1)
}

func TestRepository_ReverseDoesNotMutateDataset(t *testing.T) {
	repo := newTestRepository()

	_ = repo.Lookup("Langkawi", "Kuala Perlis")
	direct := repo.Lookup("Kuala Perlis", "Langkawi")

	assert.Equal(t, models.LatLon{6.40, 100.13}, direct.Polyline[0])
}

func TestRepository_ReverseWithoutPolyline(t *testing.T) {
	repo := newTestRepository()

	rec := repo.Lookup("Sungai Petani", "Alor Setar")

	assert.Nil(t, rec.Polyline)
	assert.Equal(t, models.RouteIntraHome, rec.Type)
}

func TestRepository_SyntheticRecord(t *testing.T) {
	repo := newTestRepository()

	rec := repo.Lookup("Ipoh", "Langkawi")

	assert.Equal(t, "Ipoh", rec.From)
	assert.Equal(t, "Langkawi", rec.To)
	assert.Equal(t, models.RouteComingToHome, rec.Type)
	assert.NotNil(t, rec.Options)
	assert.Empty(t, rec.Options)
	assert.Nil(t, rec.Polyline)
}

func TestRepository_NeverPanics(t *testing.T) {
	repo := newTestRepository()

	pairs := [][2]string{{"", ""}, {"", "Langkawi"}, {"Langkawi", ""}, {"\x00", "日本"}}
	for _, p := range pairs {
		assert.NotPanics(t, func() {
			rec := repo.Lookup(p[0], p[1])
			assert.NotNil(t, rec.Options)
		})
	}
}

func TestRepository_DuplicatesKeepFirst(t *testing.T) {
	records := []models.RouteRecord{
		{From: "A", To: "B", Options: []models.TransportOption{{Mode: models.ModeBus}}},
		{From: "a", To: "b", Options: []models.TransportOption{{Mode: models.ModeCar}}},
	}
	repo := NewRepository(NewClassifier(nil), records, logger.Discard())

	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, models.ModeBus, repo.Lookup("A", "B").Options[0].Mode)
}

func TestRepository_Places(t *testing.T) {
	repo := newTestRepository()

	assert.Equal(t, []models.Place{"Alor Setar", "Kuala Perlis", "Langkawi", "Sungai Petani"}, repo.Places())
}
