package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourism-server/dao/redis"
	"tourism-server/db"
	"tourism-server/logger"
	"tourism-server/models"
	"tourism-server/service/daterange"
)

func newDashboardService(t *testing.T, api *fakeTourismAPI) (*DashboardService, *daterange.Resolver) {
	t.Helper()
	now := func() time.Time { return time.Date(2024, time.March, 10, 15, 0, 0, 0, time.UTC) }
	store := redis.NewRedisPresetDAO(db.NewMockRedisClient())
	resolver := daterange.NewResolver(now, time.UTC, store, logger.Discard())
	return NewDashboardService(resolver, api, logger.Discard()), resolver
}

func TestGetDashboard_OK(t *testing.T) {
	api := newFakeTourismAPI()
	api.kpis = []models.KPI{{Key: "visitors", Value: 10}}
	api.series = []models.TimeSeries{{Name: "visitors", Points: []models.TimeSeriesPoint{{Date: "2024-03-10", Value: 3}}}}
	svc, _ := newDashboardService(t, api)

	d := svc.GetDashboard(context.Background(), "7d", "", "", "p-001")

	assert.Equal(t, models.DashboardOK, d.Status)
	require.NotNil(t, d.Range)
	assert.Equal(t, models.DateRangeSelection{From: "2024-03-04", To: "2024-03-10", PresetKey: "7d"}, *d.Range)
	assert.Equal(t, api.kpis, d.KPIs)
	assert.Equal(t, api.series, d.Series)
	assert.Equal(t, "p-001", api.lastPOI)
}

func TestGetDashboard_InvalidRangeSkipsUpstream(t *testing.T) {
	api := newFakeTourismAPI()
	svc, _ := newDashboardService(t, api)

	d := svc.GetDashboard(context.Background(), "custom", "2024-05-10", "2024-05-01", "")

	assert.Equal(t, models.DashboardNoRange, d.Status)
	assert.Equal(t, NoRangeMessage, d.Message)
	assert.Nil(t, d.Range)
	assert.Empty(t, d.KPIs)
	assert.Zero(t, api.count("kpis"))
	assert.Zero(t, api.count("series"))
}

func TestGetDashboard_UpstreamFailure(t *testing.T) {
	api := newFakeTourismAPI()
	api.kpis = []models.KPI{{Key: "visitors", Value: 10}}
	api.errs["series"] = errors.New("timeout")
	svc, _ := newDashboardService(t, api)

	d := svc.GetDashboard(context.Background(), "30d", "", "", "")

	assert.Equal(t, models.DashboardError, d.Status)
	assert.Equal(t, DashboardErrorMessage, d.Message)
	assert.NotNil(t, d.KPIs)
	assert.Empty(t, d.KPIs)
	assert.Empty(t, d.Series)
}

func TestGetDashboard_UsesPersistedPreset(t *testing.T) {
	api := newFakeTourismAPI()
	svc, resolver := newDashboardService(t, api)
	require.NoError(t, resolver.SavePreset(context.Background(), "ytd"))

	d := svc.GetDashboard(context.Background(), "", "", "", "")

	require.Equal(t, models.DashboardOK, d.Status)
	assert.Equal(t, "2024-01-01", d.Range.From)
	assert.Equal(t, "ytd", d.Range.PresetKey)
}

func TestGetDashboard_DefaultsTo30Days(t *testing.T) {
	api := newFakeTourismAPI()
	svc, _ := newDashboardService(t, api)

	d := svc.GetDashboard(context.Background(), "", "", "", "")

	require.Equal(t, models.DashboardOK, d.Status)
	assert.Equal(t, "2024-02-10", d.Range.From)
	assert.Equal(t, "30d", d.Range.PresetKey)
}
