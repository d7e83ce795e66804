package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"tourism-server/api/tourism"
	"tourism-server/models"
	"tourism-server/service/daterange"
)

const (
	NoRangeMessage        = "Select a valid date range"
	DashboardErrorMessage = "Failed to load dashboard"
)

// DashboardService assembles KPI and time-series data for a date range.
type DashboardService struct {
	resolver   *daterange.Resolver
	tourismAPI tourism.TourismAPI
	logger     *slog.Logger
}

func NewDashboardService(resolver *daterange.Resolver, tourismAPI tourism.TourismAPI, logger *slog.Logger) *DashboardService {
	return &DashboardService{
		resolver:   resolver,
		tourismAPI: tourismAPI,
		logger:     logger.With("component", "dashboard_service"),
	}
}

// GetDashboard resolves the range and loads the dashboard data. An empty
// preset falls back to the persisted one. Upstream is not called unless the
// range is valid; upstream failures produce an "error" payload, never a Go error.
func (ds *DashboardService) GetDashboard(ctx context.Context, preset, from, to, poiID string) models.Dashboard {
	if strings.TrimSpace(preset) == "" {
		preset = ds.resolver.LoadPreset(ctx)
	}

	rng, err := ds.resolver.Resolve(preset, from, to)
	if err != nil {
		if !errors.Is(err, daterange.ErrInvalidRange) && !errors.Is(err, daterange.ErrUnknownPreset) {
			ds.logger.Warn("unexpected date range error", "error", err)
		}
		return models.Dashboard{
			Status:  models.DashboardNoRange,
			Message: NoRangeMessage,
			KPIs:    []models.KPI{},
			Series:  []models.TimeSeries{},
		}
	}

	var kpis []models.KPI
	var series []models.TimeSeries
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		kpis, err = ds.tourismAPI.GetKPIs(gctx, rng, poiID)
		return err
	})
	g.Go(func() error {
		var err error
		series, err = ds.tourismAPI.GetTimeSeries(gctx, rng, poiID)
		return err
	})
	if err := g.Wait(); err != nil {
		ds.logger.Error("failed to load dashboard data", "from", rng.From, "to", rng.To, "poi_id", poiID, "error", err)
		return models.Dashboard{
			Status:  models.DashboardError,
			Message: DashboardErrorMessage,
			Range:   &rng,
			KPIs:    []models.KPI{},
			Series:  []models.TimeSeries{},
		}
	}

	if kpis == nil {
		kpis = []models.KPI{}
	}
	if series == nil {
		series = []models.TimeSeries{}
	}
	return models.Dashboard{
		Status: models.DashboardOK,
		Range:  &rng,
		KPIs:   kpis,
		Series: series,
	}
}
