package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"tourism-server/api/tourism"
	"tourism-server/dao/redis"
	"tourism-server/metrics"
	"tourism-server/models/catalog"
)

// CatalogRefresherService periodically copies the upstream catalogs into the cache.
type CatalogRefresherService struct {
	catalogDao *redis.RedisCatalogDAO
	tourismAPI tourism.TourismAPI
	logger     *slog.Logger
}

// NewCatalogRefresherService constructs a new Refresher with dependencies.
func NewCatalogRefresherService(
	catalogDao *redis.RedisCatalogDAO,
	tourismAPI tourism.TourismAPI,
	logger *slog.Logger,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		catalogDao: catalogDao,
		tourismAPI: tourismAPI,
		logger:     logger.With("component", "catalog_refresher"),
	}
}

// StartPeriodicJob launches the background loop at the given interval. It
// stops when ctx is cancelled.
func (cr *CatalogRefresherService) StartPeriodicJob(ctx context.Context, interval time.Duration) {
	go cr.startPeriodicJob(ctx, interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			cr.logger.Info("periodic catalog refresh stopped")
			return
		case <-ticker.C:
			cr.logger.Info("running periodic catalog refresh")
			if err := cr.RefreshCatalogs(ctx); err != nil {
				cr.logger.Warn("catalog refresh finished with errors", "error", err)
			}
		}
	}
}

// RefreshCatalogs fetches every catalog in parallel. A kind that fails keeps
// its previously cached rows; the first failure is returned after all kinds
// have finished.
func (cr *CatalogRefresherService) RefreshCatalogs(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return refreshKind(ctx, cr, catalog.KindVendors, cr.tourismAPI.ListVendors,
			func(v catalog.Vendor) string { return v.ID }, cr.catalogDao.SetVendors)
	})
	g.Go(func() error {
		return refreshKind(ctx, cr, catalog.KindStays, cr.tourismAPI.ListStays,
			func(s catalog.Stay) string { return s.ID }, cr.catalogDao.SetStays)
	})
	g.Go(func() error {
		return refreshKind(ctx, cr, catalog.KindEvents, cr.tourismAPI.ListEvents,
			func(e catalog.Event) string { return e.ID }, cr.catalogDao.SetEvents)
	})
	g.Go(func() error {
		return refreshKind(ctx, cr, catalog.KindPlaces, cr.tourismAPI.ListPlaces,
			func(p catalog.Place) string { return p.ID }, cr.catalogDao.SetPlaces)
	})

	return g.Wait()
}

func refreshKind[T any](
	ctx context.Context,
	cr *CatalogRefresherService,
	kind catalog.Kind,
	list func(context.Context, tourism.ListParams) ([]T, error),
	id func(T) string,
	store func(context.Context, []T) error,
) error {
	start := time.Now()
	rows, err := list(ctx, tourism.ListParams{})
	if err != nil {
		metrics.CatalogRefreshTotal.WithLabelValues(string(kind), "fetch_error").Inc()
		cr.logger.Error("failed to fetch catalog, keeping cached copy", "kind", kind, "error", err)
		return fmt.Errorf("refresh %s: %w", kind, err)
	}

	rows = dedupeByID(rows, id, func(dup string) {
		cr.logger.Debug("skipping duplicate catalog row", "kind", kind, "id", dup)
	})

	if err := store(ctx, rows); err != nil {
		metrics.CatalogRefreshTotal.WithLabelValues(string(kind), "store_error").Inc()
		cr.logger.Error("failed to cache catalog", "kind", kind, "error", err)
		return fmt.Errorf("refresh %s: %w", kind, err)
	}

	metrics.CatalogRefreshTotal.WithLabelValues(string(kind), "ok").Inc()
	metrics.CatalogSize.WithLabelValues(string(kind)).Set(float64(len(rows)))
	cr.logger.Info("catalog refreshed", "kind", kind, "rows", len(rows), "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// dedupeByID keeps the first row for every ID. Rows without an ID are kept.
func dedupeByID[T any](rows []T, id func(T) string, onDup func(string)) []T {
	seen := make(map[string]struct{}, len(rows))
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		key := id(row)
		if key != "" {
			if _, dup := seen[key]; dup {
				onDup(key)
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, row)
	}
	return out
}
