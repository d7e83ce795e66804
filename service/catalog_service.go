package services

import (
	"context"
	"errors"
	"log/slog"

	"tourism-server/dao/redis"
	"tourism-server/models"
	"tourism-server/models/catalog"
	"tourism-server/service/filter"
)

// CatalogService serves filtered, sorted views of the cached catalogs.
type CatalogService struct {
	catalogDao *redis.RedisCatalogDAO
	logger     *slog.Logger
}

// NewCatalogService constructs a new CatalogService with Redis dependency injection.
func NewCatalogService(catalogDao *redis.RedisCatalogDAO, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		catalogDao: catalogDao,
		logger:     logger.With("component", "catalog_service"),
	}
}

func (cs *CatalogService) ListVendors(ctx context.Context, state models.FilterState) ([]catalog.Vendor, error) {
	rows, err := cs.catalogDao.GetVendors(ctx)
	rows, err = orEmpty(cs, catalog.KindVendors, rows, err)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(rows, state, filter.VendorAccessors)
	return filter.Sort(out, state.Sort, filter.VendorSorters), nil
}

func (cs *CatalogService) ListStays(ctx context.Context, state models.FilterState) ([]catalog.Stay, error) {
	rows, err := cs.catalogDao.GetStays(ctx)
	rows, err = orEmpty(cs, catalog.KindStays, rows, err)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(rows, state, filter.StayAccessors)
	return filter.Sort(out, state.Sort, filter.StaySorters), nil
}

func (cs *CatalogService) ListEvents(ctx context.Context, state models.FilterState) ([]catalog.Event, error) {
	rows, err := cs.catalogDao.GetEvents(ctx)
	rows, err = orEmpty(cs, catalog.KindEvents, rows, err)
	if err != nil {
		return nil, err
	}
	out := filter.Apply(rows, state, filter.EventAccessors)
	return filter.Sort(out, state.Sort, filter.EventSorters), nil
}

func (cs *CatalogService) ListPlaces(ctx context.Context) ([]catalog.Place, error) {
	rows, err := cs.catalogDao.GetPlaces(ctx)
	return orEmpty(cs, catalog.KindPlaces, rows, err)
}

// NearbyVendors returns cached vendors within radiusKm, nearest first.
func (cs *CatalogService) NearbyVendors(ctx context.Context, lat, lon, radiusKm float64) ([]catalog.Vendor, error) {
	return cs.catalogDao.GetNearbyVendors(ctx, lat, lon, radiusKm)
}

// Ready reports whether every catalog has been cached at least once.
func (cs *CatalogService) Ready(ctx context.Context) (bool, error) {
	kinds, err := cs.catalogDao.CachedKinds(ctx)
	if err != nil {
		return false, err
	}
	have := make(map[catalog.Kind]bool, len(kinds))
	for _, k := range kinds {
		have[k] = true
	}
	for _, k := range catalog.Kinds {
		if !have[k] {
			return false, nil
		}
	}
	return true, nil
}

// orEmpty turns a cache miss into an empty result.
func orEmpty[T any](cs *CatalogService, kind catalog.Kind, rows []T, err error) ([]T, error) {
	if errors.Is(err, redis.ErrCatalogNotCached) {
		cs.logger.Warn("catalog requested before first refresh", "kind", kind)
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	return rows, nil
}
