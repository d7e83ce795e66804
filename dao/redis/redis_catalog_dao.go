package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"tourism-server/config"
	"tourism-server/db"
	"tourism-server/models/catalog"
)

// ErrCatalogNotCached is returned when a catalog has never been refreshed.
var ErrCatalogNotCached = errors.New("catalog not cached")

// RedisCatalogDAO caches upstream catalogs in Redis. Vendors are also kept
// in a geo index for radius queries.
type RedisCatalogDAO struct {
	client db.RedisClient
	logger *slog.Logger
}

// NewRedisCatalogDAO initializes a RedisCatalogDAO with the Redis client.
func NewRedisCatalogDAO(client db.RedisClient, logger *slog.Logger) *RedisCatalogDAO {
	return &RedisCatalogDAO{client: client, logger: logger.With("component", "catalog_dao")}
}

// SetVendors replaces the vendor catalog and rebuilds the geo index.
func (dao *RedisCatalogDAO) SetVendors(ctx context.Context, vendors []catalog.Vendor) error {
	if err := setCatalog(ctx, dao.client, catalog.KindVendors, vendors); err != nil {
		return err
	}

	stale, err := dao.client.Keys(ctx, fmt.Sprintf(config.VENDORS_GEO_MEMBER_FORMAT_V1, "*"))
	if err != nil {
		return fmt.Errorf("[RedisCatalogDAO] failed to list vendor geo members: %w", err)
	}
	if err := dao.client.Del(ctx, append(stale, config.VENDORS_GEO_KEY_V1)...); err != nil {
		return fmt.Errorf("[RedisCatalogDAO] failed to clear vendor geo index: %w", err)
	}

	indexed := 0
	for _, v := range vendors {
		if v.Lat == 0 && v.Lng == 0 {
			continue
		}
		member := fmt.Sprintf(config.VENDORS_GEO_MEMBER_FORMAT_V1, v.ID)
		if err := dao.client.AddLocationWithJSON(ctx, config.VENDORS_GEO_KEY_V1, member, v.Lat, v.Lng, v); err != nil {
			return fmt.Errorf("[RedisCatalogDAO] failed to index vendor %s: %w", v.ID, err)
		}
		indexed++
	}
	dao.logger.Debug("vendor geo index rebuilt", "indexed", indexed, "total", len(vendors))
	return nil
}

func (dao *RedisCatalogDAO) SetStays(ctx context.Context, stays []catalog.Stay) error {
	return setCatalog(ctx, dao.client, catalog.KindStays, stays)
}

func (dao *RedisCatalogDAO) SetEvents(ctx context.Context, events []catalog.Event) error {
	return setCatalog(ctx, dao.client, catalog.KindEvents, events)
}

func (dao *RedisCatalogDAO) SetPlaces(ctx context.Context, places []catalog.Place) error {
	return setCatalog(ctx, dao.client, catalog.KindPlaces, places)
}

func (dao *RedisCatalogDAO) GetVendors(ctx context.Context) ([]catalog.Vendor, error) {
	return getCatalog[catalog.Vendor](ctx, dao.client, catalog.KindVendors)
}

func (dao *RedisCatalogDAO) GetStays(ctx context.Context) ([]catalog.Stay, error) {
	return getCatalog[catalog.Stay](ctx, dao.client, catalog.KindStays)
}

func (dao *RedisCatalogDAO) GetEvents(ctx context.Context) ([]catalog.Event, error) {
	return getCatalog[catalog.Event](ctx, dao.client, catalog.KindEvents)
}

func (dao *RedisCatalogDAO) GetPlaces(ctx context.Context) ([]catalog.Place, error) {
	return getCatalog[catalog.Place](ctx, dao.client, catalog.KindPlaces)
}

// GetNearbyVendors retrieves vendors within radiusKm of (lat, lon), nearest first.
func (dao *RedisCatalogDAO) GetNearbyVendors(ctx context.Context, lat, lon, radiusKm float64) ([]catalog.Vendor, error) {
	vendorsJSON, err := dao.client.GetLocationsWithinRadius(ctx, config.VENDORS_GEO_KEY_V1, lat, lon, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("[RedisCatalogDAO] failed to get nearby vendors: %w", err)
	}

	vendors := make([]catalog.Vendor, len(vendorsJSON))
	for i, vendorJSON := range vendorsJSON {
		if err := json.Unmarshal([]byte(vendorJSON), &vendors[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal vendor JSON: %w", err)
		}
	}
	return vendors, nil
}

// CachedKinds lists the catalogs currently present in the cache.
func (dao *RedisCatalogDAO) CachedKinds(ctx context.Context) ([]catalog.Kind, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(config.CATALOG_KEY_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("[RedisCatalogDAO] failed to list catalog keys: %w", err)
	}
	prefix := fmt.Sprintf(config.CATALOG_KEY_FORMAT_V1, "")
	kinds := make([]catalog.Kind, 0, len(keys))
	for _, k := range keys {
		kinds = append(kinds, catalog.Kind(k[len(prefix):]))
	}
	return kinds, nil
}

func catalogKey(kind catalog.Kind) string {
	return fmt.Sprintf(config.CATALOG_KEY_FORMAT_V1, kind)
}

func setCatalog[T any](ctx context.Context, client db.RedisClient, kind catalog.Kind, rows []T) error {
	if rows == nil {
		rows = []T{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("failed to marshal %s catalog: %w", kind, err)
	}
	if err := client.Set(ctx, catalogKey(kind), string(data)); err != nil {
		return fmt.Errorf("failed to set %s catalog in redis: %w", kind, err)
	}
	return nil
}

func getCatalog[T any](ctx context.Context, client db.RedisClient, kind catalog.Kind) ([]T, error) {
	str, err := client.Get(ctx, catalogKey(kind))
	if errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrCatalogNotCached, kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s catalog from redis: %w", kind, err)
	}
	var rows []T
	if err := json.Unmarshal([]byte(str), &rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s catalog JSON: %w", kind, err)
	}
	return rows, nil
}
