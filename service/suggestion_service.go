package services

import (
	"context"
	"log/slog"
	"strings"

	"tourism-server/config"
	"tourism-server/models"
	"tourism-server/service/autosuggest"
	"tourism-server/service/route"
)

// SuggestionService answers autosuggest queries from the cached catalogs and
// the route dataset.
type SuggestionService struct {
	catalogs *CatalogService
	routes   *route.Repository
	logger   *slog.Logger
}

func NewSuggestionService(catalogs *CatalogService, routes *route.Repository, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{
		catalogs: catalogs,
		routes:   routes,
		logger:   logger.With("component", "suggestion_service"),
	}
}

// Suggest ranks the suggestion pool against query. limit is clamped to the
// configured bounds. It has the shape of an autosuggest.FetchFunc.
func (ss *SuggestionService) Suggest(ctx context.Context, query string, limit int) ([]models.SuggestionItem, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SuggestionItem{}, nil
	}
	pool, err := ss.Pool(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	items := autosuggest.Rank(pool, query, config.ClampSuggestLimit(limit))
	if items == nil {
		items = []models.SuggestionItem{}
	}
	return items, nil
}

// Pool lists every suggestion candidate: districts, then categories, then
// entity titles, then places. Rank keeps this order within a match group.
func (ss *SuggestionService) Pool(ctx context.Context) ([]models.SuggestionItem, error) {
	vendors, err := ss.catalogs.ListVendors(ctx, models.FilterState{})
	if err != nil {
		return nil, err
	}
	stays, err := ss.catalogs.ListStays(ctx, models.FilterState{})
	if err != nil {
		return nil, err
	}
	events, err := ss.catalogs.ListEvents(ctx, models.FilterState{})
	if err != nil {
		return nil, err
	}
	places, err := ss.catalogs.ListPlaces(ctx)
	if err != nil {
		return nil, err
	}

	var districts, categories, titles, placeItems []models.SuggestionItem
	add := func(dst *[]models.SuggestionItem, label string, value interface{}, kind models.SuggestionKind) {
		if strings.TrimSpace(label) == "" {
			return
		}
		*dst = append(*dst, models.SuggestionItem{Label: label, Value: value, Kind: kind})
	}

	for _, v := range vendors {
		add(&districts, v.District, v.District, models.KindDistrict)
		add(&categories, v.Type, v.Type, models.KindCategory)
		add(&titles, v.Name, v.ID, models.KindTitle)
	}
	for _, s := range stays {
		add(&districts, s.District, s.District, models.KindDistrict)
		add(&categories, s.Type, s.Type, models.KindCategory)
		add(&titles, s.Name, s.ID, models.KindTitle)
	}
	for _, e := range events {
		add(&districts, e.District, e.District, models.KindDistrict)
		add(&categories, e.Category, e.Category, models.KindCategory)
		add(&titles, e.Title, e.ID, models.KindTitle)
	}
	for _, p := range places {
		add(&placeItems, p.Name, p.ID, models.KindPlace)
	}
	if ss.routes != nil {
		for _, p := range ss.routes.Places() {
			add(&placeItems, p, p, models.KindPlace)
		}
	}

	pool := make([]models.SuggestionItem, 0, len(districts)+len(categories)+len(titles)+len(placeItems))
	pool = append(pool, districts...)
	pool = append(pool, categories...)
	pool = append(pool, titles...)
	pool = append(pool, placeItems...)
	return pool, nil
}
