package handlers

import (
	"log/slog"
	"net/http"

	"tourism-server/models"
	services "tourism-server/service"
	"tourism-server/service/filter"
)

const (
	LAT_QUERY_ARG    = "lat"
	LON_QUERY_ARG    = "lon"
	RADIUS_QUERY_ARG = "radius"

	DEFAULT_NEARBY_RADIUS_KM = 5.0
	MAX_NEARBY_RADIUS_KM     = 100.0
)

// ListResponse wraps a filtered catalog listing.
type ListResponse[T any] struct {
	Count   int    `json:"count"`
	Results []T    `json:"results"`
	Query   string `json:"query,omitempty"`
}

type CatalogHandler struct {
	catalogService *services.CatalogService
	logger         *slog.Logger
}

func NewCatalogHandler(catalogService *services.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService, logger: logger.With("component", "catalog_handler")}
}

// GetVendors handles GET /v1/vendors with the filter query args.
func (h *CatalogHandler) GetVendors(w http.ResponseWriter, r *http.Request) {
	state := h.filterState(r)
	vendors, err := h.catalogService.ListVendors(r.Context(), state)
	if err != nil {
		internalError(w, h.logger, "Failed to load vendors", err)
		return
	}
	writeList(w, vendors, state)
}

// GetStays handles GET /v1/stays with the filter query args.
func (h *CatalogHandler) GetStays(w http.ResponseWriter, r *http.Request) {
	state := h.filterState(r)
	stays, err := h.catalogService.ListStays(r.Context(), state)
	if err != nil {
		internalError(w, h.logger, "Failed to load stays", err)
		return
	}
	writeList(w, stays, state)
}

// GetEvents handles GET /v1/events with the filter query args.
func (h *CatalogHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	state := h.filterState(r)
	events, err := h.catalogService.ListEvents(r.Context(), state)
	if err != nil {
		internalError(w, h.logger, "Failed to load events", err)
		return
	}
	writeList(w, events, state)
}

// GetPlaces handles GET /v1/places.
func (h *CatalogHandler) GetPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.catalogService.ListPlaces(r.Context())
	if err != nil {
		internalError(w, h.logger, "Failed to load places", err)
		return
	}
	writeList(w, places, models.FilterState{})
}

// GetVendorsNearby handles GET /v1/vendors/nearby?lat=&lon=&radius= (km).
func (h *CatalogHandler) GetVendorsNearby(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	lat, err := parseArgFloat64(vals, LAT_QUERY_ARG)
	if err != nil || lat < -90 || lat > 90 {
		badRequest(w, "Invalid argument "+LAT_QUERY_ARG)
		return
	}
	lon, err := parseArgFloat64(vals, LON_QUERY_ARG)
	if err != nil || lon < -180 || lon > 180 {
		badRequest(w, "Invalid argument "+LON_QUERY_ARG)
		return
	}
	radius := DEFAULT_NEARBY_RADIUS_KM
	if vals.Get(RADIUS_QUERY_ARG) != "" {
		radius, err = parseArgFloat64(vals, RADIUS_QUERY_ARG)
		if err != nil || radius <= 0 || radius > MAX_NEARBY_RADIUS_KM {
			badRequest(w, "Invalid argument "+RADIUS_QUERY_ARG)
			return
		}
	}

	vendors, err := h.catalogService.NearbyVendors(r.Context(), lat, lon, radius)
	if err != nil {
		internalError(w, h.logger, "Failed to load nearby vendors", err)
		return
	}
	writeList(w, vendors, models.FilterState{})
}

// filterState reads the filter query args. An unknown sort key is dropped so
// the listing keeps its natural order.
func (h *CatalogHandler) filterState(r *http.Request) models.FilterState {
	state := models.FilterStateFromValues(r.URL.Query())
	if !filter.ValidSortKey(state.Sort) {
		h.logger.Debug("ignoring unknown sort key", "sort", state.Sort)
		state = state.WithSort(filter.SortNone)
	}
	return state
}

func writeList[T any](w http.ResponseWriter, rows []T, state models.FilterState) {
	if rows == nil {
		rows = []T{}
	}
	writeJSON(w, http.StatusOK, ListResponse[T]{Count: len(rows), Results: rows, Query: state.ToValues().Encode()})
}
