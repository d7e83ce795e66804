package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"tourism-server/metrics"
	"tourism-server/server/handlers"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Route     *handlers.RouteHandler
	Catalog   *handlers.CatalogHandler
	Suggest   *handlers.SuggestHandler
	SuggestWS *handlers.SuggestWSHandler
	DateRange *handlers.DateRangeHandler
	Dashboard *handlers.DashboardHandler
	Health    *handlers.HealthHandler
}

type Router struct {
	handlers Handlers
	router   *mux.Router
}

// NewRouter creates a router with the app’s routes.
func NewRouter(h Handlers, router *mux.Router) *Router {
	return &Router{
		handlers: h,
		router:   router,
	}
}

func (r *Router) RegisterRoutes() {
	h := r.handlers

	r.router.HandleFunc("/ping", h.Health.Ping).Methods(http.MethodGet)
	r.router.HandleFunc("/healthz", h.Health.Healthz).Methods(http.MethodGet)
	r.router.HandleFunc("/readyz", h.Health.Readyz).Methods(http.MethodGet)
	r.router.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// expects ?from={place}&to={place}
	r.router.HandleFunc("/v1/routes/classify", h.Route.Classify).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/routes/lookup", h.Route.Lookup).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/routes/map", h.Route.Map).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/routes/places", h.Route.Places).Methods(http.MethodGet)

	// expects the filter args: q, district, type, price_bucket, min_price,
	// max_price, min_rating, amenities, sort
	r.router.HandleFunc("/v1/vendors", h.Catalog.GetVendors).Methods(http.MethodGet)
	// expects ?lat={latitude(float)}&lon={longitude(float)}&radius={km(float)}
	r.router.HandleFunc("/v1/vendors/nearby", h.Catalog.GetVendorsNearby).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/stays", h.Catalog.GetStays).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/events", h.Catalog.GetEvents).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/places", h.Catalog.GetPlaces).Methods(http.MethodGet)

	r.router.HandleFunc("/v1/suggest", h.Suggest.Suggest).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/suggest/ws", h.SuggestWS.Serve).Methods(http.MethodGet)

	r.router.HandleFunc("/v1/daterange", h.DateRange.Resolve).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/daterange/preset", h.DateRange.GetPreset).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/daterange/preset", h.DateRange.PutPreset).Methods(http.MethodPut)

	r.router.HandleFunc("/v1/dashboard", h.Dashboard.GetDashboard).Methods(http.MethodGet)
	r.router.HandleFunc("/v1/dashboard/chart", h.Dashboard.GetChart).Methods(http.MethodGet)
}
