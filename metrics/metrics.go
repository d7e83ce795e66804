package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_http_requests_total",
		Help: "Total HTTP requests by route template and status code",
	}, []string{"route", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tourism_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route"})
	SuggestFetchTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tourism_suggest_fetch_total",
		Help: "Suggestion fetches issued after the debounce window",
	})
	SuggestAbortedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tourism_suggest_aborted_total",
		Help: "Suggestion fetches cancelled or discarded because a newer query superseded them",
	})
	SuggestFailTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tourism_suggest_fail_total",
		Help: "Suggestion fetches that failed with a non-abort error",
	})
	CatalogRefreshTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "tourism_catalog_refresh_total",
		Help: "Catalog refresh outcomes by kind",
	}, []string{"kind", "outcome"})
	CatalogSize = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "tourism_catalog_size",
		Help: "Number of cached entities by kind",
	}, []string{"kind"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "tourism_upstream_duration_ms",
		Help:    "Upstream tourism API call duration in milliseconds",
		Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"endpoint"})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(SuggestFetchTotal)
	prometheus.MustRegister(SuggestAbortedTotal)
	prometheus.MustRegister(SuggestFailTotal)
	prometheus.MustRegister(CatalogRefreshTotal)
	prometheus.MustRegister(CatalogSize)
	prometheus.MustRegister(UpstreamDurationMs)
}

// Handler exposes the registered metrics for scraping.
func Handler() http.Handler { return promhttp.Handler() }
