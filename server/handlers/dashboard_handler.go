package handlers

import (
	"bytes"
	"log/slog"
	"net/http"

	"tourism-server/models"
	services "tourism-server/service"
	"tourism-server/util"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
	logger           *slog.Logger
}

func NewDashboardHandler(dashboardService *services.DashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, logger: logger.With("component", "dashboard_handler")}
}

// GetDashboard handles GET /v1/dashboard?preset=&from=&to=&poi_id=
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	d := h.load(r)
	writeJSON(w, dashboardStatusCode(d), d)
}

// GetChart handles GET /v1/dashboard/chart and renders the time series as
// HTML. Without data it answers like GetDashboard.
func (h *DashboardHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	d := h.load(r)
	if d.Status != models.DashboardOK {
		writeJSON(w, dashboardStatusCode(d), d)
		return
	}

	var buf bytes.Buffer
	title := "Tourism " + d.Range.From + " to " + d.Range.To
	if err := util.RenderTimeSeries(&buf, title, d.Series); err != nil {
		internalError(w, h.logger, "Failed to render chart", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *DashboardHandler) load(r *http.Request) models.Dashboard {
	vals := r.URL.Query()
	return h.dashboardService.GetDashboard(r.Context(),
		vals.Get(PRESET_QUERY_ARG), vals.Get(FROM_QUERY_ARG), vals.Get(TO_QUERY_ARG), vals.Get(POI_QUERY_ARG))
}

func dashboardStatusCode(d models.Dashboard) int {
	if d.Status == models.DashboardError {
		return http.StatusBadGateway
	}
	return http.StatusOK
}
