package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strings"

	"tourism-server/models"
	"tourism-server/service/route"
	"tourism-server/util"
)

const (
	FROM_QUERY_ARG = "from"
	TO_QUERY_ARG   = "to"
)

// ClassifyResponse is returned by GET /v1/routes/classify.
type ClassifyResponse struct {
	From models.Place         `json:"from"`
	To   models.Place         `json:"to"`
	Type models.RouteCategory `json:"type"`
}

type RouteHandler struct {
	classifier *route.Classifier
	repo       *route.Repository
	logger     *slog.Logger
}

func NewRouteHandler(classifier *route.Classifier, repo *route.Repository, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{classifier: classifier, repo: repo, logger: logger.With("component", "route_handler")}
}

// Classify handles GET /v1/routes/classify?from=&to=
func (h *RouteHandler) Classify(w http.ResponseWriter, r *http.Request) {
	from, to := r.URL.Query().Get(FROM_QUERY_ARG), r.URL.Query().Get(TO_QUERY_ARG)
	writeJSON(w, http.StatusOK, ClassifyResponse{From: from, To: to, Type: h.classifier.Classify(from, to)})
}

// Lookup handles GET /v1/routes/lookup?from=&to=. Both places are required;
// otherwise the caller gets "no_result", which is distinct from a known
// pair with no transport options.
func (h *RouteHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.places(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.repo.Lookup(from, to))
}

// Map handles GET /v1/routes/map?from=&to= and returns an HTML chart.
func (h *RouteHandler) Map(w http.ResponseWriter, r *http.Request) {
	from, to, ok := h.places(w, r)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := util.RenderRouteMap(&buf, h.repo.Lookup(from, to)); err != nil {
		internalError(w, h.logger, "Failed to render route map", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// Places handles GET /v1/routes/places.
func (h *RouteHandler) Places(w http.ResponseWriter, r *http.Request) {
	places := h.repo.Places()
	if places == nil {
		places = []models.Place{}
	}
	writeJSON(w, http.StatusOK, places)
}

func (h *RouteHandler) places(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	from := strings.TrimSpace(r.URL.Query().Get(FROM_QUERY_ARG))
	to := strings.TrimSpace(r.URL.Query().Get(TO_QUERY_ARG))
	if from == "" || to == "" {
		writeStatus(w, http.StatusBadRequest, "no_result", "Both from and to are required")
		return "", "", false
	}
	return from, to, true
}
