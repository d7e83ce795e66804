package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"tourism-server/models"
	"tourism-server/service/daterange"
)

const (
	PRESET_QUERY_ARG = "preset"
	POI_QUERY_ARG    = "poi_id"
)

// RangeResponse is returned by GET /v1/daterange.
type RangeResponse struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message,omitempty"`
	Range   *models.DateRangeSelection `json:"range,omitempty"`
}

// PresetBody is read and written by /v1/daterange/preset.
type PresetBody struct {
	Preset  string   `json:"preset"`
	Presets []string `json:"presets,omitempty"`
}

type DateRangeHandler struct {
	resolver *daterange.Resolver
	logger   *slog.Logger
}

func NewDateRangeHandler(resolver *daterange.Resolver, logger *slog.Logger) *DateRangeHandler {
	return &DateRangeHandler{resolver: resolver, logger: logger.With("component", "daterange_handler")}
}

// Resolve handles GET /v1/daterange?preset=&from=&to=. Without a preset the
// persisted one is used. An invalid custom range is a prompt, not an error.
func (h *DateRangeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	vals := r.URL.Query()
	preset := strings.TrimSpace(vals.Get(PRESET_QUERY_ARG))
	if preset == "" {
		preset = h.resolver.LoadPreset(r.Context())
	}

	rng, err := h.resolver.Resolve(preset, vals.Get(FROM_QUERY_ARG), vals.Get(TO_QUERY_ARG))
	switch {
	case errors.Is(err, daterange.ErrUnknownPreset):
		badRequest(w, "Unknown preset "+preset)
	case errors.Is(err, daterange.ErrInvalidRange):
		writeJSON(w, http.StatusOK, RangeResponse{Status: models.DashboardNoRange, Message: "Select a valid date range"})
	case err != nil:
		internalError(w, h.logger, "Failed to resolve date range", err)
	default:
		writeJSON(w, http.StatusOK, RangeResponse{Status: models.DashboardOK, Range: &rng})
	}
}

// GetPreset handles GET /v1/daterange/preset.
func (h *DateRangeHandler) GetPreset(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PresetBody{Preset: h.resolver.LoadPreset(r.Context()), Presets: daterange.Presets})
}

// PutPreset handles PUT /v1/daterange/preset with {"preset": "..."}.
func (h *DateRangeHandler) PutPreset(w http.ResponseWriter, r *http.Request) {
	var body PresetBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&body); err != nil {
		badRequest(w, "Invalid request body")
		return
	}

	err := h.resolver.SavePreset(r.Context(), strings.TrimSpace(body.Preset))
	switch {
	case errors.Is(err, daterange.ErrUnknownPreset):
		badRequest(w, "Unknown preset "+body.Preset)
	case err != nil:
		internalError(w, h.logger, "Failed to save preset", err)
	default:
		writeJSON(w, http.StatusOK, PresetBody{Preset: strings.TrimSpace(body.Preset)})
	}
}
