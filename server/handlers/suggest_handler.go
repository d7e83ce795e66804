package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"tourism-server/config"
	"tourism-server/models"
	services "tourism-server/service"
	"tourism-server/service/autosuggest"
)

const (
	Q_QUERY_ARG      = "q"
	LIMIT_QUERY_ARG  = "limit"
	SOURCE_QUERY_ARG = "source"
)

// SuggestResponse is returned by GET /v1/suggest.
type SuggestResponse struct {
	Query string                  `json:"query"`
	Items []models.SuggestionItem `json:"items"`
}

type SuggestHandler struct {
	suggestionService *services.SuggestionService
	defaultLimit      int
	logger            *slog.Logger
}

func NewSuggestHandler(suggestionService *services.SuggestionService, defaultLimit int, logger *slog.Logger) *SuggestHandler {
	return &SuggestHandler{
		suggestionService: suggestionService,
		defaultLimit:      config.ClampSuggestLimit(defaultLimit),
		logger:            logger.With("component", "suggest_handler"),
	}
}

// Suggest handles GET /v1/suggest?q=&limit=
func (h *SuggestHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get(Q_QUERY_ARG)
	limit := h.limit(r)

	items, err := h.suggestionService.Suggest(r.Context(), q, limit)
	if errors.Is(err, context.Canceled) {
		// client went away
		return
	}
	if err != nil {
		internalError(w, h.logger, autosuggest.FailedMessage, err)
		return
	}
	writeJSON(w, http.StatusOK, SuggestResponse{Query: q, Items: items})
}

func (h *SuggestHandler) limit(r *http.Request) int {
	if n, err := strconv.Atoi(r.URL.Query().Get(LIMIT_QUERY_ARG)); err == nil {
		return config.ClampSuggestLimit(n)
	}
	return h.defaultLimit
}
