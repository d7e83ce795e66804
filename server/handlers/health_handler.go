package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tourism-server/db"
	services "tourism-server/service"
)

type HealthHandler struct {
	redisClient    db.RedisClient
	catalogService *services.CatalogService
	logger         *slog.Logger
}

func NewHealthHandler(redisClient db.RedisClient, catalogService *services.CatalogService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{redisClient: redisClient, catalogService: catalogService, logger: logger.With("component", "health_handler")}
}

// Ping handles GET /ping
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "pong"})
}

// Healthz handles GET /healthz and checks the cache connection.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if err := h.redisClient.Ping(ctx); err != nil {
		h.logger.Warn("health check failed", "error", err)
		writeStatus(w, http.StatusServiceUnavailable, "unavailable", "cache unreachable")
		return
	}
	writeStatus(w, http.StatusOK, "ok", "")
}

// Readyz handles GET /readyz; ready once every catalog has been cached.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ready, err := h.catalogService.Ready(r.Context())
	if err != nil || !ready {
		if err != nil {
			h.logger.Warn("readiness check failed", "error", err)
		}
		writeStatus(w, http.StatusServiceUnavailable, "not_ready", "catalogs not cached yet")
		return
	}
	writeStatus(w, http.StatusOK, "ready", "")
}
