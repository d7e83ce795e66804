package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// StatusResponse is the body of every non-data reply.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Default().Warn("failed to encode response", "error", err)
	}
}

func writeStatus(w http.ResponseWriter, status int, state, message string) {
	writeJSON(w, status, StatusResponse{Status: state, Message: message})
}

func badRequest(w http.ResponseWriter, message string) {
	writeStatus(w, http.StatusBadRequest, "error", message)
}

// internalError logs err and answers with a generic message; raw errors are
// never sent to clients.
func internalError(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	logger.Error(message, "error", err)
	writeStatus(w, http.StatusInternalServerError, "error", message)
}

func parseArgFloat64(vals url.Values, name string) (float64, error) {
	v, err := strconv.ParseFloat(vals.Get(name), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%s is not a finite number", name)
	}
	return v, nil
}
