package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/nhl-edge-service/internal/http/middleware"
	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
	"github.com/preston-bernstein/nhl-edge-service/internal/remote"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get(middleware.HeaderRequestID)
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writeLoadError maps a screen load failure: table query failures are upstream problems
// (502), anything else is ours (500).
func writeLoadError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	if qErr, ok := remote.AsQueryError(err); ok {
		status := http.StatusBadGateway
		if errors.Is(err, remote.ErrSourceUnavailable) {
			status = http.StatusServiceUnavailable
		}
		logging.Warn(logger, "screen load failed", logging.FieldTable, qErr.Table, "error", err)
		writeError(w, r, status, qErr.Error(), logger)
		return
	}
	logging.Error(logger, "screen load failed", err)
	writeError(w, r, http.StatusInternalServerError, "internal error", logger)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
