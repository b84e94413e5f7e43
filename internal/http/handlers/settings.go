package handlers

import (
	"encoding/json"
	"io"
	nethttp "net/http"

	"github.com/preston-bernstein/nhl-edge-service/internal/logging"
)

const maxSettingsBody = 1 << 10

type settingsPayload struct {
	UseTestData *bool `json:"useTestData"`
}

type settingsResponse struct {
	UseTestData bool `json:"useTestData"`
}

// GetSettings returns the persisted settings.
func (h *Handler) GetSettings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.settings == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "settings store not configured", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	value, err := h.settings.UseTestData(r.Context())
	if err != nil {
		logging.Error(logger, "settings read failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to read settings", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, settingsResponse{UseTestData: value}, h.logger)
}

// PutSettings updates the persisted settings.
func (h *Handler) PutSettings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.settings == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "settings store not configured", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)

	var payload settingsPayload
	dec := json.NewDecoder(io.LimitReader(r.Body, maxSettingsBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil || payload.UseTestData == nil {
		writeError(w, r, nethttp.StatusBadRequest, "expected {\"useTestData\": bool}", h.logger)
		return
	}

	if err := h.settings.SetUseTestData(r.Context(), *payload.UseTestData); err != nil {
		logging.Error(logger, "settings write failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "failed to write settings", h.logger)
		return
	}

	logging.Info(logger, "settings updated", "use_test_data", *payload.UseTestData)
	writeJSON(w, nethttp.StatusOK, settingsResponse{UseTestData: *payload.UseTestData}, h.logger)
}
