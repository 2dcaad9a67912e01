// Package api provides HTTP API handlers for the airpoint pointer control system.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/renderix/airpoint/internal/store"
)

// Tuner applies tuning values to the running pipeline.
type Tuner interface {
	Settings() store.Settings
	ApplySettings(settings store.Settings) error
}

// SettingsHandler handles HTTP requests for the active tuning values.
type SettingsHandler struct {
	tuner Tuner
}

// NewSettingsHandler creates a new SettingsHandler with the given tuner.
func NewSettingsHandler(t Tuner) *SettingsHandler {
	return &SettingsHandler{tuner: t}
}

// ServeHTTP implements the http.Handler interface.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.get(w, r)
	case http.MethodPut:
		h.update(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// get handles GET /api/settings and returns the active tuning values.
func (h *SettingsHandler) get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.tuner.Settings())
}

// update handles PUT /api/settings. Fields omitted from the request keep
// their current values.
func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	settings := h.tuner.Settings()
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := settings.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tuner.ApplySettings(settings); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to apply settings")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}
