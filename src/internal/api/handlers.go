package api

import (
	"encoding/json"
	"net/http"

	"github.com/spamlists/spamlists/src/internal/config"
	"github.com/spamlists/spamlists/src/internal/lists"
)

// Handler manages all API endpoints and dependencies.
type Handler struct {
	cfg *config.Config
	mgr *lists.Manager
}

// NewHandler creates a new API handler serving the mail root of cfg through mgr.
func NewHandler(cfg *config.Config, mgr *lists.Manager) *Handler {
	return &Handler{
		cfg: cfg,
		mgr: mgr,
	}
}

// writeJSON writes a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(DataResponse{Data: data})
}

// writeJSONData writes a successful JSON response with data.
func writeJSONData(w http.ResponseWriter, data interface{}) {
	writeJSON(w, http.StatusOK, data)
}

// decodeJSON decodes JSON from the request body, rejecting unknown fields.
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
