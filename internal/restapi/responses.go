package restapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON sends a JSON response with the given status code.
func (api *RestAPI) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		api.Logger.Error("failed to encode response", "error", err)
	}
}
