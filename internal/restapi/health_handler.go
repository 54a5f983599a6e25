package restapi

import (
	"net/http"

	"obrail.europe.org/internal/models"
)

// healthHandler reports liveness and whether the backing store is reachable.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := models.Health{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if err := api.MartDB.Ping(r.Context()); err != nil {
		health.Status = "unavailable"
		health.Database = "unreachable"
		status = http.StatusServiceUnavailable
	}

	api.writeJSON(w, status, health)
}
