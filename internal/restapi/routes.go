package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Routes wires all read endpoints and middleware. Every endpoint is GET; the
// API never mutates the mart.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/health", api.healthHandler)
	router.HandlerFunc(http.MethodGet, "/trips", api.tripsHandler)
	router.HandlerFunc(http.MethodGet, "/trip_stops", api.tripStopsHandler)
	router.HandlerFunc(http.MethodGet, "/countries", api.countriesHandler)
	router.HandlerFunc(http.MethodGet, "/operators", api.operatorsHandler)
	router.HandlerFunc(http.MethodGet, "/coverage", api.coverageHandler)
	router.HandlerFunc(http.MethodGet, "/stats/coverage", api.coverageStatsHandler)

	var handler http.Handler = router
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	return handler
}
