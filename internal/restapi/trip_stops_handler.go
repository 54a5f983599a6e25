package restapi

import (
	"net/http"

	"obrail.europe.org/internal/models"
)

// tripStopsHandler returns the full stop sequence of one trip, ordered by
// stop_sequence. All three identifying parameters are required because
// trip_stop rows are self-contained snapshots without dimension keys.
func (api *RestAPI) tripStopsHandler(w http.ResponseWriter, r *http.Request) {
	fieldErrors := make(map[string][]string)
	tripID := requireQueryParam(r, "trip_id", fieldErrors)
	operatorID := requireQueryParam(r, "operator_id", fieldErrors)
	countryCode := requireQueryParam(r, "country_code", fieldErrors)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows, err := api.MartDB.ListTripStops(r.Context(), tripID, operatorID, countryCode)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	stops := make([]models.TripStop, 0, len(rows))
	for _, row := range rows {
		stops = append(stops, models.NewTripStop(row))
	}
	api.writeJSON(w, http.StatusOK, stops)
}
