package restapi

import (
	"net/http"

	"obrail.europe.org/internal/models"
	"obrail.europe.org/martdb"
)

// tripsHandler returns a page of trip segments with joined dimension
// attributes. All filters are optional and AND-combined; results are ordered
// by fact_trip_key so identical requests page identically.
func (api *RestAPI) tripsHandler(w http.ResponseWriter, r *http.Request) {
	params, fieldErrors := parseTripsQueryParams(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	filter := martdb.TripFilter{
		IsNight:          params.IsNight,
		CountryCode:      params.CountryCode,
		OperatorID:       params.OperatorID,
		DepartureStation: params.DepartureStation,
		ArrivalStation:   params.ArrivalStation,
		Limit:            params.Limit,
		Offset:           params.Offset,
	}

	rows, err := api.MartDB.QueryTrips(r.Context(), filter)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	trips := make([]models.TripSegment, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, models.NewTripSegment(row))
	}
	api.writeJSON(w, http.StatusOK, trips)
}
