package restapi

import (
	"net/http"

	"obrail.europe.org/internal/models"
)

// countriesHandler returns the full country dimension, ordered by English
// name, for populating client-side filter UIs.
func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := api.MartDB.ListCountries(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	countries := make([]models.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, models.NewCountry(row))
	}
	api.writeJSON(w, http.StatusOK, countries)
}

// operatorsHandler returns the full operator dimension, ordered by name.
func (api *RestAPI) operatorsHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := api.MartDB.ListOperators(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	operators := make([]models.Operator, 0, len(rows))
	for _, row := range rows {
		operators = append(operators, models.NewOperator(row))
	}
	api.writeJSON(w, http.StatusOK, operators)
}
