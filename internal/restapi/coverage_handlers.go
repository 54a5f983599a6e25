package restapi

import (
	"net/http"

	"obrail.europe.org/internal/models"
)

// coverageHandler returns per-country trip counts over the EU, EFTA and
// candidate countries, most covered first.
func (api *RestAPI) coverageHandler(w http.ResponseWriter, r *http.Request) {
	rows, err := api.MartDB.CoverageByCountry(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	coverage := make([]models.CountryCoverage, 0, len(rows))
	for _, row := range rows {
		coverage = append(coverage, models.NewCountryCoverage(row))
	}
	api.writeJSON(w, http.StatusOK, coverage)
}

// coverageStatsHandler returns mart-wide aggregate counts and the covered
// date range. Recomputed per request.
func (api *RestAPI) coverageStatsHandler(w http.ResponseWriter, r *http.Request) {
	cov, err := api.MartDB.CoverageStats(r.Context())
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	api.writeJSON(w, http.StatusOK, models.NewCoverageStats(cov))
}
