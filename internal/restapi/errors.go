package restapi

import (
	"net/http"

	"obrail.europe.org/internal/logging"
)

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, r *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}
	api.writeJSON(w, http.StatusBadRequest, response)
}

// serverErrorResponse sends a 500 Internal Server Error response. The
// underlying error is logged, never leaked to the caller.
func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	logging.LogError(logging.FromContext(r.Context()), "request failed", err)

	response := struct {
		Error string `json:"error"`
	}{
		Error: "internal server error",
	}
	api.writeJSON(w, http.StatusInternalServerError, response)
}
