package restapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"obrail.europe.org/martdb"
)

var validate = validator.New()

// tripsQueryParams carries the /trips filters. Bounds mirror the mart query
// contract: limit 1..1000, offset >= 0, station names matched by
// case-insensitive substring.
type tripsQueryParams struct {
	IsNight          *bool
	CountryCode      string `validate:"omitempty,min=2,max=64"`
	OperatorID       string `validate:"omitempty,min=1,max=64"`
	DepartureStation string `validate:"omitempty,min=2,max=128"`
	ArrivalStation   string `validate:"omitempty,min=2,max=128"`
	Limit            int    `validate:"gte=1,lte=1000"`
	Offset           int    `validate:"gte=0"`
}

// paramNames maps struct fields back to their query parameter names for
// validation error reporting.
var paramNames = map[string]string{
	"CountryCode":      "country_code",
	"OperatorID":       "operator_id",
	"DepartureStation": "departure_station",
	"ArrivalStation":   "arrival_station",
	"Limit":            "limit",
	"Offset":           "offset",
}

// parseTripsQueryParams extracts and validates /trips query parameters.
// A non-nil fieldErrors map means the request must be rejected.
func parseTripsQueryParams(r *http.Request) (tripsQueryParams, map[string][]string) {
	q := r.URL.Query()
	fieldErrors := make(map[string][]string)

	params := tripsQueryParams{
		CountryCode:      strings.TrimSpace(q.Get("country_code")),
		OperatorID:       strings.TrimSpace(q.Get("operator_id")),
		DepartureStation: strings.TrimSpace(q.Get("departure_station")),
		ArrivalStation:   strings.TrimSpace(q.Get("arrival_station")),
		Limit:            martdb.DefaultTripLimit,
	}

	if v := q.Get("is_night"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fieldErrors["is_night"] = append(fieldErrors["is_night"], "must be a boolean")
		} else {
			params.IsNight = &b
		}
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fieldErrors["limit"] = append(fieldErrors["limit"], "must be an integer")
		} else {
			params.Limit = n
		}
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fieldErrors["offset"] = append(fieldErrors["offset"], "must be an integer")
		} else {
			params.Offset = n
		}
	}

	if err := validate.Struct(params); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			for _, fe := range validationErrors {
				name := paramNames[fe.StructField()]
				if name == "" {
					name = fe.StructField()
				}
				fieldErrors[name] = append(fieldErrors[name], tagMessage(fe))
			}
		}
	}

	if len(fieldErrors) == 0 {
		return params, nil
	}
	return params, fieldErrors
}

func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// requireQueryParam fetches a mandatory query parameter, recording a field
// error when it is absent.
func requireQueryParam(r *http.Request, name string, fieldErrors map[string][]string) string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		fieldErrors[name] = append(fieldErrors[name], "is required")
	}
	return v
}
