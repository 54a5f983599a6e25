package martdb

import "database/sql"

// Country represents one row of the country dimension
type Country struct {
	Key             int64  // country_key
	Code            string // country_code (natural key, unique)
	NameEN          string // country_name_en
	NameFR          string // country_name_fr
	ISO3Code        string // iso3_code
	EUMember        string // eu_member ('T'/'F')
	EFTAMember      string // efta_member ('T'/'F')
	CandidateMember string // candidate_member ('T'/'F')
}

// Operator represents one row of the operator dimension
type Operator struct {
	Key             int64  // operator_key
	ID              string // operator_id (natural key, unique)
	Name            string // operator_name
	Country         string // operator_country (free-text label, not an FK)
	IsNightOperator bool   // is_night_operator
}

// Station represents one row of the station dimension. stop_id is indexed
// but not unique: the same physical station may appear once per feed snapshot.
type Station struct {
	Key         int64   // station_key
	StopID      string  // stop_id
	Name        string  // station_name
	Lat         float64 // station_lat
	Lon         float64 // station_lon
	CountryCode string  // country_code (label, not an FK)
}

// Route represents one row of the route dimension
type Route struct {
	Key         int64  // route_key
	RouteID     string // route_id
	OperatorID  string // operator_id (label, not an FK)
	CountryCode string // country_code (label, not an FK)
}

// TimeOfDay represents one row of the intraday time dimension
type TimeOfDay struct {
	Key     int64  // time_key
	Value   string // time_value (HH:MM:SS, natural key, unique)
	Hour    int    // hour
	Minute  int    // minute
	Second  int    // second
	IsNight bool   // is_night
}

// CalendarDate represents one row of the calendar dimension
type CalendarDate struct {
	Key   int64  // date_key (YYYYMMDD)
	Value string // date_value (YYYY-MM-DD, natural key, unique)
	Year  int    // year
	Month int    // month
	Day   int    // day
}

// TripSegment is one fact row: a directional movement between two stations on
// one date. Dimension keys are nullable because feeds do not always resolve
// every axis (e.g. a missing route).
type TripSegment struct {
	Key                 int64         // fact_trip_key
	CountryKey          sql.NullInt64 // country_key
	OperatorKey         sql.NullInt64 // operator_key
	RouteKey            sql.NullInt64 // route_key
	DepartureStationKey sql.NullInt64 // departure_station_key
	ArrivalStationKey   sql.NullInt64 // arrival_station_key
	DepartureTimeKey    sql.NullInt64 // departure_time_key
	ArrivalTimeKey      sql.NullInt64 // arrival_time_key
	DateKey             sql.NullInt64 // date_key
	TripBusinessID      string        // trip_business_id
	IsNight             bool          // is_night
	IsCrossBorder       bool          // is_cross_border
}

// TripStop is one denormalized per-stop-per-trip row. It carries no foreign
// keys to the dimensions; rows are self-contained snapshots.
type TripStop struct {
	Key           int64   // trip_stop_key
	CountryCode   string  // country_code
	OperatorID    string  // operator_id
	TripID        string  // trip_id
	StopSequence  int     // stop_sequence
	StopID        string  // stop_id
	StopName      string  // stop_name
	StopLat       float64 // stop_lat
	StopLon       float64 // stop_lon
	ArrivalTime   string  // arrival_time (HH:MM:SS)
	DepartureTime string  // departure_time (HH:MM:SS)
	DateValue     string  // date_value (YYYY-MM-DD)
}

// NullKey wraps a surrogate key for use in a nullable fact column.
func NullKey(key int64) sql.NullInt64 {
	return sql.NullInt64{Int64: key, Valid: true}
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
