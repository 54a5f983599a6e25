package models

import (
	"database/sql"

	"obrail.europe.org/martdb"
)

// TripSegment is the JSON shape of one trip search result: a fact row joined
// with its dimension attributes. Joined attributes that could not be resolved
// are omitted.
type TripSegment struct {
	FactTripKey      int64    `json:"fact_trip_key"`
	Country          *string  `json:"country,omitempty"`
	Operator         *string  `json:"operator,omitempty"`
	TripID           *string  `json:"trip_id,omitempty"`
	RouteID          *string  `json:"route_id,omitempty"`
	DepartureStation *string  `json:"departure_station,omitempty"`
	ArrivalStation   *string  `json:"arrival_station,omitempty"`
	DepartureTime    *string  `json:"departure_time,omitempty"`
	ArrivalTime      *string  `json:"arrival_time,omitempty"`
	DepartureDate    *string  `json:"departure_date,omitempty"`
	ArrivalDate      *string  `json:"arrival_date,omitempty"`
	DepartureLat     *float64 `json:"departure_lat,omitempty"`
	DepartureLon     *float64 `json:"departure_lon,omitempty"`
	ArrivalLat       *float64 `json:"arrival_lat,omitempty"`
	ArrivalLon       *float64 `json:"arrival_lon,omitempty"`
	IsNight          bool     `json:"is_night"`
	IsCrossBorder    bool     `json:"is_cross_border"`
}

// NewTripSegment converts a joined database row to its response shape.
func NewTripSegment(row martdb.TripRow) TripSegment {
	trip := TripSegment{
		FactTripKey:   row.FactTripKey,
		IsNight:       row.IsNight,
		IsCrossBorder: row.IsCrossBorder,
	}
	trip.Country = nullableString(row.CountryCode)
	trip.Operator = nullableString(row.OperatorID)
	trip.TripID = nullableString(row.TripBusinessID)
	trip.RouteID = nullableString(row.RouteID)
	trip.DepartureStation = nullableString(row.DepartureStation)
	trip.ArrivalStation = nullableString(row.ArrivalStation)
	trip.DepartureTime = nullableString(row.DepartureTime)
	trip.ArrivalTime = nullableString(row.ArrivalTime)
	trip.DepartureDate = nullableString(row.DepartureDate)
	trip.ArrivalDate = nullableString(row.ArrivalDate)
	trip.DepartureLat = nullableFloat(row.DepartureLat)
	trip.DepartureLon = nullableFloat(row.DepartureLon)
	trip.ArrivalLat = nullableFloat(row.ArrivalLat)
	trip.ArrivalLon = nullableFloat(row.ArrivalLon)
	return trip
}

// TripStop is the JSON shape of one denormalized stop row.
type TripStop struct {
	StopSequence  int     `json:"stop_sequence"`
	StopID        string  `json:"stop_id"`
	StopName      string  `json:"stop_name,omitempty"`
	StopLat       float64 `json:"stop_lat"`
	StopLon       float64 `json:"stop_lon"`
	ArrivalTime   string  `json:"arrival_time,omitempty"`
	DepartureTime string  `json:"departure_time,omitempty"`
	DateValue     string  `json:"date_value,omitempty"`
}

// NewTripStop converts a trip_stop database row to its response shape.
func NewTripStop(stop martdb.TripStop) TripStop {
	return TripStop{
		StopSequence:  stop.StopSequence,
		StopID:        stop.StopID,
		StopName:      stop.StopName,
		StopLat:       stop.StopLat,
		StopLon:       stop.StopLon,
		ArrivalTime:   stop.ArrivalTime,
		DepartureTime: stop.DepartureTime,
		DateValue:     stop.DateValue,
	}
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullableFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	return &v.Float64
}
