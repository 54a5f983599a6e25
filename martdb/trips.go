package martdb

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	// DefaultTripLimit is applied when a filter does not set a page size.
	DefaultTripLimit = 100
	// MaxTripLimit bounds a single page of trip results.
	MaxTripLimit = 1000
)

// TripFilter narrows QueryTrips results. All fields are optional and
// AND-combined; zero values impose no constraint. Station filters match the
// joined station name by case-insensitive substring, not the raw stop_id.
type TripFilter struct {
	IsNight          *bool
	CountryCode      string
	OperatorID       string
	DepartureStation string
	ArrivalStation   string
	Limit            int // 0 means DefaultTripLimit
	Offset           int
}

// TripRow is one trip segment joined with its dimension attributes. Joined
// columns are nullable because the fact's label-style dimensions tolerate
// mismatches.
type TripRow struct {
	FactTripKey      int64
	CountryCode      sql.NullString
	OperatorID       sql.NullString
	TripBusinessID   sql.NullString
	RouteID          sql.NullString
	DepartureStation sql.NullString
	ArrivalStation   sql.NullString
	DepartureLat     sql.NullFloat64
	DepartureLon     sql.NullFloat64
	ArrivalLat       sql.NullFloat64
	ArrivalLon       sql.NullFloat64
	DepartureTime    sql.NullString
	ArrivalTime      sql.NullString
	DepartureDate    sql.NullString
	ArrivalDate      sql.NullString
	IsNight          bool
	IsCrossBorder    bool
}

// QueryTrips returns a page of trip segments matching the filter, joined with
// their dimension attributes and ordered by fact_trip_key ascending so that
// limit/offset pagination is reproducible against unchanged data. No matches
// yields an empty slice, not an error.
func (c *Client) QueryTrips(ctx context.Context, filter TripFilter) ([]TripRow, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = DefaultTripLimit
	}
	if limit < 0 || limit > MaxTripLimit {
		return nil, fmt.Errorf("%w: limit %d outside 1..%d", ErrInvalidFilter, limit, MaxTripLimit)
	}
	if filter.Offset < 0 {
		return nil, fmt.Errorf("%w: negative offset %d", ErrInvalidFilter, filter.Offset)
	}

	var conds []string
	var args []any

	if filter.IsNight != nil {
		conds = append(conds, "f.is_night = ?")
		args = append(args, boolToInt(*filter.IsNight))
	}
	if filter.CountryCode != "" {
		conds = append(conds, "c.country_code = ?")
		args = append(args, strings.ToUpper(filter.CountryCode))
	}
	if filter.OperatorID != "" {
		conds = append(conds, "o.operator_id = ?")
		args = append(args, filter.OperatorID)
	}
	if filter.DepartureStation != "" {
		conds = append(conds, "LOWER(ds.station_name) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.DepartureStation)
	}
	if filter.ArrivalStation != "" {
		conds = append(conds, "LOWER(arr.station_name) LIKE '%' || LOWER(?) || '%'")
		args = append(args, filter.ArrivalStation)
	}

	whereClause := ""
	if len(conds) > 0 {
		whereClause = "WHERE " + strings.Join(conds, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT
			f.fact_trip_key,
			c.country_code,
			o.operator_id,
			f.trip_business_id,
			r.route_id,
			ds.station_name AS departure_station,
			arr.station_name AS arrival_station,
			ds.station_lat AS departure_lat,
			ds.station_lon AS departure_lon,
			arr.station_lat AS arrival_lat,
			arr.station_lon AS arrival_lon,
			dt.time_value AS departure_time,
			at.time_value AS arrival_time,
			d.date_value AS departure_date,
			d.date_value AS arrival_date,
			f.is_night,
			f.is_cross_border
		FROM fact_trip_segment f
		LEFT JOIN dim_country c ON c.country_key = f.country_key
		LEFT JOIN dim_operator o ON o.operator_key = f.operator_key
		LEFT JOIN dim_route r ON r.route_key = f.route_key
		LEFT JOIN dim_station ds ON ds.station_key = f.departure_station_key
		LEFT JOIN dim_station arr ON arr.station_key = f.arrival_station_key
		LEFT JOIN dim_time dt ON dt.time_key = f.departure_time_key
		LEFT JOIN dim_time at ON at.time_key = f.arrival_time_key
		LEFT JOIN dim_date d ON d.date_key = f.date_key
		%s
		ORDER BY f.fact_trip_key
		LIMIT ? OFFSET ?;`, whereClause)

	args = append(args, limit, filter.Offset)

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying trips: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	trips := []TripRow{}
	for rows.Next() {
		var trip TripRow
		var night, crossBorder int64
		err := rows.Scan(
			&trip.FactTripKey, &trip.CountryCode, &trip.OperatorID,
			&trip.TripBusinessID, &trip.RouteID,
			&trip.DepartureStation, &trip.ArrivalStation,
			&trip.DepartureLat, &trip.DepartureLon,
			&trip.ArrivalLat, &trip.ArrivalLon,
			&trip.DepartureTime, &trip.ArrivalTime,
			&trip.DepartureDate, &trip.ArrivalDate,
			&night, &crossBorder,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning trip row: %w", err)
		}
		trip.IsNight = night != 0
		trip.IsCrossBorder = crossBorder != 0
		trips = append(trips, trip)
	}
	return trips, rows.Err()
}
