package martdb

import (
	"context"
	"fmt"
)

// InsertTripSegment appends one fact row. Every non-null dimension key must
// already exist; a missing reference fails with ErrForeignKey and commits
// nothing.
func (c *Client) InsertTripSegment(ctx context.Context, segment TripSegment) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO fact_trip_segment (
			country_key, operator_key, route_key,
			departure_station_key, arrival_station_key,
			departure_time_key, arrival_time_key, date_key,
			trip_business_id, is_night, is_cross_border
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING fact_trip_key;`,
		segment.CountryKey, segment.OperatorKey, segment.RouteKey,
		segment.DepartureStationKey, segment.ArrivalStationKey,
		segment.DepartureTimeKey, segment.ArrivalTimeKey, segment.DateKey,
		segment.TripBusinessID, boolToInt(segment.IsNight), boolToInt(segment.IsCrossBorder),
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("inserting trip segment", err)
	}
	return key, nil
}

// InsertTripSegments appends a batch of fact rows in a single transaction.
// The batch is all-or-nothing: any failed row rolls back the whole load.
func (c *Client) InsertTripSegments(ctx context.Context, segments []TripSegment) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO fact_trip_segment (
			country_key, operator_key, route_key,
			departure_station_key, arrival_station_key,
			departure_time_key, arrival_time_key, date_key,
			trip_business_id, is_night, is_cross_border
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, segment := range segments {
		_, err := stmt.ExecContext(ctx,
			segment.CountryKey, segment.OperatorKey, segment.RouteKey,
			segment.DepartureStationKey, segment.ArrivalStationKey,
			segment.DepartureTimeKey, segment.ArrivalTimeKey, segment.DateKey,
			segment.TripBusinessID, boolToInt(segment.IsNight), boolToInt(segment.IsCrossBorder),
		)
		if err != nil {
			return wrapConstraintErr("inserting trip segment batch", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
