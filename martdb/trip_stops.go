package martdb

import (
	"context"
	"database/sql"
	"fmt"
)

// InsertTripStop appends one denormalized stop row. Unlike fact rows, trip
// stops are unconstrained by dimension existence.
func (c *Client) InsertTripStop(ctx context.Context, stop TripStop) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO trip_stop (
			country_code, operator_id, trip_id, stop_sequence, stop_id,
			stop_name, stop_lat, stop_lon, arrival_time, departure_time, date_value
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING trip_stop_key;`,
		stop.CountryCode, stop.OperatorID, stop.TripID, stop.StopSequence, stop.StopID,
		stop.StopName, stop.StopLat, stop.StopLon, stop.ArrivalTime, stop.DepartureTime, stop.DateValue,
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("inserting trip stop", err)
	}
	return key, nil
}

// InsertTripStops appends a batch of stop rows in a single transaction.
func (c *Client) InsertTripStops(ctx context.Context, stops []TripStop) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	if err := insertTripStopsTx(ctx, tx, stops); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// ReplaceTripStops truncates the trip_stop table and loads the given rows in
// one transaction. trip_stop carries no referential linkage to prune, so a
// refresh replaces it wholesale.
func (c *Client) ReplaceTripStops(ctx context.Context, stops []TripStop) error {
	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM trip_stop;"); err != nil {
		return fmt.Errorf("error truncating trip_stop: %w", err)
	}

	if err := insertTripStopsTx(ctx, tx, stops); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

func insertTripStopsTx(ctx context.Context, tx *sql.Tx, stops []TripStop) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trip_stop (
			country_code, operator_id, trip_id, stop_sequence, stop_id,
			stop_name, stop_lat, stop_lon, arrival_time, departure_time, date_value
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, stop := range stops {
		_, err := stmt.ExecContext(ctx,
			stop.CountryCode, stop.OperatorID, stop.TripID, stop.StopSequence, stop.StopID,
			stop.StopName, stop.StopLat, stop.StopLon, stop.ArrivalTime, stop.DepartureTime, stop.DateValue,
		)
		if err != nil {
			return fmt.Errorf("error inserting trip stop: %w", err)
		}
	}
	return nil
}

// ListTripStops returns the stop sequence of one trip, ordered by
// stop_sequence ascending.
func (c *Client) ListTripStops(ctx context.Context, tripID, operatorID, countryCode string) ([]TripStop, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT trip_stop_key, country_code, operator_id, trip_id, stop_sequence,
			stop_id, stop_name, stop_lat, stop_lon, arrival_time, departure_time, date_value
		FROM trip_stop
		WHERE trip_id = ? AND operator_id = ? AND country_code = ?
		ORDER BY stop_sequence ASC;`,
		tripID, operatorID, countryCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	stops := []TripStop{}
	for rows.Next() {
		var stop TripStop
		var name, arrival, departure, date sql.NullString
		var lat, lon sql.NullFloat64
		err := rows.Scan(&stop.Key, &stop.CountryCode, &stop.OperatorID, &stop.TripID,
			&stop.StopSequence, &stop.StopID, &name, &lat, &lon, &arrival, &departure, &date)
		if err != nil {
			return nil, err
		}
		stop.StopName = name.String
		stop.StopLat = lat.Float64
		stop.StopLon = lon.Float64
		stop.ArrivalTime = arrival.String
		stop.DepartureTime = departure.String
		stop.DateValue = date.String
		stops = append(stops, stop)
	}
	return stops, rows.Err()
}
