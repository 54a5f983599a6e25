package martdb

import (
	"context"
	"strings"
)

// Dimension load surface. Dimensions with a unique natural key (country,
// operator, time, date) are upserted: the first load assigns a surrogate key
// and later loads update attributes in place without changing it. Stations
// and routes have no unique natural key and are appended.

// UpsertCountry inserts the country or, if its country_code is already
// present, updates the attributes in place. Returns the stable surrogate key.
func (c *Client) UpsertCountry(ctx context.Context, country Country) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_country (
			country_code, country_name_en, country_name_fr, iso3_code,
			eu_member, efta_member, candidate_member
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(country_code) DO UPDATE SET
			country_name_en = excluded.country_name_en,
			country_name_fr = excluded.country_name_fr,
			iso3_code = excluded.iso3_code,
			eu_member = excluded.eu_member,
			efta_member = excluded.efta_member,
			candidate_member = excluded.candidate_member
		RETURNING country_key;`,
		strings.ToUpper(country.Code), country.NameEN, country.NameFR, country.ISO3Code,
		country.EUMember, country.EFTAMember, country.CandidateMember,
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("upserting country", err)
	}
	return key, nil
}

// InsertCountry adds a country and fails with ErrDuplicateKey if the
// country_code already exists. This is the non-idempotent load path; loaders
// that re-run should use UpsertCountry.
func (c *Client) InsertCountry(ctx context.Context, country Country) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_country (
			country_code, country_name_en, country_name_fr, iso3_code,
			eu_member, efta_member, candidate_member
		) VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING country_key;`,
		strings.ToUpper(country.Code), country.NameEN, country.NameFR, country.ISO3Code,
		country.EUMember, country.EFTAMember, country.CandidateMember,
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("inserting country", err)
	}
	return key, nil
}

// UpsertOperator inserts the operator or updates its attributes by
// operator_id. Returns the stable surrogate key.
func (c *Client) UpsertOperator(ctx context.Context, operator Operator) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_operator (operator_id, operator_name, operator_country, is_night_operator)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(operator_id) DO UPDATE SET
			operator_name = excluded.operator_name,
			operator_country = excluded.operator_country,
			is_night_operator = excluded.is_night_operator
		RETURNING operator_key;`,
		operator.ID, operator.Name, operator.Country, boolToInt(operator.IsNightOperator),
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("upserting operator", err)
	}
	return key, nil
}

// InsertStation appends a station row. stop_id is intentionally not unique:
// the same station may arrive once per feed snapshot.
func (c *Client) InsertStation(ctx context.Context, station Station) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_station (stop_id, station_name, station_lat, station_lon, country_code)
		VALUES (?, ?, ?, ?, ?)
		RETURNING station_key;`,
		station.StopID, station.Name, station.Lat, station.Lon, station.CountryCode,
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("inserting station", err)
	}
	return key, nil
}

// InsertRoute appends a route row.
func (c *Client) InsertRoute(ctx context.Context, route Route) (int64, error) {
	var key int64
	err := c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_route (route_id, operator_id, country_code)
		VALUES (?, ?, ?)
		RETURNING route_key;`,
		route.RouteID, route.OperatorID, route.CountryCode,
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("inserting route", err)
	}
	return key, nil
}

// UpsertTime inserts an intraday time by its HH:MM:SS value, deriving hour,
// minute, second and the night flag. Returns the stable surrogate key.
func (c *Client) UpsertTime(ctx context.Context, value string) (int64, error) {
	tod, err := NewTimeOfDay(value)
	if err != nil {
		return 0, err
	}

	var key int64
	err = c.DB.QueryRowContext(ctx, `
		INSERT INTO dim_time (time_value, hour, minute, second, is_night)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(time_value) DO UPDATE SET
			hour = excluded.hour,
			minute = excluded.minute,
			second = excluded.second,
			is_night = excluded.is_night
		RETURNING time_key;`,
		tod.Value, tod.Hour, tod.Minute, tod.Second, boolToInt(tod.IsNight),
	).Scan(&key)
	if err != nil {
		return 0, wrapConstraintErr("upserting time", err)
	}
	return key, nil
}

// UpsertDate inserts a calendar date by its YYYY-MM-DD value. The surrogate
// key is the YYYYMMDD integer, so repeated loads always resolve to the same
// key.
func (c *Client) UpsertDate(ctx context.Context, value string) (int64, error) {
	date, err := NewCalendarDate(value)
	if err != nil {
		return 0, err
	}

	_, err = c.DB.ExecContext(ctx, `
		INSERT INTO dim_date (date_key, date_value, year, month, day)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date_value) DO NOTHING;`,
		date.Key, date.Value, date.Year, date.Month, date.Day,
	)
	if err != nil {
		return 0, wrapConstraintErr("upserting date", err)
	}
	return date.Key, nil
}

// ListCountries returns the full country dimension ordered by English name.
func (c *Client) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT country_key, country_code, country_name_en, country_name_fr,
			iso3_code, eu_member, efta_member, candidate_member
		FROM dim_country
		ORDER BY country_name_en, country_code;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	countries := []Country{}
	for rows.Next() {
		var country Country
		err := rows.Scan(&country.Key, &country.Code, &country.NameEN, &country.NameFR,
			&country.ISO3Code, &country.EUMember, &country.EFTAMember, &country.CandidateMember)
		if err != nil {
			return nil, err
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

// ListOperators returns the full operator dimension ordered by display name.
func (c *Client) ListOperators(ctx context.Context) ([]Operator, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT operator_key, operator_id, operator_name, operator_country, is_night_operator
		FROM dim_operator
		ORDER BY operator_name, operator_id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	operators := []Operator{}
	for rows.Next() {
		var operator Operator
		var night int64
		err := rows.Scan(&operator.Key, &operator.ID, &operator.Name, &operator.Country, &night)
		if err != nil {
			return nil, err
		}
		operator.IsNightOperator = night != 0
		operators = append(operators, operator)
	}
	return operators, rows.Err()
}
