package martdb

import (
	"context"
	"database/sql"
	"fmt"
)

// Coverage aggregates the fact table. Recomputed per request; the mart is
// small and refreshed infrequently.
type Coverage struct {
	TotalTrips        int64
	NightTrips        int64
	NightRatio        float64
	CrossBorderTrips  int64
	DistinctCountries int64
	DistinctOperators int64
	FirstDate         string // empty when no facts carry a date
	LastDate          string
}

// CountryCoverage is the trip count of one EU/EFTA/candidate country.
type CountryCoverage struct {
	CountryCode string
	ISO3Code    string
	NameFR      string
	NameEN      string
	Trips       int64
}

// CoverageStats returns mart-wide aggregate counts and the covered date range.
func (c *Client) CoverageStats(ctx context.Context) (Coverage, error) {
	var cov Coverage
	var first, last sql.NullString
	err := c.DB.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(f.is_night), 0),
			COALESCE(SUM(f.is_cross_border), 0),
			COUNT(DISTINCT f.country_key),
			COUNT(DISTINCT f.operator_key),
			MIN(d.date_value),
			MAX(d.date_value)
		FROM fact_trip_segment f
		LEFT JOIN dim_date d ON d.date_key = f.date_key;`,
	).Scan(&cov.TotalTrips, &cov.NightTrips, &cov.CrossBorderTrips,
		&cov.DistinctCountries, &cov.DistinctOperators, &first, &last)
	if err != nil {
		return Coverage{}, fmt.Errorf("querying coverage stats: %w", err)
	}

	cov.FirstDate = first.String
	cov.LastDate = last.String
	if cov.TotalTrips > 0 {
		cov.NightRatio = float64(cov.NightTrips) / float64(cov.TotalTrips)
	}
	return cov, nil
}

// CoverageByCountry returns per-country trip counts over the EU, EFTA and
// candidate countries, most covered first. Countries without trips are
// included with a zero count.
func (c *Client) CoverageByCountry(ctx context.Context) ([]CountryCoverage, error) {
	rows, err := c.DB.QueryContext(ctx, `
		SELECT
			c.country_code,
			COALESCE(c.iso3_code, ''),
			COALESCE(c.country_name_fr, ''),
			COALESCE(c.country_name_en, ''),
			COUNT(f.fact_trip_key) AS trips
		FROM dim_country c
		LEFT JOIN fact_trip_segment f ON f.country_key = c.country_key
		WHERE c.eu_member = 'T' OR c.efta_member = 'T' OR c.candidate_member = 'T'
		GROUP BY c.country_code, c.iso3_code, c.country_name_fr, c.country_name_en
		ORDER BY trips DESC, c.country_code;`)
	if err != nil {
		return nil, fmt.Errorf("querying coverage by country: %w", err)
	}
	defer rows.Close() // nolint:errcheck

	coverage := []CountryCoverage{}
	for rows.Next() {
		var entry CountryCoverage
		err := rows.Scan(&entry.CountryCode, &entry.ISO3Code, &entry.NameFR, &entry.NameEN, &entry.Trips)
		if err != nil {
			return nil, err
		}
		coverage = append(coverage, entry)
	}
	return coverage, rows.Err()
}
