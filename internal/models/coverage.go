package models

import "obrail.europe.org/martdb"

// CoverageStats is the aggregate coverage object returned by /stats/coverage.
type CoverageStats struct {
	TotalTrips        int64   `json:"total_trips"`
	NightTrips        int64   `json:"night_trips"`
	NightRatio        float64 `json:"night_ratio"`
	CrossBorderTrips  int64   `json:"cross_border_trips"`
	DistinctCountries int64   `json:"distinct_countries"`
	DistinctOperators int64   `json:"distinct_operators"`
	FirstDate         string  `json:"first_date,omitempty"`
	LastDate          string  `json:"last_date,omitempty"`
}

func NewCoverageStats(cov martdb.Coverage) CoverageStats {
	return CoverageStats{
		TotalTrips:        cov.TotalTrips,
		NightTrips:        cov.NightTrips,
		NightRatio:        cov.NightRatio,
		CrossBorderTrips:  cov.CrossBorderTrips,
		DistinctCountries: cov.DistinctCountries,
		DistinctOperators: cov.DistinctOperators,
		FirstDate:         cov.FirstDate,
		LastDate:          cov.LastDate,
	}
}

// CountryCoverage is one row of the per-country coverage listing.
type CountryCoverage struct {
	CountryCode string `json:"country_code"`
	ISO3Code    string `json:"iso3_code,omitempty"`
	NameFR      string `json:"name_fr,omitempty"`
	NameEN      string `json:"name_en,omitempty"`
	Trips       int64  `json:"trips"`
}

func NewCountryCoverage(entry martdb.CountryCoverage) CountryCoverage {
	return CountryCoverage{
		CountryCode: entry.CountryCode,
		ISO3Code:    entry.ISO3Code,
		NameFR:      entry.NameFR,
		NameEN:      entry.NameEN,
		Trips:       entry.Trips,
	}
}

// Health is the liveness payload returned by /health.
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
