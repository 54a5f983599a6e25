package martdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"obrail.europe.org/internal/appconf"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	client, err := NewClient(NewConfig(":memory:", appconf.Test))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

// fixture holds the surrogate keys assigned while seeding a small mart:
// two countries, two operators, three stations, and three trip segments
// (one day trip within France, two night trips crossing the FR/DE border).
type fixture struct {
	France  int64
	Germany int64

	SNCF     int64
	Nightjet int64

	Paris  int64
	Lyon   int64
	Berlin int64

	Route int64

	Morning int64 // 08:30:00
	Evening int64 // 22:15:00

	Date int64 // 2025-11-03

	DayTrip    int64 // Paris -> Lyon, FR, SNCF
	NightTrip1 int64 // Paris -> Berlin, FR, Nightjet, cross-border
	NightTrip2 int64 // Berlin -> Paris, DE, Nightjet, cross-border
}

func seedMart(t *testing.T, client *Client) fixture {
	t.Helper()
	ctx := context.Background()
	var f fixture
	var err error

	f.France, err = client.UpsertCountry(ctx, Country{
		Code: "FR", NameEN: "France", NameFR: "France", ISO3Code: "FRA",
		EUMember: "T", EFTAMember: "F", CandidateMember: "F",
	})
	require.NoError(t, err)
	f.Germany, err = client.UpsertCountry(ctx, Country{
		Code: "DE", NameEN: "Germany", NameFR: "Allemagne", ISO3Code: "DEU",
		EUMember: "T", EFTAMember: "F", CandidateMember: "F",
	})
	require.NoError(t, err)

	f.SNCF, err = client.UpsertOperator(ctx, Operator{
		ID: "sncf_voyageurs", Name: "SNCF Voyageurs", Country: "FR",
	})
	require.NoError(t, err)
	f.Nightjet, err = client.UpsertOperator(ctx, Operator{
		ID: "nightjet", Name: "Nightjet", Country: "AT", IsNightOperator: true,
	})
	require.NoError(t, err)

	f.Paris, err = client.InsertStation(ctx, Station{
		StopID: "fr:paris-gdl", Name: "Paris Gare De Lyon", Lat: 48.8443, Lon: 2.3744, CountryCode: "FR",
	})
	require.NoError(t, err)
	f.Lyon, err = client.InsertStation(ctx, Station{
		StopID: "fr:lyon-pd", Name: "Lyon Part-Dieu", Lat: 45.7606, Lon: 4.8596, CountryCode: "FR",
	})
	require.NoError(t, err)
	f.Berlin, err = client.InsertStation(ctx, Station{
		StopID: "de:berlin-hbf", Name: "Berlin Hbf", Lat: 52.5251, Lon: 13.3694, CountryCode: "DE",
	})
	require.NoError(t, err)

	f.Route, err = client.InsertRoute(ctx, Route{
		RouteID: "tgv-6601", OperatorID: "sncf_voyageurs", CountryCode: "FR",
	})
	require.NoError(t, err)

	f.Morning, err = client.UpsertTime(ctx, "08:30:00")
	require.NoError(t, err)
	f.Evening, err = client.UpsertTime(ctx, "22:15:00")
	require.NoError(t, err)

	f.Date, err = client.UpsertDate(ctx, "2025-11-03")
	require.NoError(t, err)

	f.DayTrip, err = client.InsertTripSegment(ctx, TripSegment{
		CountryKey:          NullKey(f.France),
		OperatorKey:         NullKey(f.SNCF),
		RouteKey:            NullKey(f.Route),
		DepartureStationKey: NullKey(f.Paris),
		ArrivalStationKey:   NullKey(f.Lyon),
		DepartureTimeKey:    NullKey(f.Morning),
		ArrivalTimeKey:      NullKey(f.Morning),
		DateKey:             NullKey(f.Date),
		TripBusinessID:      "trip-day-1",
	})
	require.NoError(t, err)

	f.NightTrip1, err = client.InsertTripSegment(ctx, TripSegment{
		CountryKey:          NullKey(f.France),
		OperatorKey:         NullKey(f.Nightjet),
		DepartureStationKey: NullKey(f.Paris),
		ArrivalStationKey:   NullKey(f.Berlin),
		DepartureTimeKey:    NullKey(f.Evening),
		ArrivalTimeKey:      NullKey(f.Morning),
		DateKey:             NullKey(f.Date),
		TripBusinessID:      "trip-night-1",
		IsNight:             true,
		IsCrossBorder:       true,
	})
	require.NoError(t, err)

	f.NightTrip2, err = client.InsertTripSegment(ctx, TripSegment{
		CountryKey:          NullKey(f.Germany),
		OperatorKey:         NullKey(f.Nightjet),
		DepartureStationKey: NullKey(f.Berlin),
		ArrivalStationKey:   NullKey(f.Paris),
		DepartureTimeKey:    NullKey(f.Evening),
		ArrivalTimeKey:      NullKey(f.Morning),
		DateKey:             NullKey(f.Date),
		TripBusinessID:      "trip-night-2",
		IsNight:             true,
		IsCrossBorder:       true,
	})
	require.NoError(t, err)

	return f
}

func boolPtr(b bool) *bool {
	return &b
}
