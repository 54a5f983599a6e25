package restapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"obrail.europe.org/internal/app"
	"obrail.europe.org/internal/appconf"
	"obrail.europe.org/martdb"
)

// newTestServer wires a RestAPI around an in-memory mart and serves it over
// httptest. Rate limiting is disabled unless a test opts in through cfg.
func newTestServer(t *testing.T, rateLimit int) (*httptest.Server, *martdb.Client) {
	t.Helper()

	client, err := martdb.NewClient(martdb.NewConfig(":memory:", appconf.Test))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cfg := appconf.Default()
	cfg.EnvName = "test"
	cfg.RateLimit = rateLimit
	require.NoError(t, cfg.Validate())

	api := NewRestAPI(&app.Application{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		MartDB: client,
	})

	server := httptest.NewServer(api.Routes())
	t.Cleanup(server.Close)
	return server, client
}

// seedTestMart loads two countries, two operators, three stations and three
// trip segments so filter behavior is observable end to end.
func seedTestMart(t *testing.T, client *martdb.Client) {
	t.Helper()
	ctx := context.Background()

	france, err := client.UpsertCountry(ctx, martdb.Country{
		Code: "FR", NameEN: "France", NameFR: "France", ISO3Code: "FRA",
		EUMember: "T", EFTAMember: "F", CandidateMember: "F",
	})
	require.NoError(t, err)
	germany, err := client.UpsertCountry(ctx, martdb.Country{
		Code: "DE", NameEN: "Germany", NameFR: "Allemagne", ISO3Code: "DEU",
		EUMember: "T", EFTAMember: "F", CandidateMember: "F",
	})
	require.NoError(t, err)

	sncf, err := client.UpsertOperator(ctx, martdb.Operator{
		ID: "sncf_voyageurs", Name: "SNCF Voyageurs", Country: "FR",
	})
	require.NoError(t, err)
	nightjet, err := client.UpsertOperator(ctx, martdb.Operator{
		ID: "nightjet", Name: "Nightjet", Country: "AT", IsNightOperator: true,
	})
	require.NoError(t, err)

	paris, err := client.InsertStation(ctx, martdb.Station{
		StopID: "fr:paris-gdl", Name: "Paris Gare De Lyon", Lat: 48.8443, Lon: 2.3744, CountryCode: "FR",
	})
	require.NoError(t, err)
	lyon, err := client.InsertStation(ctx, martdb.Station{
		StopID: "fr:lyon-pd", Name: "Lyon Part-Dieu", Lat: 45.7606, Lon: 4.8596, CountryCode: "FR",
	})
	require.NoError(t, err)
	berlin, err := client.InsertStation(ctx, martdb.Station{
		StopID: "de:berlin-hbf", Name: "Berlin Hbf", Lat: 52.5251, Lon: 13.3694, CountryCode: "DE",
	})
	require.NoError(t, err)

	morning, err := client.UpsertTime(ctx, "08:30:00")
	require.NoError(t, err)
	evening, err := client.UpsertTime(ctx, "22:15:00")
	require.NoError(t, err)

	date, err := client.UpsertDate(ctx, "2025-11-03")
	require.NoError(t, err)

	err = client.InsertTripSegments(ctx, []martdb.TripSegment{
		{
			CountryKey:          martdb.NullKey(france),
			OperatorKey:         martdb.NullKey(sncf),
			DepartureStationKey: martdb.NullKey(paris),
			ArrivalStationKey:   martdb.NullKey(lyon),
			DepartureTimeKey:    martdb.NullKey(morning),
			ArrivalTimeKey:      martdb.NullKey(morning),
			DateKey:             martdb.NullKey(date),
			TripBusinessID:      "trip-day-1",
		},
		{
			CountryKey:          martdb.NullKey(france),
			OperatorKey:         martdb.NullKey(nightjet),
			DepartureStationKey: martdb.NullKey(paris),
			ArrivalStationKey:   martdb.NullKey(berlin),
			DepartureTimeKey:    martdb.NullKey(evening),
			ArrivalTimeKey:      martdb.NullKey(morning),
			DateKey:             martdb.NullKey(date),
			TripBusinessID:      "trip-night-1",
			IsNight:             true,
			IsCrossBorder:       true,
		},
		{
			CountryKey:          martdb.NullKey(germany),
			OperatorKey:         martdb.NullKey(nightjet),
			DepartureStationKey: martdb.NullKey(berlin),
			ArrivalStationKey:   martdb.NullKey(paris),
			DepartureTimeKey:    martdb.NullKey(evening),
			ArrivalTimeKey:      martdb.NullKey(morning),
			DateKey:             martdb.NullKey(date),
			TripBusinessID:      "trip-night-2",
			IsNight:             true,
			IsCrossBorder:       true,
		},
	})
	require.NoError(t, err)

	require.NoError(t, client.InsertTripStops(ctx, []martdb.TripStop{
		{
			CountryCode: "FR", OperatorID: "nightjet", TripID: "trip-night-1",
			StopSequence: 0, StopID: "fr:paris-gdl", StopName: "Paris Gare De Lyon",
			StopLat: 48.8443, StopLon: 2.3744, DepartureTime: "22:15:00", DateValue: "2025-11-03",
		},
		{
			CountryCode: "FR", OperatorID: "nightjet", TripID: "trip-night-1",
			StopSequence: 1, StopID: "de:berlin-hbf", StopName: "Berlin Hbf",
			StopLat: 52.5251, StopLon: 13.3694, ArrivalTime: "08:30:00", DateValue: "2025-11-03",
		},
	}))
}

// getJSON issues a GET and decodes the response body into out.
func getJSON(t *testing.T, server *httptest.Server, path string, out any) int {
	t.Helper()

	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close() // nolint:errcheck

	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp.StatusCode
}

type fieldErrorsResponse struct {
	FieldErrors map[string][]string `json:"fieldErrors"`
}
