package martdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertTripSegmentRejectsMissingDimension(t *testing.T) {
	client := newTestClient(t)
	f := seedMart(t, client)
	ctx := context.Background()

	_, err := client.InsertTripSegment(ctx, TripSegment{
		CountryKey:     NullKey(99999),
		OperatorKey:    NullKey(f.SNCF),
		TripBusinessID: "trip-bad-country",
	})
	require.ErrorIs(t, err, ErrForeignKey)

	trips, err := client.QueryTrips(ctx, TripFilter{})
	require.NoError(t, err)
	assert.Len(t, trips, 3, "failed insert must not add a fact row")
}

func TestInsertTripSegmentAllowsNullDimensionKeys(t *testing.T) {
	client := newTestClient(t)
	seedMart(t, client)
	ctx := context.Background()

	key, err := client.InsertTripSegment(ctx, TripSegment{TripBusinessID: "trip-orphan"})
	require.NoError(t, err)
	assert.Positive(t, key)

	trips, err := client.QueryTrips(ctx, TripFilter{})
	require.NoError(t, err)
	require.Len(t, trips, 4)

	last := trips[3]
	assert.Equal(t, "trip-orphan", last.TripBusinessID.String)
	assert.False(t, last.CountryCode.Valid)
	assert.False(t, last.DepartureStation.Valid)
}

func TestInsertTripSegmentsBatchIsAtomic(t *testing.T) {
	client := newTestClient(t)
	f := seedMart(t, client)
	ctx := context.Background()

	err := client.InsertTripSegments(ctx, []TripSegment{
		{CountryKey: NullKey(f.France), TripBusinessID: "trip-ok"},
		{CountryKey: NullKey(99999), TripBusinessID: "trip-broken"},
	})
	require.ErrorIs(t, err, ErrForeignKey)

	trips, err := client.QueryTrips(ctx, TripFilter{})
	require.NoError(t, err)
	assert.Len(t, trips, 3, "a failed batch must roll back every row, including the valid ones")
}

func TestInsertTripSegmentsBatchCommitsAllRows(t *testing.T) {
	client := newTestClient(t)
	f := seedMart(t, client)
	ctx := context.Background()

	err := client.InsertTripSegments(ctx, []TripSegment{
		{CountryKey: NullKey(f.France), OperatorKey: NullKey(f.SNCF), TripBusinessID: "trip-a"},
		{CountryKey: NullKey(f.Germany), OperatorKey: NullKey(f.Nightjet), TripBusinessID: "trip-b"},
	})
	require.NoError(t, err)

	counts, err := client.TableCounts(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, counts["fact_trip_segment"])
}
