package emissions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_ComputeDistances(t *testing.T) {
	ds := &Dataset{Trips: []Trip{
		{
			Origin:      Point{Lat: 48.8566, Lng: 2.3522},
			Destination: Point{Lat: 51.5074, Lng: -0.1278},
		},
		{
			Origin:      Point{},
			Destination: Point{},
		},
	}}

	require.NoError(t, ds.ComputeDistances(context.TODO(), 1))

	// Paris to London on the WGS-84 ellipsoid
	assert.InDelta(t, 344.0, ds.Trips[0].DistanceKM, 0.5)
	// coincident points are exactly zero
	assert.Equal(t, 0.0, ds.Trips[1].DistanceKM)
}

func TestDataset_ComputeDistances_orderPreserved(t *testing.T) {
	var trips []Trip
	for i := 0; i < 50; i++ {
		lng := float64(i) * 0.01
		trips = append(trips, Trip{
			Origin:      Point{Lat: 0, Lng: 0},
			Destination: Point{Lat: 0, Lng: lng},
		})
	}
	ds := &Dataset{Trips: trips}

	require.NoError(t, ds.ComputeDistances(context.TODO(), 8))

	for i := 1; i < len(ds.Trips); i++ {
		assert.Greater(t, ds.Trips[i].DistanceKM, ds.Trips[i-1].DistanceKM, "row %d", i)
	}
}

func TestDataset_ComputeDistances_rangeError(t *testing.T) {
	tests := []struct {
		name  string
		trip  Trip
		field string
		value float64
	}{
		{
			name: "latitude above 90",
			trip: Trip{
				Origin:      Point{Lat: 95.0, Lng: 0},
				Destination: Point{},
			},
			field: ColOriginLat,
			value: 95.0,
		},
		{
			name: "longitude below -180",
			trip: Trip{
				Origin:      Point{},
				Destination: Point{Lat: 0, Lng: -181.0},
			},
			field: ColDestLng,
			value: -181.0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ds := &Dataset{Trips: []Trip{
				{Origin: Point{Lat: 1, Lng: 1}, Destination: Point{Lat: 2, Lng: 2}},
				test.trip,
			}}

			err := ds.ComputeDistances(context.TODO(), 1)

			var rangeErr *CoordinateRangeError
			require.ErrorAs(t, err, &rangeErr)
			assert.Equal(t, 1, rangeErr.Index)
			assert.Equal(t, test.field, rangeErr.Field)
			assert.Equal(t, test.value, rangeErr.Value)
		})
	}
}

func TestDataset_ComputeDistances_idempotent(t *testing.T) {
	ds := &Dataset{Trips: []Trip{
		{Origin: Point{Lat: 37.0, Lng: -122.0}, Destination: Point{Lat: 37.5, Lng: -122.5}},
		{Origin: Point{Lat: 40.0, Lng: 15.0}, Destination: Point{Lat: 40.1, Lng: 15.1}},
	}}

	require.NoError(t, ds.ComputeDistances(context.TODO(), 2))
	first := append([]Trip(nil), ds.Trips...)

	require.NoError(t, ds.ComputeDistances(context.TODO(), 2))
	assert.Equal(t, first, ds.Trips)
}

func TestDataset_ComputeDistances_badWorkers(t *testing.T) {
	ds := &Dataset{}

	err := ds.ComputeDistances(context.TODO(), 0)

	var confErr *ConfigurationError
	require.ErrorAs(t, err, &confErr)
}

func BenchmarkComputeDistances(b *testing.B) {
	trips := make([]Trip, 1000)
	for i := range trips {
		trips[i] = Trip{
			Origin:      Point{Lat: 37.0, Lng: -122.0},
			Destination: Point{Lat: 37.0 + float64(i)*0.0001, Lng: -122.0},
		}
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		ds := &Dataset{Trips: append([]Trip(nil), trips...)}
		_ = ds.ComputeDistances(context.TODO(), 4)
	}
}
