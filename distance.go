package emissions

import (
	"context"

	"github.com/greenhaul/emissions/internal/geodesic"
	"github.com/greenhaul/emissions/internal/pipeline"
)

// ComputeDistances populates DistanceKM for every trip with the geodesic
// distance between its origin and destination. Trips are independent, so the
// pass runs as an ordered map bounded by workers; row order is preserved.
//
// A coordinate outside valid angular bounds fails the whole batch with a
// *CoordinateRangeError naming the trip, rather than letting NaN leak into
// downstream aggregates.
func (d *Dataset) ComputeDistances(ctx context.Context, workers int) error {
	if workers <= 0 {
		return &ConfigurationError{Reason: "workers must be greater than 0"}
	}

	trips := d.Trips
	return pipeline.Map(ctx, workers, len(trips), func(i int) error {
		t := &trips[i]
		if err := checkTripRange(i, t); err != nil {
			return err
		}

		if t.Origin == t.Destination {
			t.DistanceKM = 0
			return nil
		}

		t.DistanceKM = geodesic.Inverse(t.Origin.Lat, t.Origin.Lng, t.Destination.Lat, t.Destination.Lng)
		return nil
	})
}

func checkTripRange(index int, t *Trip) error {
	for _, c := range []struct {
		field string
		value float64
		lo    float64
		hi    float64
	}{
		{ColOriginLat, t.Origin.Lat, -90, 90},
		{ColOriginLng, t.Origin.Lng, -180, 180},
		{ColDestLat, t.Destination.Lat, -90, 90},
		{ColDestLng, t.Destination.Lng, -180, 180},
	} {
		if c.value < c.lo || c.value > c.hi {
			return &CoordinateRangeError{Index: index, Field: c.field, Value: c.value}
		}
	}
	return nil
}
