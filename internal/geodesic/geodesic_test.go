package geodesic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInverse(t *testing.T) {
	tests := []struct {
		name             string
		latFrom, lngFrom float64
		latTo, lngTo     float64
		want             float64
		delta            float64
	}{
		{
			name:   "coincident points",
			latFrom: 37.0, lngFrom: -122.0,
			latTo: 37.0, lngTo: -122.0,
			want: 0, delta: 0,
		},
		{
			name:   "one degree of longitude on the equator",
			latFrom: 0, lngFrom: 0,
			latTo: 0, lngTo: 1,
			want: 111.3195, delta: 0.001,
		},
		{
			name:   "one degree of latitude from the equator",
			latFrom: 0, lngFrom: 0,
			latTo: 1, lngTo: 0,
			want: 110.5744, delta: 0.001,
		},
		{
			name:   "Paris to London",
			latFrom: 48.8566, lngFrom: 2.3522,
			latTo: 51.5074, lngTo: -0.1278,
			want: 344.0, delta: 0.5,
		},
		{
			name:   "short hop",
			latFrom: 37.966660, lngFrom: 23.728308,
			latTo: 37.966627, lngTo: 23.728263,
			want: 0.0054, delta: 0.0002,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Inverse(test.latFrom, test.lngFrom, test.latTo, test.lngTo)
			if test.delta == 0 {
				assert.Equal(t, test.want, got)
				return
			}
			assert.InDelta(t, test.want, got, test.delta)
		})
	}
}

func TestInverse_symmetric(t *testing.T) {
	d1 := Inverse(48.8566, 2.3522, 51.5074, -0.1278)
	d2 := Inverse(51.5074, -0.1278, 48.8566, 2.3522)

	assert.InDelta(t, d1, d2, 1e-9)
}

func TestInverse_antipodalFallback(t *testing.T) {
	// nearly antipodal pairs are where Vincenty's iteration may not
	// converge; the fallback must still produce something close to half
	// the Earth's circumference
	d := Inverse(0, 0, 0.5, 179.7)

	assert.Greater(t, d, 19000.0)
	assert.Less(t, d, 20100.0)
}

func BenchmarkInverse(b *testing.B) {
	for n := 0; n < b.N; n++ {
		_ = Inverse(48.8566, 2.3522, 51.5074, -0.1278)
	}
}
