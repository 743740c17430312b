// Package geodesic computes distances between geographic points on the
// WGS-84 ellipsoid.
package geodesic

import "math"

// WGS-84 ellipsoid parameters, in kilometers.
const (
	semiMajorKM = 6378.137
	flattening  = 1 / 298.257223563
	semiMinorKM = semiMajorKM * (1 - flattening)
)

const (
	degToRad      = math.Pi / 180
	convergence   = 1e-12
	maxIterations = 200
)

// meanRadiusKM is the sphere radius used by the great-circle fallback.
const meanRadiusKM = 6371.0

// Inverse returns the geodesic distance in kilometers between two points
// given in decimal degrees, using Vincenty's inverse formula. Coincident
// points yield exactly 0. For the nearly antipodal pairs where the iteration
// does not converge, the spherical great-circle distance is returned instead.
func Inverse(latFrom, lngFrom, latTo, lngTo float64) float64 {
	if latFrom == latTo && lngFrom == lngTo {
		return 0
	}

	l := (lngTo - lngFrom) * degToRad
	u1 := math.Atan((1 - flattening) * math.Tan(latFrom*degToRad))
	u2 := math.Atan((1 - flattening) * math.Tan(latTo*degToRad))
	sinU1, cosU1 := math.Sincos(u1)
	sinU2, cosU2 := math.Sincos(u2)

	lambda := l
	for i := 0; i < maxIterations; i++ {
		sinLambda, cosLambda := math.Sincos(lambda)
		sinSigma := math.Hypot(cosU2*sinLambda, cosU1*sinU2-sinU1*cosU2*cosLambda)
		if sinSigma == 0 {
			// coincident after projection onto the auxiliary sphere
			return 0
		}
		cosSigma := sinU1*sinU2 + cosU1*cosU2*cosLambda
		sigma := math.Atan2(sinSigma, cosSigma)

		sinAlpha := cosU1 * cosU2 * sinLambda / sinSigma
		cosSqAlpha := 1 - sinAlpha*sinAlpha
		var cos2SigmaM float64
		if cosSqAlpha != 0 {
			cos2SigmaM = cosSigma - 2*sinU1*sinU2/cosSqAlpha
		}
		// cosSqAlpha == 0 means an equatorial line; cos2SigmaM stays 0

		c := flattening / 16 * cosSqAlpha * (4 + flattening*(4-3*cosSqAlpha))
		prev := lambda
		lambda = l + (1-c)*flattening*sinAlpha*
			(sigma+c*sinSigma*(cos2SigmaM+c*cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)))

		if math.Abs(lambda-prev) < convergence {
			uSq := cosSqAlpha * (semiMajorKM*semiMajorKM - semiMinorKM*semiMinorKM) / (semiMinorKM * semiMinorKM)
			a := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
			b := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
			deltaSigma := b * sinSigma * (cos2SigmaM + b/4*
				(cosSigma*(-1+2*cos2SigmaM*cos2SigmaM)-
					b/6*cos2SigmaM*(-3+4*sinSigma*sinSigma)*(-3+4*cos2SigmaM*cos2SigmaM)))
			return semiMinorKM * a * (sigma - deltaSigma)
		}
	}

	return greatCircle(latFrom, lngFrom, latTo, lngTo)
}

// greatCircle is the haversine distance on a mean-radius sphere.
func greatCircle(latFrom, lngFrom, latTo, lngTo float64) float64 {
	deltaLat := (latTo - latFrom) * degToRad
	deltaLng := (lngTo - lngFrom) * degToRad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latFrom*degToRad)*math.Cos(latTo*degToRad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return meanRadiusKM * c
}
