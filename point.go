package emissions

// microPerDegree is the scale of the raw coordinate encoding: decimal
// degrees multiplied by 1e6 and stored as integers.
const microPerDegree = 1e6

// Point holds a geographic coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// PointFromMicro decodes a microdegree coordinate pair into decimal degrees.
func PointFromMicro(lat, lng float64) Point {
	return Point{
		Lat: lat / microPerDegree,
		Lng: lng / microPerDegree,
	}
}
