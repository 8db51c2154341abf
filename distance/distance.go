package distance

import (
	"math"

	"github.com/hupe1980/geoplace/model"
)

// EarthRadiusKm is the mean Earth radius in kilometres.
const EarthRadiusKm = 6371.0

const degToRad = math.Pi / 180

// Haversine returns the great-circle distance between a and b in kilometres.
func Haversine(a, b model.Coordinate) float64 {
	lat1 := a.Latitude * degToRad
	lat2 := b.Latitude * degToRad

	dLat := (a.Latitude - b.Latitude) * degToRad
	dLon := (a.Longitude - b.Longitude) * degToRad

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	// Rounding can push h marginally above 1 for antipodal points.
	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(math.Min(h, 1)))
}

// Squared returns the squared great-circle distance between a and b.
func Squared(a, b model.Coordinate) float64 {
	d := Haversine(a, b)
	return d * d
}

// WeightedSquared returns the squared great-circle distance between a and b
// multiplied by weight.
func WeightedSquared(a, b model.Coordinate, weight uint32) float64 {
	return Squared(a, b) * float64(weight)
}
