// Package distance provides great-circle distance calculations.
//
// All distances are computed on a sphere of radius EarthRadiusKm using the
// haversine formula and are reported in kilometres.
//
// # Usage
//
//	km := distance.Haversine(a, b)
//	w := distance.WeightedSquared(a, b, population)
package distance
