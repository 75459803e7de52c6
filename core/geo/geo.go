// Package geo provides straight-line geographic calculations. Geodesic
// distance is the accepted approximation for tour planning; real road
// networks are out of scope.
package geo

import (
	"math"

	"github.com/fieldplan/tourplan/core/model"
)

const earthRadiusKm = 6371.0

// DistanceKm returns the haversine distance between two coordinates in
// kilometers.
func DistanceKm(a, b model.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

// TravelHours converts a distance to driving time at the given average speed.
// A non-positive speed yields zero to keep pathological configs from
// producing negative schedules.
func TravelHours(distanceKm, speedKmh float64) float64 {
	if speedKmh <= 0 {
		return 0
	}
	return distanceKm / speedKmh
}
