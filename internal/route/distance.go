package route

import (
	"github.com/skypies/geo"
	"github.com/umahmood/haversine"
)

// Distance returns the great-circle distance in kilometres between two points,
// using the haversine formula with an Earth radius of 6371 km.
func Distance(from, to geo.Latlong) float64 {
	_, km := haversine.Distance(
		haversine.Coord{Lat: from.Lat, Lon: from.Long},
		haversine.Coord{Lat: to.Lat, Lon: to.Long},
	)
	return km
}

// DistanceKM is Distance for callers holding raw degrees.
func DistanceKM(lat1, lon1, lat2, lon2 float64) float64 {
	return Distance(geo.Latlong{Lat: lat1, Long: lon1}, geo.Latlong{Lat: lat2, Long: lon2})
}
