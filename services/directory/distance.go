package directory

import (
	"math"
	"sort"

	"groomer/models"
)

// Haversine calculates the great-circle distance (in km) between two lat/lng
// points in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}

// SortByDistance attaches the distance from pos to every salon and sorts the
// slice ascending by it, in place. The sort is stable so equidistant salons
// keep their server order.
func SortByDistance(salons []models.Salon, pos models.GeoPoint) {
	for i := range salons {
		d := Haversine(pos.Lat, pos.Lng, salons[i].Location.Lat, salons[i].Location.Lng)
		salons[i].DistanceKm = &d
	}
	sort.SliceStable(salons, func(i, j int) bool {
		return *salons[i].DistanceKm < *salons[j].DistanceKm
	})
}
