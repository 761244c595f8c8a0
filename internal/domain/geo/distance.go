package geo

import "math"

// EarthRadiusKm is the mean Earth radius.
const EarthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineKm computes the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	lat1Rad := toRadians(lat1)
	lon1Rad := toRadians(lon1)
	lat2Rad := toRadians(lat2)
	lon2Rad := toRadians(lon2)

	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// DistanceKm is HaversineKm over optional coordinates.
//
// A nil or exactly zero coordinate counts as missing and yields +Inf, so a
// point on the equator or the prime meridian is treated as having no location.
func DistanceKm(lat1, lon1, lat2, lon2 *float64) float64 {
	if !present(lat1) || !present(lon1) || !present(lat2) || !present(lon2) {
		return math.Inf(1)
	}
	return HaversineKm(*lat1, *lon1, *lat2, *lon2)
}

func present(v *float64) bool {
	return v != nil && *v != 0
}
