package geo

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle math.
const earthRadiusKm = 6371.0

// Distance returns the haversine great-circle distance in kilometers
// between two coordinates, rounded to one decimal place. It is symmetric
// and zero for identical points.
func Distance(fromLat, fromLng, toLat, toLng float64) float64 {
	dLat := toRad(toLat - fromLat)
	dLng := toRad(toLng - fromLng)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(fromLat))*math.Cos(toRad(toLat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return math.Round(earthRadiusKm*c*10) / 10
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}
