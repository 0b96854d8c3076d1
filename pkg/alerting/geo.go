package alerting

import "math"

// earthRadiusKm is the mean Earth radius used for great-circle distances.
const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance between two points in km.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * earthRadiusKm
}

// ImpactRadius estimates the distance within which an earthquake of the given
// magnitude is locally relevant. It is an inclusion radius for alerting, not
// a physical claim.
func ImpactRadius(magnitude float64) float64 {
	switch {
	case magnitude >= 8.0:
		return 1000
	case magnitude >= 7.0:
		return 500
	case magnitude >= 6.0:
		return 200
	case magnitude >= 5.0:
		return 100
	default:
		return 50
	}
}
