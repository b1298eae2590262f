// server/internal/geo/distance.go
package geo

import "math"

const earthRadiusMetres = 6371000

// Distance returns the great-circle distance in metres between two
// coordinates, using the haversine formula.
func Distance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLng := toRad(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMetres * c
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Verification outcomes for an attendance check-in.
const (
	StatusVerified = "verified"
	StatusFailed   = "failed"
	StatusSkipped  = "skipped"
)

// DefaultRadius is the geofence radius in metres applied when a project does
// not configure one.
const DefaultRadius = 50

// VerifyCheckIn checks a reported position against a project geofence.
// Verification is skipped when the project has GPS disabled or has no
// coordinates configured. A zero radius falls back to DefaultRadius.
func VerifyCheckIn(gpsEnabled bool, siteLat, siteLng, radius, lat, lng float64) (status string, distance float64) {
	if !gpsEnabled || siteLat == 0 || siteLng == 0 {
		return StatusSkipped, 0
	}
	if radius <= 0 {
		radius = DefaultRadius
	}
	distance = Distance(siteLat, siteLng, lat, lng)
	if distance <= radius {
		return StatusVerified, distance
	}
	return StatusFailed, distance
}
