package services

import (
	"fmt"
	"math"
	"shipment-emissions-service/internal/domain"
)

const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance between two points in km.
func HaversineKm(a, b domain.Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Distance returns the great-circle distance between two resolved locations.
//
// Identical identifiers are a caller error and fail before any geometry runs.
func Distance(a, b domain.Location) (float64, error) {
	if a.Place == b.Place {
		return 0, fmt.Errorf("distance: %s: %w", a.Place, domain.ErrDegenerateRoute)
	}
	if !a.Resolved() {
		return 0, fmt.Errorf("distance: origin %q was never resolved: %w", a.Place, domain.ErrInvalidLocation)
	}
	if !b.Resolved() {
		return 0, fmt.Errorf("distance: destination %q was never resolved: %w", b.Place, domain.ErrInvalidLocation)
	}

	return HaversineKm(a.Coordinates, b.Coordinates), nil
}
