package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in decimal degrees (WGS84).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Validate reports whether the coordinates lie inside the WGS84 ranges.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Lat) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidLocation, c.Lat)
	}
	if math.IsNaN(c.Lon) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidLocation, c.Lon)
	}
	return nil
}

// Build coordinates from an external [lon, lat] pair (GeoJSON order).
func CoordinatesFromList(v []float64) (Coordinates, error) {
	if len(v) != 2 {
		return Coordinates{}, fmt.Errorf("%w: expected [lon, lat], got %d values", ErrInvalidLocation, len(v))
	}
	c := Coordinates{Lon: v[0], Lat: v[1]}
	if err := c.Validate(); err != nil {
		return Coordinates{}, err
	}
	return c, nil
}
