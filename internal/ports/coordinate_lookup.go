package ports

import (
	"context"
	"shipment-emissions-service/internal/domain"
)

// Contract for an external collaborator that maps a place to coordinates
// (location catalog, geocoding API).
type CoordinateLookup interface {
	// Return coordinates for the place. found is false on a clean miss;
	// err is reserved for failures of the collaborator itself.
	LookupCoordinates(ctx context.Context, place domain.Place) (c domain.Coordinates, found bool, err error)
}
