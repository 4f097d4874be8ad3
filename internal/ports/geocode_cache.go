package ports

import (
	"context"
	"shipment-emissions-service/internal/domain"
)

// Port: a cache of place -> coordinate results from external lookups.
type GeocodeCache interface {
	Get(ctx context.Context, place domain.Place) (domain.Coordinates, bool, error)
	Put(ctx context.Context, place domain.Place, c domain.Coordinates) error
}
