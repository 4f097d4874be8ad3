package ports

import (
	"context"
	"shipment-emissions-service/internal/domain"
)

// LocationCatalog lists operator-managed places held outside the built-in table.
type LocationCatalog interface {
	All(ctx context.Context) ([]domain.Location, error)
}
