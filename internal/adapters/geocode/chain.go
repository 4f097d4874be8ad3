package geocode

import (
	"context"
	"errors"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/ports"
)

// Chain asks each lookup in order and returns the first hit.
//
// A failing lookup does not stop the chain; its error is returned only when
// no later lookup answers.
type Chain []ports.CoordinateLookup

func (c Chain) LookupCoordinates(ctx context.Context, place domain.Place) (domain.Coordinates, bool, error) {
	var errs []error
	for _, l := range c {
		if l == nil {
			continue
		}
		coords, found, err := l.LookupCoordinates(ctx, place)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if found {
			return coords, true, nil
		}
	}
	return domain.Coordinates{}, false, errors.Join(errs...)
}
