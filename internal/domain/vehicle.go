package domain

import (
	"fmt"
	"math"
)

// MaxTrips bounds Trips so the count always fits an int.
const MaxTrips = math.MaxInt32

// Vehicle is a road vehicle with a payload capacity, used for load planning.
type Vehicle struct {
	Mode         TransportMode
	CapacityTons float64
}

func NewVehicle(mode TransportMode, capacityTons float64) (*Vehicle, error) {
	if capacityTons <= 0 || math.IsNaN(capacityTons) || math.IsInf(capacityTons, 0) {
		return nil, fmt.Errorf("new vehicle: %w: capacity must be positive (got %v)", ErrInvalidQuantity, capacityTons)
	}
	return &Vehicle{Mode: mode, CapacityTons: capacityTons}, nil
}

// Trips returns how many trips move weightTons when each trip is loaded to
// the given utilisation (0, 1] of capacity.
func (v *Vehicle) Trips(weightTons, utilisation float64) (int, error) {
	if weightTons <= 0 || math.IsNaN(weightTons) || math.IsInf(weightTons, 0) {
		return 0, fmt.Errorf("vehicle trips: %w: weight must be positive (got %v)", ErrInvalidQuantity, weightTons)
	}
	if !(utilisation > 0 && utilisation <= 1) {
		return 0, fmt.Errorf("vehicle trips: %w: utilisation must be in (0, 1] (got %v)", ErrInvalidQuantity, utilisation)
	}

	trips := math.Ceil(weightTons / (v.CapacityTons * utilisation))
	if trips > MaxTrips {
		return 0, fmt.Errorf("vehicle trips: %w: %v trips exceeds the limit of %d", ErrInvalidQuantity, trips, MaxTrips)
	}
	return int(trips), nil
}
