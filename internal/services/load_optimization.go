package services

import (
	"fmt"
	"shipment-emissions-service/internal/domain"
)

const (
	TypicalUtilisation   = 0.90
	OptimisedUtilisation = 0.98

	// Reference trip length used to price one full-vehicle trip.
	DefaultTripDistanceKm = 100.0
)

// LoadOptimization compares the trips needed at typical vs optimised loading.
type LoadOptimization struct {
	Mode             domain.TransportMode
	WeightTons       float64
	CapacityTons     float64
	TripDistanceKm   float64
	TripsTypical     int
	TripsOptimised   int
	TripsSaved       int
	CO2PerTripKg     float64
	CO2SavedKg       float64
	UtilisationDelta float64
}

// OptimizeLoad estimates the trips saved by packing vehicles to 98% instead
// of 90%, and the CO2 of those trips: each saved trip is a full vehicle
// travelling tripKm under mode.
//
// CO2 saved is trips × tripKm × factor × capacityTons. The capacity term
// makes this a per-ton figure like every other emission in the service, so it
// is larger than a per-vehicle estimate of trips × tripKm × factor by the
// vehicle's capacity.
func OptimizeLoad(model *EmissionModel, mode domain.TransportMode, weightTons, capacityTons, tripKm float64) (*LoadOptimization, error) {
	if tripKm == 0 {
		tripKm = DefaultTripDistanceKm
	}

	vehicle, err := domain.NewVehicle(mode, capacityTons)
	if err != nil {
		return nil, fmt.Errorf("optimize load: %w", err)
	}

	typical, err := vehicle.Trips(weightTons, TypicalUtilisation)
	if err != nil {
		return nil, fmt.Errorf("optimize load: %w", err)
	}
	optimised, err := vehicle.Trips(weightTons, OptimisedUtilisation)
	if err != nil {
		return nil, fmt.Errorf("optimize load: %w", err)
	}

	perTrip, err := model.Emissions(mode, tripKm, capacityTons)
	if err != nil {
		return nil, fmt.Errorf("optimize load: %w", err)
	}

	saved := typical - optimised
	return &LoadOptimization{
		Mode:             mode,
		WeightTons:       weightTons,
		CapacityTons:     capacityTons,
		TripDistanceKm:   tripKm,
		TripsTypical:     typical,
		TripsOptimised:   optimised,
		TripsSaved:       saved,
		CO2PerTripKg:     round2(perTrip),
		CO2SavedKg:       round2(float64(saved) * perTrip),
		UtilisationDelta: round2((OptimisedUtilisation - TypicalUtilisation) * 100),
	}, nil
}
