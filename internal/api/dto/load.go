package dto

type LoadOptimizationRequest struct {
	WeightTons          float64 `json:"weight_tons"`
	VehicleCapacityTons float64 `json:"vehicle_capacity_tons"`
	TransportMode       string  `json:"transport_mode"`
	TripDistanceKm      float64 `json:"trip_distance_km"`
}

type LoadOptimizationResponse struct {
	TransportMode       string  `json:"transport_mode"`
	WeightTons          float64 `json:"weight_tons"`
	VehicleCapacityTons float64 `json:"vehicle_capacity_tons"`
	TripDistanceKm      float64 `json:"trip_distance_km"`
	TripsTypical        int     `json:"trips_typical"`
	TripsOptimised      int     `json:"trips_optimised"`
	TripsSaved          int     `json:"trips_saved"`
	CO2PerTripKg        float64 `json:"co2_per_trip_kg"`
	CO2SavedKg          float64 `json:"co2_saved_kg"`
	UtilisationDeltaPct float64 `json:"utilisation_delta_pct"`
}
