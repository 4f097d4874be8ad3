package handlers

import (
	"net/http"
	"shipment-emissions-service/internal/api/dto"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/services"
	"strings"
)

type LoadHandler struct {
	Model *services.EmissionModel
}

// Optimize compares trips at typical and optimised vehicle loading.
func (h *LoadHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.LoadOptimizationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode := domain.TransportMode(strings.TrimSpace(req.TransportMode))
	if mode == "" {
		mode = domain.ModeTruck
	}

	res, err := services.OptimizeLoad(h.Model, mode, req.WeightTons, req.VehicleCapacityTons, req.TripDistanceKm)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoadOptimizationResponse{
		TransportMode:       string(res.Mode),
		WeightTons:          res.WeightTons,
		VehicleCapacityTons: res.CapacityTons,
		TripDistanceKm:      res.TripDistanceKm,
		TripsTypical:        res.TripsTypical,
		TripsOptimised:      res.TripsOptimised,
		TripsSaved:          res.TripsSaved,
		CO2PerTripKg:        res.CO2PerTripKg,
		CO2SavedKg:          res.CO2SavedKg,
		UtilisationDeltaPct: res.UtilisationDelta,
	})
}
