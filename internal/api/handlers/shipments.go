package handlers

import (
	"net/http"
	"shipment-emissions-service/internal/api/dto"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/services"
	"strings"
)

type ShipmentHandler struct {
	Service *services.ShipmentService
	// Pricer is optional; without it responses carry no carbon value.
	Pricer *services.CarbonPricer
}

// Emissions estimates a shipment moved by a single transport mode.
func (h *ShipmentHandler) Emissions(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.EmissionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode := strings.TrimSpace(req.TransportMode)
	if mode == "" {
		writeError(w, r, http.StatusBadRequest, "transport_mode is required")
		return
	}

	report, err := h.Service.Evaluate(r.Context(), domain.ShipmentRequest{
		Origin:        toPlace(req.Origin),
		Destination:   toPlace(req.Destination),
		WeightTons:    req.WeightTons,
		TransportMode: domain.TransportMode(mode),
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(report))
}

// Optimize searches the mode splits for the lowest-emission route.
func (h *ShipmentHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.OptimizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Checked before Evaluate, which persists a record.
	var currency string
	if h.Pricer != nil {
		code, err := h.Pricer.Currency(req.Currency)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		currency = code
	}

	report, err := h.Service.Evaluate(r.Context(), domain.ShipmentRequest{
		Origin:            toPlace(req.Origin),
		Destination:       toPlace(req.Destination),
		WeightTons:        req.WeightTons,
		PreferLowEmission: req.PreferLowEmissionModes,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := toRouteResponse(report)
	if h.Pricer != nil {
		value, err := h.Pricer.Value(report.SavingsKg, currency)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		res.CarbonValue = &dto.CarbonValueResponse{
			Currency:    currency,
			PricePerTon: h.Pricer.PricePerTon(),
			Savings:     value,
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toPlace(p dto.PlaceRequest) domain.Place {
	return domain.Place{Country: strings.TrimSpace(p.Country), City: strings.TrimSpace(p.City)}
}

func toRouteResponse(r *domain.RouteReport) dto.RouteResponse {
	segments := make([]dto.SegmentResponse, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, dto.SegmentResponse{
			Mode:       string(s.Mode),
			Ratio:      s.Ratio,
			DistanceKm: s.DistanceKm,
			CO2Kg:      s.CO2Kg,
		})
	}

	return dto.RouteResponse{
		Origin:        dto.PlaceResponse{Country: r.Origin.Country, City: r.Origin.City},
		Destination:   dto.PlaceResponse{Country: r.Destination.Country, City: r.Destination.City},
		RouteClass:    r.RouteClass,
		Strategy:      r.Strategy,
		DistanceKm:    r.DistanceKm,
		WeightTons:    r.WeightTons,
		TotalCO2Kg:    r.TotalCO2Kg,
		BaselineMode:  string(r.BaselineMode),
		BaselineCO2Kg: r.BaselineCO2Kg,
		SavingsKg:     r.SavingsKg,
		SavingsPct:    r.SavingsPct,
		Segments:      segments,
	}
}
