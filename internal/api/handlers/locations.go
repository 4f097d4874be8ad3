package handlers

import (
	"net/http"
	"shipment-emissions-service/internal/api/dto"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/ports"
	"shipment-emissions-service/internal/services"
)

type LocationHandler struct {
	Table *services.LocationTable
	Model *services.EmissionModel
	// Catalog is optional; when set its places follow the built-in ones.
	Catalog ports.LocationCatalog
}

// List returns the built-in location table, then catalog places the table
// does not already hold.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	locations := h.Table.All()
	res := dto.ListLocationResponse{Locations: make([]dto.LocationResponse, 0, len(locations))}
	for _, l := range locations {
		res.Locations = append(res.Locations, toLocationResponse(l, "builtin"))
	}

	if h.Catalog != nil {
		extra, err := h.Catalog.All(r.Context())
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		for _, l := range extra {
			if _, ok := h.Table.Lookup(l.Place); ok {
				continue
			}
			res.Locations = append(res.Locations, toLocationResponse(l, "catalog"))
		}
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toLocationResponse(l domain.Location, source string) dto.LocationResponse {
	return dto.LocationResponse{
		Country: l.Country,
		City:    l.City,
		Lat:     l.Coordinates.Lat,
		Lon:     l.Coordinates.Lon,
		Source:  source,
	}
}

// Modes returns the emission factor table.
func (h *LocationHandler) Modes(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	factors := h.Model.Factors()
	res := dto.ListTransportModeResponse{Modes: make([]dto.TransportModeResponse, 0, len(factors))}
	for _, f := range factors {
		res.Modes = append(res.Modes, dto.TransportModeResponse{
			Mode:       string(f.Mode),
			Class:      string(f.Class),
			KgPerTonKm: f.KgPerTonKm,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
