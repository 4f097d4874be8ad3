package handlers

import (
	"net/http"
	"shipment-emissions-service/internal/api/dto"
	"shipment-emissions-service/internal/ports"
	"strconv"
	"strings"
)

type RecordHandler struct {
	Repo ports.EmissionRecordRepository
}

// List returns stored emission records, newest first.
func (h *RecordHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "record storage is not configured")
		return
	}

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.Repo.ListRecords(r.Context(), limit)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res := dto.ListRecordResponse{Records: make([]dto.RecordResponse, 0, len(records))}
	for _, rec := range records {
		res.Records = append(res.Records, dto.RecordResponse{
			ID:            rec.ID.String(),
			Source:        rec.Source,
			Destination:   rec.Destination,
			TransportMode: rec.TransportMode,
			DistanceKm:    rec.DistanceKm,
			CO2Kg:         rec.CO2Kg,
			WeightTons:    rec.WeightTons,
			CreatedAt:     rec.CreatedAt,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
