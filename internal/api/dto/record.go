package dto

import "time"

type RecordResponse struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Destination   string    `json:"destination"`
	TransportMode string    `json:"transport_mode"`
	DistanceKm    float64   `json:"distance_km"`
	CO2Kg         float64   `json:"co2_kg"`
	WeightTons    float64   `json:"weight_tons"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListRecordResponse struct {
	Records []RecordResponse `json:"records"`
}
