package domain

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentRequest is the caller-facing input of one evaluation.
// An empty TransportMode asks for optimization instead of a single-mode estimate.
type ShipmentRequest struct {
	Origin            Place
	Destination       Place
	WeightTons        float64
	TransportMode     TransportMode
	PreferLowEmission bool
}

// Optimize reports whether the request asks for a mode-split search.
func (r ShipmentRequest) Optimize() bool { return r.TransportMode == "" }

// EmissionRecord is a persisted evaluation. TransportMode holds the mode for
// single-mode estimates and the strategy name for optimized routes.
type EmissionRecord struct {
	ID            uuid.UUID
	Source        string
	Destination   string
	TransportMode string
	DistanceKm    float64
	CO2Kg         float64
	WeightTons    float64
	CreatedAt     time.Time
}
