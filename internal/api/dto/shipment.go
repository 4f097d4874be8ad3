package dto

import "github.com/shopspring/decimal"

type PlaceRequest struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type EmissionRequest struct {
	Origin        PlaceRequest `json:"origin"`
	Destination   PlaceRequest `json:"destination"`
	WeightTons    float64      `json:"weight_tons"`
	TransportMode string       `json:"transport_mode"`
}

type OptimizeRequest struct {
	Origin                 PlaceRequest `json:"origin"`
	Destination            PlaceRequest `json:"destination"`
	WeightTons             float64      `json:"weight_tons"`
	PreferLowEmissionModes bool         `json:"prefer_low_emission_modes"`
	Currency               string       `json:"currency"`
}

type PlaceResponse struct {
	Country string `json:"country"`
	City    string `json:"city"`
}

type SegmentResponse struct {
	Mode       string  `json:"mode"`
	Ratio      float64 `json:"ratio"`
	DistanceKm float64 `json:"distance_km"`
	CO2Kg      float64 `json:"co2_kg"`
}

type CarbonValueResponse struct {
	Currency    string          `json:"currency"`
	PricePerTon decimal.Decimal `json:"price_per_ton_eur"`
	Savings     decimal.Decimal `json:"savings"`
}

type RouteResponse struct {
	Origin        PlaceResponse        `json:"origin"`
	Destination   PlaceResponse        `json:"destination"`
	RouteClass    string               `json:"route_class"`
	Strategy      string               `json:"strategy"`
	DistanceKm    float64              `json:"distance_km"`
	WeightTons    float64              `json:"weight_tons"`
	TotalCO2Kg    float64              `json:"total_co2_kg"`
	BaselineMode  string               `json:"baseline_mode"`
	BaselineCO2Kg float64              `json:"baseline_co2_kg"`
	SavingsKg     float64              `json:"savings_kg"`
	SavingsPct    float64              `json:"savings_pct"`
	Segments      []SegmentResponse    `json:"segments"`
	CarbonValue   *CarbonValueResponse `json:"carbon_value,omitempty"`
}
