package domain

import (
	"fmt"
	"strings"
)

// Geography tells whether a route stays inside one top-level region (country).
type Geography string

const (
	SameRegion  Geography = "same_region"
	CrossRegion Geography = "cross_region"
)

// DistanceTier buckets the total route distance.
type DistanceTier string

const (
	TierShort  DistanceTier = "short"
	TierMedium DistanceTier = "medium"
	TierLong   DistanceTier = "long"
)

// RouteClass is the key of the candidate policy table.
type RouteClass struct {
	Geography Geography
	Tier      DistanceTier
}

func (c RouteClass) String() string {
	return string(c.Geography) + "/" + string(c.Tier)
}

// Leg is one mode covering a fraction of the total distance.
type Leg struct {
	Mode  TransportMode
	Ratio float64
}

// Strategy is an ordered list of one or two legs whose ratios sum to 1.
type Strategy struct {
	Legs []Leg
}

// Name renders the strategy as e.g. "Ship 90% + Train 10%".
func (s Strategy) Name() string {
	parts := make([]string, 0, len(s.Legs))
	for _, l := range s.Legs {
		parts = append(parts, fmt.Sprintf("%s %.0f%%", l.Mode, l.Ratio*100))
	}
	return strings.Join(parts, " + ")
}

// RouteSegment is a leg evaluated against a concrete distance and weight.
type RouteSegment struct {
	Mode       TransportMode
	Ratio      float64
	DistanceKm float64
	CO2Kg      float64
}

// CandidateResult records the total emissions of one evaluated strategy.
type CandidateResult struct {
	Strategy   Strategy
	TotalCO2Kg float64
}

// Represents the lowest-emission strategy found for a shipment.
// It is computed fresh per request and holds no references to shared state.
type OptimizationResult struct {
	Origin            Place
	Destination       Place
	Class             RouteClass
	Strategy          Strategy
	Segments          []RouteSegment
	DistanceKm        float64
	WeightTons        float64
	TotalCO2Kg        float64
	BaselineMode      TransportMode
	BaselineCO2Kg     float64
	SavingsKg         float64
	PreferLowEmission bool
	Candidates        []CandidateResult
}
