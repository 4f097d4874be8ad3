package domain

// RouteReport is the presentation-ready view of an OptimizationResult.
// Figures are rounded to two decimals.
type RouteReport struct {
	Origin        Place
	Destination   Place
	RouteClass    string
	Strategy      string
	DistanceKm    float64
	WeightTons    float64
	TotalCO2Kg    float64
	BaselineMode  TransportMode
	BaselineCO2Kg float64
	SavingsKg     float64
	SavingsPct    float64
	Segments      []SegmentReport
}

type SegmentReport struct {
	Mode       TransportMode
	Ratio      float64
	DistanceKm float64
	CO2Kg      float64
}
