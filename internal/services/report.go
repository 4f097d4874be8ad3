package services

import (
	"math"
	"shipment-emissions-service/internal/domain"
)

// Report turns an optimization result into its presentation form.
// Pure; figures are rounded to two decimals.
func Report(r domain.OptimizationResult) domain.RouteReport {
	pct := 0.0
	if r.BaselineCO2Kg > 0 {
		pct = r.SavingsKg / r.BaselineCO2Kg * 100
	}

	segments := make([]domain.SegmentReport, 0, len(r.Segments))
	for _, s := range r.Segments {
		segments = append(segments, domain.SegmentReport{
			Mode:       s.Mode,
			Ratio:      s.Ratio,
			DistanceKm: round2(s.DistanceKm),
			CO2Kg:      round2(s.CO2Kg),
		})
	}

	return domain.RouteReport{
		Origin:        r.Origin,
		Destination:   r.Destination,
		RouteClass:    r.Class.String(),
		Strategy:      r.Strategy.Name(),
		DistanceKm:    round2(r.DistanceKm),
		WeightTons:    r.WeightTons,
		TotalCO2Kg:    round2(r.TotalCO2Kg),
		BaselineMode:  r.BaselineMode,
		BaselineCO2Kg: round2(r.BaselineCO2Kg),
		SavingsKg:     round2(r.SavingsKg),
		SavingsPct:    round2(pct),
		Segments:      segments,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
