package services

import (
	"fmt"
	"math"
	"shipment-emissions-service/internal/domain"
)

// Relative tolerance under which two candidate totals count as equal.
const emissionTieTolerance = 1e-9

// Optimizer picks the lowest-emission strategy for a route class.
// It holds only frozen tables and is safe for concurrent use.
type Optimizer struct {
	model    *EmissionModel
	policy   *PolicyTable
	baseline domain.TransportMode
}

type OptimizerOption func(*Optimizer)

// WithBaselineMode overrides the single-mode comparison (Truck by default).
func WithBaselineMode(mode domain.TransportMode) OptimizerOption {
	return func(o *Optimizer) { o.baseline = mode }
}

// NewOptimizer fails if the policy table misses a route class, references an
// unregistered mode, or the baseline mode is unknown.
func NewOptimizer(model *EmissionModel, policy *PolicyTable, opts ...OptimizerOption) (*Optimizer, error) {
	if model == nil || policy == nil {
		return nil, fmt.Errorf("new optimizer: model and policy table are required")
	}

	o := &Optimizer{model: model, policy: policy, baseline: domain.ModeTruck}
	for _, opt := range opts {
		opt(o)
	}

	if _, err := model.Factor(o.baseline); err != nil {
		return nil, fmt.Errorf("new optimizer: baseline: %w", err)
	}

	for _, class := range AllRouteClasses() {
		strategies, err := policy.Strategies(class)
		if err != nil {
			return nil, fmt.Errorf("new optimizer: %w", err)
		}
		for _, s := range strategies {
			for _, l := range s.Legs {
				if _, err := model.Factor(l.Mode); err != nil {
					return nil, fmt.Errorf("new optimizer: %s strategy %q: %w", class, s.Name(), err)
				}
			}
		}
	}

	return o, nil
}

func (o *Optimizer) Model() *EmissionModel { return o.model }

func (o *Optimizer) BaselineMode() domain.TransportMode { return o.baseline }

// Optimize evaluates every candidate of the route's class and returns the one
// with the strictly lowest total. Equal totals keep the earlier candidate.
func (o *Optimizer) Optimize(origin, destination domain.Place, distanceKm, weightTons float64, preferGreen bool) (*domain.OptimizationResult, error) {
	if err := validateQuantities(distanceKm, weightTons); err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	class := Classify(origin, destination, distanceKm)
	strategies, err := o.policy.Strategies(class)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	if preferGreen {
		strategies = SubstituteGreen(strategies, o.model)
	}

	var (
		best         domain.Strategy
		bestSegments []domain.RouteSegment
		bestTotal    float64
		found        bool
	)
	candidates := make([]domain.CandidateResult, 0, len(strategies))

	for _, s := range strategies {
		segments, total, err := o.evaluate(s, distanceKm, weightTons)
		if err != nil {
			return nil, fmt.Errorf("optimize: %s strategy %q: %w", class, s.Name(), err)
		}
		candidates = append(candidates, domain.CandidateResult{Strategy: s, TotalCO2Kg: total})

		if !found || lowerEmission(total, bestTotal) {
			best, bestSegments, bestTotal, found = s, segments, total, true
		}
	}
	if !found {
		return nil, fmt.Errorf("optimize: %s produced no candidates: %w", class, domain.ErrPolicyGap)
	}

	return o.result(origin, destination, class, best, bestSegments, bestTotal, distanceKm, weightTons, preferGreen, candidates)
}

// Estimate computes a single-mode shipment as a one-leg strategy so that it
// reports the same way an optimized route does.
func (o *Optimizer) Estimate(origin, destination domain.Place, mode domain.TransportMode, distanceKm, weightTons float64) (*domain.OptimizationResult, error) {
	if err := validateQuantities(distanceKm, weightTons); err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	s := domain.Strategy{Legs: []domain.Leg{{Mode: mode, Ratio: 1.0}}}
	segments, total, err := o.evaluate(s, distanceKm, weightTons)
	if err != nil {
		return nil, fmt.Errorf("estimate: %w", err)
	}

	class := Classify(origin, destination, distanceKm)
	candidates := []domain.CandidateResult{{Strategy: s, TotalCO2Kg: total}}

	return o.result(origin, destination, class, s, segments, total, distanceKm, weightTons, false, candidates)
}

func (o *Optimizer) result(
	origin, destination domain.Place,
	class domain.RouteClass,
	s domain.Strategy,
	segments []domain.RouteSegment,
	total, distanceKm, weightTons float64,
	preferGreen bool,
	candidates []domain.CandidateResult,
) (*domain.OptimizationResult, error) {
	baseline, err := o.model.Emissions(o.baseline, distanceKm, weightTons)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	return &domain.OptimizationResult{
		Origin:            origin,
		Destination:       destination,
		Class:             class,
		Strategy:          s,
		Segments:          segments,
		DistanceKm:        distanceKm,
		WeightTons:        weightTons,
		TotalCO2Kg:        total,
		BaselineMode:      o.baseline,
		BaselineCO2Kg:     baseline,
		SavingsKg:         baseline - total,
		PreferLowEmission: preferGreen,
		Candidates:        candidates,
	}, nil
}

func (o *Optimizer) evaluate(s domain.Strategy, distanceKm, weightTons float64) ([]domain.RouteSegment, float64, error) {
	segments := make([]domain.RouteSegment, 0, len(s.Legs))
	total := 0.0

	for _, l := range s.Legs {
		legKm := distanceKm * l.Ratio
		co2, err := o.model.Emissions(l.Mode, legKm, weightTons)
		if err != nil {
			return nil, 0, err
		}
		segments = append(segments, domain.RouteSegment{
			Mode:       l.Mode,
			Ratio:      l.Ratio,
			DistanceKm: legKm,
			CO2Kg:      co2,
		})
		total += co2
	}

	return segments, total, nil
}

func lowerEmission(candidate, best float64) bool {
	return candidate < best-emissionTieTolerance*math.Max(1, math.Abs(best))
}

func validateQuantities(distanceKm, weightTons float64) error {
	if !positive(distanceKm) {
		return fmt.Errorf("distance must be positive (got %v): %w", distanceKm, domain.ErrInvalidQuantity)
	}
	if !positive(weightTons) {
		return fmt.Errorf("weight must be positive (got %v): %w", weightTons, domain.ErrInvalidQuantity)
	}
	return nil
}
