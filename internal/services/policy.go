package services

import (
	"fmt"
	"math"
	"shipment-emissions-service/internal/domain"
	"strings"
)

const (
	ShortTierMaxKm  = 1000.0
	MediumTierMaxKm = 5000.0

	maxLegsPerStrategy = 2
	ratioSumTolerance  = 1e-9
)

// Classify buckets a route by geography and distance tier.
// Two places share a region when their country identifiers are equal.
func Classify(origin, destination domain.Place, distanceKm float64) domain.RouteClass {
	geo := domain.CrossRegion
	if origin.Country == destination.Country {
		geo = domain.SameRegion
	}

	tier := domain.TierLong
	switch {
	case distanceKm < ShortTierMaxKm:
		tier = domain.TierShort
	case distanceKm < MediumTierMaxKm:
		tier = domain.TierMedium
	}

	return domain.RouteClass{Geography: geo, Tier: tier}
}

// AllRouteClasses lists every class the policy table must cover.
func AllRouteClasses() []domain.RouteClass {
	geos := []domain.Geography{domain.CrossRegion, domain.SameRegion}
	tiers := []domain.DistanceTier{domain.TierShort, domain.TierMedium, domain.TierLong}

	out := make([]domain.RouteClass, 0, len(geos)*len(tiers))
	for _, g := range geos {
		for _, t := range tiers {
			out = append(out, domain.RouteClass{Geography: g, Tier: t})
		}
	}
	return out
}

// PolicyTable maps a route class to its ordered candidate strategies.
// Strategy order is the tie-break order.
type PolicyTable struct {
	rows map[domain.RouteClass][]domain.Strategy
}

// NewPolicyTable validates the shape of every strategy and copies the rows.
// Coverage of all classes and mode registration are checked by NewOptimizer.
func NewPolicyTable(rows map[domain.RouteClass][]domain.Strategy) (*PolicyTable, error) {
	t := &PolicyTable{rows: make(map[domain.RouteClass][]domain.Strategy, len(rows))}

	for class, strategies := range rows {
		if len(strategies) == 0 {
			return nil, fmt.Errorf("policy table: %s has no strategies", class)
		}
		for i, s := range strategies {
			if err := validateStrategy(s); err != nil {
				return nil, fmt.Errorf("policy table: %s strategy #%d: %w", class, i+1, err)
			}
		}
		t.rows[class] = cloneStrategies(strategies)
	}

	return t, nil
}

// DefaultPolicyTable panics if the built-in rows are invalid.
func DefaultPolicyTable() *PolicyTable {
	t, err := NewPolicyTable(DefaultPolicyRows())
	if err != nil {
		panic(err)
	}
	return t
}

func DefaultPolicyRows() map[domain.RouteClass][]domain.Strategy {
	split := func(a domain.TransportMode, ra float64, b domain.TransportMode, rb float64) domain.Strategy {
		return domain.Strategy{Legs: []domain.Leg{{Mode: a, Ratio: ra}, {Mode: b, Ratio: rb}}}
	}
	single := func(m domain.TransportMode) domain.Strategy {
		return domain.Strategy{Legs: []domain.Leg{{Mode: m, Ratio: 1.0}}}
	}

	const (
		truck = domain.ModeTruck
		train = domain.ModeTrain
		ship  = domain.ModeShip
		plane = domain.ModePlane
	)

	inland := []domain.Strategy{
		split(train, 0.7, truck, 0.3),
		split(truck, 0.6, train, 0.4),
		split(plane, 0.3, truck, 0.7),
	}

	return map[domain.RouteClass][]domain.Strategy{
		{Geography: domain.CrossRegion, Tier: domain.TierLong}: {
			split(ship, 0.9, train, 0.1),
			split(ship, 0.8, truck, 0.2),
			split(plane, 0.5, ship, 0.5),
		},
		{Geography: domain.CrossRegion, Tier: domain.TierMedium}: {
			split(ship, 0.7, train, 0.3),
			split(plane, 0.4, truck, 0.6),
			split(ship, 0.6, plane, 0.4),
		},
		{Geography: domain.CrossRegion, Tier: domain.TierShort}: {
			split(train, 0.8, truck, 0.2),
			split(ship, 0.5, truck, 0.5),
			split(plane, 0.3, truck, 0.7),
		},
		{Geography: domain.SameRegion, Tier: domain.TierShort}: {
			split(train, 0.9, truck, 0.1),
			single(truck),
			single(train),
		},
		{Geography: domain.SameRegion, Tier: domain.TierMedium}: inland,
		{Geography: domain.SameRegion, Tier: domain.TierLong}:   inland,
	}
}

// Strategies returns a copy of the candidates for class.
func (t *PolicyTable) Strategies(class domain.RouteClass) ([]domain.Strategy, error) {
	rows, ok := t.rows[class]
	if !ok {
		return nil, fmt.Errorf("policy table: no strategies for %s: %w", class, domain.ErrPolicyGap)
	}
	return cloneStrategies(rows), nil
}

// Classes returns the classes present in the table.
func (t *PolicyTable) Classes() []domain.RouteClass {
	out := make([]domain.RouteClass, 0, len(t.rows))
	for _, c := range AllRouteClasses() {
		if _, ok := t.rows[c]; ok {
			out = append(out, c)
		}
	}
	return out
}

// SubstituteGreen applies the low-emission preference to a candidate list:
// a strategy's secondary leg, or its sole leg, is swapped for the greenest
// road-class mode when it is itself road-class. Shapes and ratios are kept.
func SubstituteGreen(strategies []domain.Strategy, model *EmissionModel) []domain.Strategy {
	green, ok := model.Greenest(domain.ClassRoad)
	if !ok {
		return cloneStrategies(strategies)
	}

	out := cloneStrategies(strategies)
	for i := range out {
		legs := out[i].Legs
		idx := len(legs) - 1
		if idx < 0 || idx > 1 {
			continue
		}

		f, err := model.Factor(legs[idx].Mode)
		if err != nil || f.Class != domain.ClassRoad {
			continue
		}
		legs[idx].Mode = green
	}
	return out
}

func validateStrategy(s domain.Strategy) error {
	if len(s.Legs) == 0 || len(s.Legs) > maxLegsPerStrategy {
		return fmt.Errorf("strategy must have 1 to %d legs, got %d", maxLegsPerStrategy, len(s.Legs))
	}

	sum := 0.0
	for _, l := range s.Legs {
		if strings.TrimSpace(string(l.Mode)) == "" {
			return fmt.Errorf("leg has an empty mode")
		}
		if !(l.Ratio > 0 && l.Ratio <= 1) {
			return fmt.Errorf("leg %q has ratio %v outside (0, 1]", l.Mode, l.Ratio)
		}
		sum += l.Ratio
	}
	if math.Abs(sum-1) > ratioSumTolerance {
		return fmt.Errorf("leg ratios sum to %v, want 1", sum)
	}
	return nil
}

func cloneStrategies(in []domain.Strategy) []domain.Strategy {
	out := make([]domain.Strategy, len(in))
	for i, s := range in {
		out[i] = domain.Strategy{Legs: append([]domain.Leg(nil), s.Legs...)}
	}
	return out
}
