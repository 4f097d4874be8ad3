package services

import (
	"fmt"
	"math"
	"shipment-emissions-service/internal/domain"
	"strings"
)

// EmissionModel maps transport modes to emission factors.
// The table is frozen at construction and safe for concurrent reads.
type EmissionModel struct {
	factors map[domain.TransportMode]domain.EmissionFactor
	order   []domain.TransportMode
}

func NewEmissionModel(factors []domain.EmissionFactor) (*EmissionModel, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("emission model: factor table must not be empty")
	}

	m := &EmissionModel{
		factors: make(map[domain.TransportMode]domain.EmissionFactor, len(factors)),
		order:   make([]domain.TransportMode, 0, len(factors)),
	}
	for i, f := range factors {
		if strings.TrimSpace(string(f.Mode)) == "" {
			return nil, fmt.Errorf("emission model: factor #%d has an empty mode", i+1)
		}
		if f.Class == "" {
			return nil, fmt.Errorf("emission model: mode %q has no class", f.Mode)
		}
		if f.KgPerTonKm < 0 || math.IsNaN(f.KgPerTonKm) || math.IsInf(f.KgPerTonKm, 0) {
			return nil, fmt.Errorf("emission model: mode %q has invalid factor %v", f.Mode, f.KgPerTonKm)
		}
		if _, dup := m.factors[f.Mode]; dup {
			return nil, fmt.Errorf("emission model: duplicate mode %q", f.Mode)
		}
		m.factors[f.Mode] = f
		m.order = append(m.order, f.Mode)
	}

	return m, nil
}

// DefaultEmissionModel panics if the built-in factors are invalid.
func DefaultEmissionModel() *EmissionModel {
	m, err := NewEmissionModel(domain.DefaultEmissionFactors())
	if err != nil {
		panic(err)
	}
	return m
}

func (m *EmissionModel) Factor(mode domain.TransportMode) (domain.EmissionFactor, error) {
	f, ok := m.factors[mode]
	if !ok {
		return domain.EmissionFactor{}, fmt.Errorf("emission factor %q: %w", mode, domain.ErrUnknownTransportMode)
	}
	return f, nil
}

// Emissions returns kg CO2 = distance_km × weight_tons × factor(mode).
func (m *EmissionModel) Emissions(mode domain.TransportMode, distanceKm, weightTons float64) (float64, error) {
	if !positive(distanceKm) {
		return 0, fmt.Errorf("emissions: distance must be positive (got %v): %w", distanceKm, domain.ErrInvalidQuantity)
	}
	if !positive(weightTons) {
		return 0, fmt.Errorf("emissions: weight must be positive (got %v): %w", weightTons, domain.ErrInvalidQuantity)
	}

	f, err := m.Factor(mode)
	if err != nil {
		return 0, fmt.Errorf("emissions: %w", err)
	}

	return distanceKm * weightTons * f.KgPerTonKm, nil
}

// Greenest returns the lowest-factor mode of a class. Equal factors resolve
// to the mode registered first.
func (m *EmissionModel) Greenest(class domain.ModeClass) (domain.TransportMode, bool) {
	var (
		best  domain.TransportMode
		found bool
	)
	for _, mode := range m.order {
		f := m.factors[mode]
		if f.Class != class {
			continue
		}
		if !found || f.KgPerTonKm < m.factors[best].KgPerTonKm {
			best = mode
			found = true
		}
	}
	return best, found
}

// Factors returns the table in registration order.
func (m *EmissionModel) Factors() []domain.EmissionFactor {
	out := make([]domain.EmissionFactor, 0, len(m.order))
	for _, mode := range m.order {
		out = append(out, m.factors[mode])
	}
	return out
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
