package domain

import (
	"fmt"
	"strings"
)

// Place identifies a location by free-text country and city.
// Matching is exact and case-sensitive.
type Place struct {
	Country string
	City    string
}

func (p Place) String() string {
	return p.City + ", " + p.Country
}

// Validate rejects blank identifiers.
func (p Place) Validate() error {
	if strings.TrimSpace(p.Country) == "" || strings.TrimSpace(p.City) == "" {
		return fmt.Errorf("%w: country and city must be non-empty (got %q, %q)", ErrInvalidLocation, p.Country, p.City)
	}
	return nil
}

// Location is a Place with resolved coordinates.
//
// Only NewLocation produces a resolved value. The zero Location is unresolved,
// which keeps "not found" distinct from a real point at (0, 0).
type Location struct {
	Place
	Coordinates Coordinates
	resolved    bool
}

func NewLocation(country, city string, c Coordinates) (Location, error) {
	p := Place{Country: country, City: city}
	if err := p.Validate(); err != nil {
		return Location{}, err
	}
	if err := c.Validate(); err != nil {
		return Location{}, fmt.Errorf("location %s: %w", p, err)
	}
	return Location{Place: p, Coordinates: c, resolved: true}, nil
}

// Resolved reports whether the location carries looked-up coordinates.
func (l Location) Resolved() bool { return l.resolved }
