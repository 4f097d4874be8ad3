package domain

import (
	"errors"
	"testing"
)

func TestNewLocationAtOriginIsResolved(t *testing.T) {
	loc, err := NewLocation("Atlantic", "Null Island", Coordinates{Lat: 0, Lon: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !loc.Resolved() {
		t.Fatalf("location at (0,0) must be resolved")
	}

	var zero Location
	if zero.Resolved() {
		t.Fatalf("zero Location must not be resolved")
	}
}

func TestNewLocationRejectsBadInput(t *testing.T) {
	cases := []struct {
		name    string
		country string
		city    string
		c       Coordinates
	}{
		{"blank country", " ", "Paris", Coordinates{Lat: 48.8, Lon: 2.3}},
		{"blank city", "France", "", Coordinates{Lat: 48.8, Lon: 2.3}},
		{"latitude too high", "X", "Y", Coordinates{Lat: 90.5, Lon: 0}},
		{"longitude too low", "X", "Y", Coordinates{Lat: 0, Lon: -180.1}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewLocation(tc.country, tc.city, tc.c)
			if !errors.Is(err, ErrInvalidLocation) {
				t.Fatalf("err = %v, want ErrInvalidLocation", err)
			}
		})
	}
}

func TestCoordinatesFromList(t *testing.T) {
	c, err := CoordinatesFromList([]float64{3.3792, 6.5244})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Lat != 6.5244 || c.Lon != 3.3792 {
		t.Fatalf("got %+v, want lat=6.5244 lon=3.3792", c)
	}

	if _, err := CoordinatesFromList([]float64{1}); !errors.Is(err, ErrInvalidLocation) {
		t.Fatalf("err = %v, want ErrInvalidLocation", err)
	}
}

func TestStrategyName(t *testing.T) {
	s := Strategy{Legs: []Leg{{Mode: ModeShip, Ratio: 0.9}, {Mode: ModeTrain, Ratio: 0.1}}}
	if got := s.Name(); got != "Ship 90% + Train 10%" {
		t.Fatalf("Name() = %q", got)
	}

	single := Strategy{Legs: []Leg{{Mode: ModeElectricTruck, Ratio: 1}}}
	if got := single.Name(); got != "Electric Truck 100%" {
		t.Fatalf("Name() = %q", got)
	}
}
