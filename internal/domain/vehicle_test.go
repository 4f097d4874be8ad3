package domain

import (
	"errors"
	"math"
	"testing"
)

func TestVehicleTrips(t *testing.T) {
	v, err := NewVehicle(ModeTruck, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loose, err := v.Trips(100, 0.90)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tight, err := v.Trips(100, 0.98)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if loose != 12 {
		t.Errorf("trips at 90%% = %d, want 12", loose)
	}
	if tight != 11 {
		t.Errorf("trips at 98%% = %d, want 11", tight)
	}
}

func TestVehicleRejectsInvalidQuantities(t *testing.T) {
	if _, err := NewVehicle(ModeTruck, 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}

	v := &Vehicle{Mode: ModeTruck, CapacityTons: 10}
	if _, err := v.Trips(-1, 0.9); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}
	if _, err := v.Trips(5, 1.2); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}
}

func TestVehicleTripsRejectsNaNUtilisation(t *testing.T) {
	v := &Vehicle{Mode: ModeTruck, CapacityTons: 10}
	if _, err := v.Trips(5, math.NaN()); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}
}

func TestVehicleTripsRejectsOverflowingCounts(t *testing.T) {
	v := &Vehicle{Mode: ModeTruck, CapacityTons: 1}

	if _, err := v.Trips(1e300, 0.9); !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("err = %v, want ErrInvalidQuantity", err)
	}

	n, err := v.Trips(MaxTrips, 1)
	if err != nil {
		t.Fatalf("unexpected error at the limit: %v", err)
	}
	if n != MaxTrips {
		t.Errorf("trips = %d, want %d", n, MaxTrips)
	}
}
