package geocode

import (
	"context"
	"shipment-emissions-service/internal/domain"
	"sync"
)

type MockEntry struct {
	Country, City string
	Lat, Lon      float64
}

// MockLookup is an in-memory CoordinateLookup for tests and offline runs.
type MockLookup struct {
	m map[domain.Place]domain.Coordinates

	mu    sync.Mutex
	calls int
	err   error
}

func NewMockLookup(entries []MockEntry) *MockLookup {
	m := make(map[domain.Place]domain.Coordinates, len(entries))
	for _, e := range entries {
		m[domain.Place{Country: e.Country, City: e.City}] = domain.Coordinates{Lat: e.Lat, Lon: e.Lon}
	}
	return &MockLookup{m: m}
}

// FailWith makes every subsequent lookup return err.
func (l *MockLookup) FailWith(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

func (l *MockLookup) Calls() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.calls
}

func (l *MockLookup) LookupCoordinates(ctx context.Context, place domain.Place) (domain.Coordinates, bool, error) {
	l.mu.Lock()
	l.calls++
	err := l.err
	l.mu.Unlock()

	if err != nil {
		return domain.Coordinates{}, false, err
	}
	c, ok := l.m[place]
	return c, ok, nil
}
