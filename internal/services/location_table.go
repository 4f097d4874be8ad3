package services

import (
	"encoding/json"
	"fmt"
	"os"
	"shipment-emissions-service/internal/domain"
)

// LocationEntry is one row of the static location table (and its JSON seed).
type LocationEntry struct {
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// LocationTable is the read-only (country, city) -> Location table.
// It is built once at startup and safe for concurrent reads.
type LocationTable struct {
	byPlace map[domain.Place]domain.Location
	order   []domain.Place
}

func NewLocationTable(entries []LocationEntry) (*LocationTable, error) {
	t := &LocationTable{
		byPlace: make(map[domain.Place]domain.Location, len(entries)),
		order:   make([]domain.Place, 0, len(entries)),
	}

	for i, e := range entries {
		loc, err := domain.NewLocation(e.Country, e.City, domain.Coordinates{Lat: e.Lat, Lon: e.Lon})
		if err != nil {
			return nil, fmt.Errorf("location table: entry #%d: %w", i+1, err)
		}
		if _, dup := t.byPlace[loc.Place]; dup {
			return nil, fmt.Errorf("location table: entry #%d: duplicate %s", i+1, loc.Place)
		}
		t.byPlace[loc.Place] = loc
		t.order = append(t.order, loc.Place)
	}

	return t, nil
}

// Load the table from a JSON array of LocationEntry.
func LoadLocationTable(path string) (*LocationTable, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load location table: read %q: %w", path, err)
	}

	var entries []LocationEntry
	if err := json.Unmarshal(bytes, &entries); err != nil {
		return nil, fmt.Errorf("load location table: parse json: %w", err)
	}

	return NewLocationTable(entries)
}

// Lookup is an exact, case-sensitive match on (country, city).
func (t *LocationTable) Lookup(place domain.Place) (domain.Location, bool) {
	loc, ok := t.byPlace[place]
	return loc, ok
}

// All returns the locations in table order.
func (t *LocationTable) All() []domain.Location {
	out := make([]domain.Location, 0, len(t.order))
	for _, p := range t.order {
		out = append(out, t.byPlace[p])
	}
	return out
}

func (t *LocationTable) Len() int { return len(t.order) }

func DefaultLocationEntries() []LocationEntry {
	return []LocationEntry{
		{Country: "United Kingdom", City: "London", Lat: 51.5074, Lon: -0.1278},
		{Country: "United Kingdom", City: "Manchester", Lat: 53.4808, Lon: -2.2426},
		{Country: "France", City: "Paris", Lat: 48.8566, Lon: 2.3522},
		{Country: "France", City: "Lyon", Lat: 45.7640, Lon: 4.8357},
		{Country: "France", City: "Marseille", Lat: 43.2965, Lon: 5.3698},
		{Country: "Germany", City: "Berlin", Lat: 52.5200, Lon: 13.4050},
		{Country: "Germany", City: "Hamburg", Lat: 53.5511, Lon: 9.9937},
		{Country: "Germany", City: "Munich", Lat: 48.1351, Lon: 11.5820},
		{Country: "Netherlands", City: "Rotterdam", Lat: 51.9244, Lon: 4.4777},
		{Country: "USA", City: "New York", Lat: 40.7128, Lon: -74.0060},
		{Country: "USA", City: "Chicago", Lat: 41.8781, Lon: -87.6298},
		{Country: "USA", City: "Los Angeles", Lat: 34.0522, Lon: -118.2437},
		{Country: "China", City: "Shanghai", Lat: 31.2304, Lon: 121.4737},
		{Country: "China", City: "Beijing", Lat: 39.9042, Lon: 116.4074},
		{Country: "Japan", City: "Tokyo", Lat: 35.6762, Lon: 139.6503},
		{Country: "Japan", City: "Osaka", Lat: 34.6937, Lon: 135.5023},
		{Country: "Australia", City: "Sydney", Lat: -33.8688, Lon: 151.2093},
		{Country: "Australia", City: "Melbourne", Lat: -37.8136, Lon: 144.9631},
		{Country: "Nigeria", City: "Lagos", Lat: 6.5244, Lon: 3.3792},
		{Country: "Nigeria", City: "Abuja", Lat: 9.0579, Lon: 7.4951},
	}
}

// DefaultLocationTable panics if the built-in entries are invalid.
func DefaultLocationTable() *LocationTable {
	t, err := NewLocationTable(DefaultLocationEntries())
	if err != nil {
		panic(err)
	}
	return t
}
