package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"shipment-emissions-service/internal/domain"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeocoder(t *testing.T, h http.HandlerFunc) *ORSGeocoder {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := NewORSGeocoder("test-key",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithRateLimit(1000, 10),
		WithRetry(3, time.Millisecond),
	)
	require.NoError(t, err)
	return g
}

func TestORSGeocoderFound(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/search", r.URL.Path)
		assert.Equal(t, "Kano, Nigeria", r.URL.Query().Get("text"))
		assert.Equal(t, "1", r.URL.Query().Get("size"))
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[8.592,12.0022]}}]}`))
	})

	c, found, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "Nigeria", City: "  Kano "})
	require.NoError(t, err)
	require.True(t, found)
	assert.InDelta(t, 12.0022, c.Lat, 1e-9)
	assert.InDelta(t, 8.592, c.Lon, 1e-9)
}

func TestORSGeocoderNoFeaturesIsMiss(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[]}`))
	})

	c, found, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "Atlantis", City: "Poseidonia"})
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.Coordinates{}, c)
}

func TestORSGeocoderRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[7.4951,9.0579]}}]}`))
	})

	_, found, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "Nigeria", City: "Abuja"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int32(3), calls.Load())
}

func TestORSGeocoderDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad key", http.StatusForbidden)
	})

	_, _, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "Nigeria", City: "Abuja"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "Code 403")
	assert.Equal(t, int32(1), calls.Load())
}

func TestORSGeocoderGivesUpAfterMaxAttempts(t *testing.T) {
	var calls atomic.Int32
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusBadGateway)
	})

	_, _, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "Nigeria", City: "Abuja"})
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestORSGeocoderRejectsOutOfRangeCoordinates(t *testing.T) {
	g := newTestGeocoder(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"features":[{"geometry":{"coordinates":[200,10]}}]}`))
	})

	_, _, err := g.LookupCoordinates(context.Background(), domain.Place{Country: "X", City: "Y"})
	assert.ErrorIs(t, err, domain.ErrInvalidLocation)
}

func TestNewORSGeocoderRequiresKey(t *testing.T) {
	_, err := NewORSGeocoder("")
	assert.Error(t, err)
}
