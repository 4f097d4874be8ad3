package geocode

import (
	"context"
	"errors"
	"shipment-emissions-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainFirstHitWins(t *testing.T) {
	first := NewMockLookup([]MockEntry{{Country: "Nigeria", City: "Kano", Lat: 12, Lon: 8.5}})
	second := NewMockLookup([]MockEntry{{Country: "Nigeria", City: "Kano", Lat: 1, Lon: 1}})

	c, found, err := Chain{first, second}.LookupCoordinates(context.Background(), domain.Place{Country: "Nigeria", City: "Kano"})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, domain.Coordinates{Lat: 12, Lon: 8.5}, c)
	assert.Equal(t, 0, second.Calls())
}

func TestChainSkipsFailingLookup(t *testing.T) {
	broken := NewMockLookup(nil)
	broken.FailWith(errors.New("catalog down"))
	backup := NewMockLookup([]MockEntry{{Country: "Ghana", City: "Accra", Lat: 5.6037, Lon: -0.187}})

	c, found, err := Chain{broken, backup}.LookupCoordinates(context.Background(), domain.Place{Country: "Ghana", City: "Accra"})
	require.NoError(t, err)
	assert.True(t, found)
	assert.InDelta(t, 5.6037, c.Lat, 1e-9)
}

func TestChainMissReportsErrors(t *testing.T) {
	boom := errors.New("catalog down")
	broken := NewMockLookup(nil)
	broken.FailWith(boom)

	_, found, err := Chain{broken, NewMockLookup(nil)}.LookupCoordinates(context.Background(), domain.Place{Country: "Ghana", City: "Tamale"})
	assert.False(t, found)
	assert.ErrorIs(t, err, boom)
}

func TestChainCleanMiss(t *testing.T) {
	_, found, err := Chain{NewMockLookup(nil), nil}.LookupCoordinates(context.Background(), domain.Place{Country: "Ghana", City: "Tamale"})
	assert.NoError(t, err)
	assert.False(t, found)
}
