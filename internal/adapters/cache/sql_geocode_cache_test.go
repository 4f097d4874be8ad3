package cache

import (
	"context"
	"errors"
	"regexp"
	"shipment-emissions-service/internal/domain"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectGeocodeSQL = regexp.QuoteMeta(`SELECT lat, lon FROM geocode_cache WHERE country = $1 AND city = $2`)
	upsertGeocodeSQL = `INSERT INTO geocode_cache`
)

func TestSQLGeocodeCacheGetHit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(selectGeocodeSQL).
		WithArgs("Germany", "Berlin").
		WillReturnRows(pgxmock.NewRows([]string{"lat", "lon"}).AddRow(52.52, 13.405))

	c := NewSQLGeocodeCache(mock)
	got, ok, err := c.Get(context.Background(), domain.Place{Country: "Germany", City: "Berlin"})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.Coordinates{Lat: 52.52, Lon: 13.405}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGeocodeCacheGetMiss(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(selectGeocodeSQL).
		WithArgs("Atlantis", "Poseidonia").
		WillReturnRows(pgxmock.NewRows([]string{"lat", "lon"}))

	c := NewSQLGeocodeCache(mock)
	_, ok, err := c.Get(context.Background(), domain.Place{Country: "Atlantis", City: "Poseidonia"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGeocodeCacheGetError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("connection reset")
	mock.ExpectQuery(selectGeocodeSQL).
		WithArgs("Germany", "Berlin").
		WillReturnError(boom)

	c := NewSQLGeocodeCache(mock)
	_, _, err = c.Get(context.Background(), domain.Place{Country: "Germany", City: "Berlin"})
	assert.ErrorIs(t, err, boom)
}

func TestSQLGeocodeCachePut(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(upsertGeocodeSQL).
		WithArgs("Germany", "Berlin", 52.52, 13.405).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	c := NewSQLGeocodeCache(mock)
	err = c.Put(context.Background(), domain.Place{Country: "Germany", City: "Berlin"}, domain.Coordinates{Lat: 52.52, Lon: 13.405})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLGeocodeCachePutRejectsEmptyKey(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	c := NewSQLGeocodeCache(mock)
	err = c.Put(context.Background(), domain.Place{Country: " ", City: "Berlin"}, domain.Coordinates{})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
