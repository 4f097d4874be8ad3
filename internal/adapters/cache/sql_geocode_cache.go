package cache

import (
	"context"
	"errors"
	"fmt"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/db"
	"shipment-emissions-service/internal/platform/obs"
	"strings"

	"github.com/jackc/pgx/v5"
)

// SQLGeocodeCache is a Postgres-backed cache mapping (country, city) to coordinates.
type SQLGeocodeCache struct {
	DB db.DBTX
}

func NewSQLGeocodeCache(conn db.DBTX) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: conn}
}

func (s *SQLGeocodeCache) Get(ctx context.Context, place domain.Place) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.cache.Get")(&err)

	if s.DB == nil {
		return domain.Coordinates{}, false, errors.New("geocode cache: db is nil")
	}

	var c domain.Coordinates
	err = s.DB.QueryRow(ctx,
		`SELECT lat, lon FROM geocode_cache WHERE country = $1 AND city = $2`,
		place.Country, place.City,
	).Scan(&c.Lat, &c.Lon)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get geocode cache %q: %w", place, err)
	}

	return c, true, nil
}

func (s *SQLGeocodeCache) Put(ctx context.Context, place domain.Place, c domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.cache.Put")(&err)

	if s.DB == nil {
		return errors.New("geocode cache: db is nil")
	}
	if strings.TrimSpace(place.Country) == "" || strings.TrimSpace(place.City) == "" {
		return fmt.Errorf("insert geocode cache: empty place key")
	}

	_, err = s.DB.Exec(ctx, `
	INSERT INTO geocode_cache (country, city, lat, lon, updated_at)
	VALUES ($1, $2, $3, $4, now())
	ON CONFLICT (country, city) DO UPDATE
	SET lat = EXCLUDED.lat,
		lon = EXCLUDED.lon,
		updated_at = EXCLUDED.updated_at;
	`, place.Country, place.City, c.Lat, c.Lon)
	if err != nil {
		return fmt.Errorf("insert geocode cache %q: %w", place, err)
	}

	return nil
}
