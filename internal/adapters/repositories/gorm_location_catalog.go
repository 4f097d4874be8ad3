package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/obs"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LocationRow is the gorm model of the locations catalog table.
type LocationRow struct {
	ID        uint    `gorm:"primaryKey"`
	Country   string  `gorm:"not null;uniqueIndex:idx_locations_country_city"`
	City      string  `gorm:"not null;uniqueIndex:idx_locations_country_city"`
	Lat       float64 `gorm:"not null"`
	Lon       float64 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LocationRow) TableName() string { return "locations" }

// GormLocationCatalog is a CoordinateLookup over the locations table.
// It extends the built-in table with operator-managed places.
type GormLocationCatalog struct {
	DB *gorm.DB
}

func NewGormLocationCatalog(db *gorm.DB) *GormLocationCatalog {
	return &GormLocationCatalog{DB: db}
}

func (c *GormLocationCatalog) Migrate(ctx context.Context) error {
	if c.DB == nil {
		return errors.New("location catalog: DB is nil")
	}
	if err := c.DB.WithContext(ctx).AutoMigrate(&LocationRow{}); err != nil {
		return fmt.Errorf("location catalog: migrate: %w", err)
	}
	return nil
}

func (c *GormLocationCatalog) LookupCoordinates(ctx context.Context, place domain.Place) (_ domain.Coordinates, _ bool, err error) {
	ctx, done := obs.Span(ctx, "catalog.lookup",
		attribute.String("country", place.Country),
		attribute.String("city", place.City),
	)
	defer done(&err)

	if c.DB == nil {
		return domain.Coordinates{}, false, errors.New("location catalog: DB is nil")
	}

	var row LocationRow
	err = c.DB.WithContext(ctx).
		Where("country = ? AND city = ?", place.Country, place.City).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("location catalog: lookup %q: %w", place, err)
	}

	return domain.Coordinates{Lat: row.Lat, Lon: row.Lon}, true, nil
}

// All returns every catalog entry ordered by country and city.
func (c *GormLocationCatalog) All(ctx context.Context) ([]domain.Location, error) {
	if c.DB == nil {
		return nil, errors.New("location catalog: DB is nil")
	}

	var rows []LocationRow
	if err := c.DB.WithContext(ctx).Order("country, city").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("location catalog: list: %w", err)
	}

	out := make([]domain.Location, 0, len(rows))
	for _, r := range rows {
		loc, err := domain.NewLocation(r.Country, r.City, domain.Coordinates{Lat: r.Lat, Lon: r.Lon})
		if err != nil {
			return nil, fmt.Errorf("location catalog: row %d: %w", r.ID, err)
		}
		out = append(out, loc)
	}
	return out, nil
}

type LocationSeed struct {
	Country string  `json:"country"`
	City    string  `json:"city"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// ParseLocationSeeds validates seed entries and converts them to rows.
func ParseLocationSeeds(data []byte) ([]LocationRow, error) {
	var seeds []LocationSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return nil, fmt.Errorf("seed locations: parse json: %w", err)
	}

	rows := make([]LocationRow, 0, len(seeds))
	for i, s := range seeds {
		country := strings.TrimSpace(s.Country)
		city := strings.TrimSpace(s.City)

		loc, err := domain.NewLocation(country, city, domain.Coordinates{Lat: s.Lat, Lon: s.Lon})
		if err != nil {
			return nil, fmt.Errorf("seed locations: item at index %d: %w", i+1, err)
		}
		rows = append(rows, LocationRow{
			Country: loc.Country,
			City:    loc.City,
			Lat:     loc.Coordinates.Lat,
			Lon:     loc.Coordinates.Lon,
		})
	}
	return rows, nil
}

// Populate the catalog from a JSON file, updating coordinates of existing places.
func (c *GormLocationCatalog) SeedFromJSON(ctx context.Context, jsonPath string) (int, error) {
	if c.DB == nil {
		return 0, errors.New("location catalog: DB is nil")
	}

	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed locations: read %q: %w", jsonPath, err)
	}

	rows, err := ParseLocationSeeds(bytes)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, nil
	}

	err = c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "country"}, {Name: "city"}},
			DoUpdates: clause.AssignmentColumns([]string{"lat", "lon", "updated_at"}),
		}).CreateInBatches(rows, 100).Error
	})
	if err != nil {
		return 0, fmt.Errorf("seed locations: upsert: %w", err)
	}

	return len(rows), nil
}
