package repositories

import (
	"context"
	"errors"
	"fmt"
	"shipment-emissions-service/internal/platform/db"
)

var schemaStatements = []string{
	`
	CREATE TABLE IF NOT EXISTS geocode_cache (
		country TEXT NOT NULL,
		city TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		PRIMARY KEY (country, city)
	);
	`,
	`
	CREATE TABLE IF NOT EXISTS emission_records (
		id UUID PRIMARY KEY,
		source TEXT NOT NULL,
		destination TEXT NOT NULL,
		transport_mode TEXT NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		co2_kg DOUBLE PRECISION NOT NULL,
		weight_tons DOUBLE PRECISION NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	);
	`,
	`
	CREATE INDEX IF NOT EXISTS idx_emission_records_created_at
	ON emission_records(created_at);
	`,
}

// Initialize the Postgres schema for the cache and record tables.
// The location catalog is migrated by gorm (see GormLocationCatalog.Migrate).
func InitSchema(ctx context.Context, conn db.DBTX) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for i, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
