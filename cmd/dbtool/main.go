package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"shipment-emissions-service/internal/adapters/repositories"
	"shipment-emissions-service/internal/config"
	"shipment-emissions-service/internal/platform/db"
	"time"
)

func main() {
	cleanup := flag.Bool("cleanup", false, "delete emission records older than RECORD_RETENTION_DAYS")
	skipSeed := flag.Bool("skip-seed", false, "create the schema without seeding the location catalog")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	if err := run(*cleanup, *skipSeed); err != nil {
		slog.Error("dbtool failed", "err", err)
		os.Exit(1)
	}
}

func run(cleanup, skipSeed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	ctx := context.Background()

	pool, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	slog.Info("initializing database schema")
	if err := repositories.InitSchema(ctx, pool); err != nil {
		return err
	}

	gdb, err := db.OpenGorm(pool)
	if err != nil {
		return err
	}
	catalog := repositories.NewGormLocationCatalog(gdb)
	if err := catalog.Migrate(ctx); err != nil {
		return err
	}
	slog.Info("schema ready")

	if !skipSeed {
		slog.Info("seeding location catalog", "path", cfg.SeedPath)
		n, err := catalog.SeedFromJSON(ctx, cfg.SeedPath)
		if err != nil {
			return err
		}
		slog.Info("seeding complete", "locations", n)
	}

	if cleanup {
		cutoff := time.Now().UTC().Add(-cfg.RecordRetention)
		n, err := repositories.NewSQLEmissionRepository(pool).DeleteRecordsBefore(ctx, cutoff)
		if err != nil {
			return err
		}
		slog.Info("old emission records deleted", "count", n, "cutoff", cutoff.Format(time.RFC3339))
	}

	return nil
}
