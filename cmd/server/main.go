package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"shipment-emissions-service/internal/adapters/cache"
	"shipment-emissions-service/internal/adapters/geocode"
	"shipment-emissions-service/internal/adapters/repositories"
	"shipment-emissions-service/internal/api"
	"shipment-emissions-service/internal/config"
	"shipment-emissions-service/internal/platform/db"
	"shipment-emissions-service/internal/ports"
	"shipment-emissions-service/internal/services"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (Postgres, Redis, ORS) behind ports and starts the HTTP server.
func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		pool, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
	} else {
		slog.Warn("DATABASE_URL not set; emission records and the location catalog are disabled")
	}

	geoCache, closeCache, err := newGeocodeCache(ctx, cfg, pool)
	if err != nil {
		return err
	}
	defer closeCache()

	var catalog *repositories.GormLocationCatalog
	if pool != nil {
		gdb, err := db.OpenGorm(pool)
		if err != nil {
			return err
		}
		catalog = repositories.NewGormLocationCatalog(gdb)
	}

	lookup, err := newCoordinateLookup(cfg, catalog)
	if err != nil {
		return err
	}

	resolverOpts := []services.ResolverOption{services.WithGeocodeCache(geoCache)}
	if lookup != nil {
		resolverOpts = append(resolverOpts, services.WithCoordinateLookup(lookup))
	}
	resolver, err := services.NewLocationResolver(services.DefaultLocationTable(), resolverOpts...)
	if err != nil {
		return err
	}

	// Tables are validated once here; a bad policy table stops startup.
	optimizer, err := services.NewOptimizer(services.DefaultEmissionModel(), services.DefaultPolicyTable())
	if err != nil {
		return err
	}

	var records ports.EmissionRecordRepository
	var catalogList ports.LocationCatalog
	if pool != nil {
		records = repositories.NewSQLEmissionRepository(pool)
		catalogList = catalog
	}

	shipments, err := services.NewShipmentService(resolver, optimizer, records)
	if err != nil {
		return err
	}

	pricer, err := services.NewCarbonPricer(cfg.CarbonPriceEURPerTon, services.DefaultExchangeRates())
	if err != nil {
		return err
	}

	router := api.NewRouter(api.Deps{Shipments: shipments, Records: records, Catalog: catalogList, Pricer: pricer})

	// Timeouts are tuned for cold-cache geocoding (external API latency).
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server listening", "addr", srv.Addr, "geocode_cache", cfg.GeocodeCache)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newGeocodeCache(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool) (ports.GeocodeCache, func(), error) {
	switch cfg.GeocodeCache {
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("geocode cache: ping redis %s: %w", cfg.RedisAddr, err)
		}
		return cache.NewRedisGeocodeCache(client, cfg.GeocodeCacheTTL), func() { _ = client.Close() }, nil

	case config.CachePostgres:
		if pool == nil {
			return nil, nil, errors.New("geocode cache: postgres backend requires DATABASE_URL")
		}
		return cache.NewSQLGeocodeCache(pool), func() {}, nil

	default:
		c, err := cache.NewLRUGeocodeCache(cfg.GeocodeCacheMax, cfg.GeocodeCacheTTL)
		if err != nil {
			return nil, nil, err
		}
		return c, func() {}, nil
	}
}

// newCoordinateLookup chains the location catalog and the ORS geocoder,
// whichever are configured. It returns nil when neither is.
func newCoordinateLookup(cfg *config.Config, catalog *repositories.GormLocationCatalog) (ports.CoordinateLookup, error) {
	var chain geocode.Chain

	if catalog != nil {
		chain = append(chain, catalog)
	}

	if cfg.ORSAPIKey != "" {
		ors, err := geocode.NewORSGeocoder(cfg.ORSAPIKey, geocode.WithRateLimit(cfg.GeocoderRPS, cfg.GeocoderBurst))
		if err != nil {
			return nil, err
		}
		chain = append(chain, ors)
	} else {
		slog.Warn("ORS_API_KEY not set; places outside the built-in table resolve only from the catalog")
	}

	if len(chain) == 0 {
		return nil, nil
	}
	return chain, nil
}
