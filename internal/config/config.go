// Package config reads service settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Geocode cache backends.
const (
	CacheMemory   = "memory"
	CacheRedis    = "redis"
	CachePostgres = "postgres"
)

type Config struct {
	Port        string
	DatabaseURL string
	SeedPath    string
	LogLevel    slog.Level

	GeocodeCache    string
	GeocodeCacheTTL time.Duration
	GeocodeCacheMax int
	RedisAddr       string

	ORSAPIKey     string
	GeocoderRPS   float64
	GeocoderBurst int

	CarbonPriceEURPerTon float64
	RecordRetention      time.Duration
}

// Load reads .env (if present) and the environment into a Config.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found (using environment variables)")
	}

	cfg := &Config{
		Port:        Get("PORT", "8080"),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		SeedPath:    Get("SEED_PATH", "data/seeds/locations.json"),

		GeocodeCache: strings.ToLower(Get("GEOCODE_CACHE", CacheMemory)),
		RedisAddr:    Get("REDIS_ADDR", "localhost:6379"),

		ORSAPIKey: strings.TrimSpace(os.Getenv("ORS_API_KEY")),
	}

	var err error
	if cfg.LogLevel, err = parseLevel(Get("LOG_LEVEL", "info")); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheTTL, err = GetDuration("GEOCODE_CACHE_TTL", 30*24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.GeocodeCacheMax, err = GetInt("GEOCODE_CACHE_MAX", 4096); err != nil {
		return nil, err
	}
	if cfg.GeocoderRPS, err = GetFloat("GEOCODER_RPS", 1.0); err != nil {
		return nil, err
	}
	if cfg.GeocoderBurst, err = GetInt("GEOCODER_BURST", 1); err != nil {
		return nil, err
	}
	if cfg.CarbonPriceEURPerTon, err = GetFloat("CARBON_PRICE_EUR_PER_TON", 65.89); err != nil {
		return nil, err
	}

	days, err := GetInt("RECORD_RETENTION_DAYS", 365)
	if err != nil {
		return nil, err
	}
	cfg.RecordRetention = time.Duration(days) * 24 * time.Hour

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.GeocodeCache {
	case CacheMemory, CacheRedis:
	case CachePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config: GEOCODE_CACHE=%s requires DATABASE_URL", CachePostgres)
		}
	default:
		return fmt.Errorf("config: unknown GEOCODE_CACHE %q (want memory, redis or postgres)", c.GeocodeCache)
	}
	if c.GeocoderRPS <= 0 || c.GeocoderBurst < 1 {
		return fmt.Errorf("config: geocoder rate limit must be positive (rps=%v burst=%d)", c.GeocoderRPS, c.GeocoderBurst)
	}
	if c.CarbonPriceEURPerTon < 0 {
		return fmt.Errorf("config: CARBON_PRICE_EUR_PER_TON must not be negative")
	}
	return nil
}

func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}

func GetBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s: %w", key, err)
	}
	return b, nil
}

func GetDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return d, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}
