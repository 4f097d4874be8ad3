package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/obs"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geocode:"

// RedisGeocodeCache shares geocode results between service instances.
type RedisGeocodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{client: client, ttl: ttl}
}

type redisCoordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// redisKey length-prefixes the country so no (country, city) pair can
// collide with another, whatever characters the names contain.
func redisKey(place domain.Place) string {
	return redisKeyPrefix + strconv.Itoa(len(place.Country)) + ":" + place.Country + "|" + place.City
}

func (c *RedisGeocodeCache) Get(ctx context.Context, place domain.Place) (_ domain.Coordinates, _ bool, err error) {
	defer obs.Time(ctx, "geocode.redis.Get")(&err)

	raw, err := c.client.Get(ctx, redisKey(place)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Coordinates{}, false, nil
	}
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get redis geocode cache %q: %w", place, err)
	}

	var v redisCoordinates
	if err := json.Unmarshal(raw, &v); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("get redis geocode cache %q: decode: %w", place, err)
	}

	return domain.Coordinates{Lat: v.Lat, Lon: v.Lon}, true, nil
}

func (c *RedisGeocodeCache) Put(ctx context.Context, place domain.Place, coords domain.Coordinates) (err error) {
	defer obs.Time(ctx, "geocode.redis.Put")(&err)

	raw, err := json.Marshal(redisCoordinates{Lat: coords.Lat, Lon: coords.Lon})
	if err != nil {
		return fmt.Errorf("put redis geocode cache %q: encode: %w", place, err)
	}

	if err := c.client.Set(ctx, redisKey(place), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("put redis geocode cache %q: %w", place, err)
	}
	return nil
}
