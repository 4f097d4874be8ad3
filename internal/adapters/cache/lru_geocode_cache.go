package cache

import (
	"context"
	"fmt"
	"shipment-emissions-service/internal/domain"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// LRUGeocodeCache is a bounded in-process geocode cache with per-entry TTL.
type LRUGeocodeCache struct {
	entries *lru.LRU[domain.Place, domain.Coordinates]
}

// A ttl of zero keeps entries until they are evicted by size.
func NewLRUGeocodeCache(size int, ttl time.Duration) (*LRUGeocodeCache, error) {
	if size <= 0 {
		return nil, fmt.Errorf("new lru geocode cache: size must be positive (got %d)", size)
	}
	return &LRUGeocodeCache{entries: lru.NewLRU[domain.Place, domain.Coordinates](size, nil, ttl)}, nil
}

func (c *LRUGeocodeCache) Get(_ context.Context, place domain.Place) (domain.Coordinates, bool, error) {
	coords, ok := c.entries.Get(place)
	return coords, ok, nil
}

func (c *LRUGeocodeCache) Put(_ context.Context, place domain.Place, coords domain.Coordinates) error {
	c.entries.Add(place, coords)
	return nil
}

func (c *LRUGeocodeCache) Len() int { return c.entries.Len() }
