package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/obs"
	"shipment-emissions-service/internal/ports"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

const DefaultMemoSize = 1024

// LocationResolver maps (country, city) to a resolved Location.
//
// Order: static table, in-process memo, geocode cache, external lookup.
// The static table always wins; only external results are cached.
type LocationResolver struct {
	table    *LocationTable
	cache    ports.GeocodeCache
	lookup   ports.CoordinateLookup
	memoSize int

	memo  *lru.Cache[domain.Place, domain.Location]
	group singleflight.Group
}

type ResolverOption func(*LocationResolver)

func WithGeocodeCache(c ports.GeocodeCache) ResolverOption {
	return func(r *LocationResolver) { r.cache = c }
}

func WithCoordinateLookup(l ports.CoordinateLookup) ResolverOption {
	return func(r *LocationResolver) { r.lookup = l }
}

func WithMemoSize(n int) ResolverOption {
	return func(r *LocationResolver) { r.memoSize = n }
}

func NewLocationResolver(table *LocationTable, opts ...ResolverOption) (*LocationResolver, error) {
	if table == nil {
		return nil, errors.New("new location resolver: table must be non-nil")
	}

	r := &LocationResolver{table: table, memoSize: DefaultMemoSize}
	for _, opt := range opts {
		opt(r)
	}

	memo, err := lru.New[domain.Place, domain.Location](r.memoSize)
	if err != nil {
		return nil, fmt.Errorf("new location resolver: memo: %w", err)
	}
	r.memo = memo

	return r, nil
}

func (r *LocationResolver) Table() *LocationTable { return r.table }

func (r *LocationResolver) Resolve(ctx context.Context, country, city string) (domain.Location, error) {
	place := domain.Place{Country: country, City: city}
	if err := place.Validate(); err != nil {
		return domain.Location{}, fmt.Errorf("resolve location: %w", err)
	}

	if loc, ok := r.table.Lookup(place); ok {
		obs.RecordResolverLookup(obs.SourceStatic)
		return loc, nil
	}

	if loc, ok := r.memo.Get(place); ok {
		obs.RecordResolverLookup(obs.SourceMemo)
		return loc, nil
	}

	key := place.Country + "\x00" + place.City
	ch := r.group.DoChan(key, func() (any, error) {
		// A call that finished just before this one joined has already filled the memo.
		if loc, ok := r.memo.Get(place); ok {
			obs.RecordResolverLookup(obs.SourceMemo)
			return loc, nil
		}
		// Shared by every joined caller, so no single caller may cancel it.
		return r.resolveExternal(context.WithoutCancel(ctx), place)
	})

	select {
	case <-ctx.Done():
		return domain.Location{}, fmt.Errorf("resolve location %q: %w", place, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.Location{}, res.Err
		}
		return res.Val.(domain.Location), nil
	}
}

func (r *LocationResolver) resolveExternal(ctx context.Context, place domain.Place) (_ domain.Location, err error) {
	ctx, done := obs.Span(ctx, "resolver.resolve_external",
		attribute.String("country", place.Country),
		attribute.String("city", place.City),
	)
	defer done(&err)

	if r.cache != nil {
		c, ok, cerr := r.cache.Get(ctx, place)
		switch {
		case cerr != nil:
			// Treated as a miss; the lookup below can still answer.
			slog.WarnContext(ctx, "geocode cache read failed", "req_id", obs.RequestID(ctx), "place", place.String(), "err", cerr)
		case ok:
			loc, lerr := domain.NewLocation(place.Country, place.City, c)
			if lerr == nil {
				obs.RecordResolverLookup(obs.SourceCache)
				r.memo.Add(place, loc)
				return loc, nil
			}
			slog.WarnContext(ctx, "geocode cache holds invalid coordinates", "place", place.String(), "err", lerr)
		}
	}

	if r.lookup == nil {
		obs.RecordResolverLookup(obs.SourceMiss)
		return domain.Location{}, fmt.Errorf("resolve location %q: %w", place, domain.ErrLocationNotFound)
	}

	c, found, err := r.lookup.LookupCoordinates(ctx, place)
	if err != nil {
		obs.RecordResolverLookup(obs.SourceError)
		return domain.Location{}, fmt.Errorf("resolve location %q: lookup: %w", place, err)
	}
	if !found {
		obs.RecordResolverLookup(obs.SourceMiss)
		return domain.Location{}, fmt.Errorf("resolve location %q: %w", place, domain.ErrLocationNotFound)
	}

	loc, err := domain.NewLocation(place.Country, place.City, c)
	if err != nil {
		obs.RecordResolverLookup(obs.SourceError)
		return domain.Location{}, fmt.Errorf("resolve location %q: lookup returned: %w", place, err)
	}
	obs.RecordResolverLookup(obs.SourceLookup)

	if r.cache != nil {
		if perr := r.cache.Put(ctx, place, c); perr != nil {
			slog.WarnContext(ctx, "geocode cache write failed", "req_id", obs.RequestID(ctx), "place", place.String(), "err", perr)
		}
	}
	r.memo.Add(place, loc)

	return loc, nil
}
