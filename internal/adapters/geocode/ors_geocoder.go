package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/obs"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
)

const (
	DefaultORSBaseURL = "https://api.openrouteservice.org"
	orsServiceName    = "ors_geocode"
)

// ORSGeocoder resolves places through the OpenRouteService search endpoint.
//
// Outbound calls share one rate limiter; transient failures are retried
// with backoff. A response without features is a miss, never (0, 0).
// The geocoder is safe for concurrent use.
type ORSGeocoder struct {
	session     *http.Client
	apiKey      string
	baseURL     string
	limiter     *rate.Limiter
	maxAttempts int
	backoff     time.Duration
}

type ORSOption func(*ORSGeocoder)

func WithBaseURL(u string) ORSOption {
	return func(g *ORSGeocoder) { g.baseURL = strings.TrimRight(u, "/") }
}

func WithHTTPClient(c *http.Client) ORSOption {
	return func(g *ORSGeocoder) { g.session = c }
}

func WithRateLimit(rps float64, burst int) ORSOption {
	return func(g *ORSGeocoder) { g.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func WithRetry(maxAttempts int, backoff time.Duration) ORSOption {
	return func(g *ORSGeocoder) {
		g.maxAttempts = maxAttempts
		g.backoff = backoff
	}
}

func NewORSGeocoder(apiKey string, opts ...ORSOption) (*ORSGeocoder, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}

	g := &ORSGeocoder{
		session:     &http.Client{Timeout: 10 * time.Second},
		apiKey:      apiKey,
		baseURL:     DefaultORSBaseURL,
		limiter:     rate.NewLimiter(rate.Limit(1), 1),
		maxAttempts: 4,
		backoff:     200 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.maxAttempts < 1 {
		g.maxAttempts = 1
	}

	return g, nil
}

type geocodeResponse struct {
	Features []struct {
		Geometry struct {
			Coordinates []float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"features"`
}

// normalize collapses whitespace so equal places produce equal queries.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func (g *ORSGeocoder) LookupCoordinates(ctx context.Context, place domain.Place) (_ domain.Coordinates, _ bool, err error) {
	ctx, done := obs.Span(ctx, "ors.geocode",
		attribute.String("country", place.Country),
		attribute.String("city", place.City),
	)
	defer done(&err)

	start := time.Now()
	defer func() { obs.RecordExternalRequest(orsServiceName, time.Since(start), err == nil) }()

	text := normalize(place.City) + ", " + normalize(place.Country)
	endpoint := g.baseURL + "/geocode/search"

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := g.newRequest(ctx, http.MethodGet, endpoint)
		if err != nil {
			return nil, err
		}
		q := req.URL.Query()
		q.Set("text", text)
		q.Set("size", "1")
		req.URL.RawQuery = q.Encode()
		return req, nil
	})
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("ors geocode %q: execute request: %w", text, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.Coordinates{}, false, fmt.Errorf("ors geocode %q: unexpected status: %d", text, resp.StatusCode)
	}

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("ors geocode %q: decode response: %w", text, err)
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinates{}, false, nil
	}

	c, err := domain.CoordinatesFromList(decoded.Features[0].Geometry.Coordinates)
	if err != nil {
		return domain.Coordinates{}, false, fmt.Errorf("ors geocode %q: %w", text, err)
	}

	return c, true, nil
}
