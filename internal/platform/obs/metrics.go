package obs

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resolver lookup sources.
const (
	SourceStatic = "static"
	SourceMemo   = "memo"
	SourceCache  = "cache"
	SourceLookup = "lookup"
	SourceMiss   = "miss"
	SourceError  = "error"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_emissions_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shipment_emissions_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0},
		},
		[]string{"method", "path"},
	)

	OptimizationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_emissions_optimizations_total",
			Help: "Total number of route optimizations by route class and winning strategy",
		},
		[]string{"route_class", "strategy"},
	)

	CO2SavedKgTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipment_emissions_co2_saved_kg_total",
			Help: "Sum of CO2 savings against the single-mode baseline, in kg",
		},
	)

	ResolverLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_emissions_resolver_lookups_total",
			Help: "Location resolutions by the source that answered them",
		},
		[]string{"source"},
	)

	ExternalRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shipment_emissions_external_requests_total",
			Help: "Total number of external service requests",
		},
		[]string{"service", "status"},
	)

	ExternalRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "shipment_emissions_external_request_duration_seconds",
			Help:    "External service request duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0},
		},
		[]string{"service"},
	)
)

func RecordHTTPRequest(method, path string, status int, d time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

func RecordOptimization(routeClass, strategy string, savingsKg float64) {
	OptimizationsTotal.WithLabelValues(routeClass, strategy).Inc()
	if savingsKg > 0 {
		CO2SavedKgTotal.Add(savingsKg)
	}
}

func RecordResolverLookup(source string) {
	ResolverLookupsTotal.WithLabelValues(source).Inc()
}

func RecordExternalRequest(service string, d time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	ExternalRequestsTotal.WithLabelValues(service, status).Inc()
	ExternalRequestDuration.WithLabelValues(service).Observe(d.Seconds())
}
