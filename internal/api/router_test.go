package api

import (
	"net/http"
	"net/http/httptest"
	"shipment-emissions-service/internal/platform/obs"
	"shipment-emissions-service/internal/services"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	resolver, err := services.NewLocationResolver(services.DefaultLocationTable())
	require.NoError(t, err)
	optimizer, err := services.NewOptimizer(services.DefaultEmissionModel(), services.DefaultPolicyTable())
	require.NoError(t, err)
	svc, err := services.NewShipmentService(resolver, optimizer, nil)
	require.NoError(t, err)

	return NewRouter(Deps{Shipments: svc})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		method, path, body string
		want               int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodGet, "/locations", "", http.StatusOK},
		{http.MethodGet, "/transport-modes", "", http.StatusOK},
		{http.MethodGet, "/records", "", http.StatusServiceUnavailable},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
		{http.MethodPost, "/routes/optimize", `{"origin":{"country":"Germany","city":"Berlin"},"destination":{"country":"Germany","city":"Hamburg"},"weight_tons":2,"prefer_low_emission_modes":true}`, http.StatusOK},
		{http.MethodPost, "/emissions", `{"origin":{"country":"Germany","city":"Berlin"},"destination":{"country":"Germany","city":"Hamburg"},"weight_tons":2,"transport_mode":"Train"}`, http.StatusOK},
		{http.MethodPost, "/load-optimizations", `{"weight_tons":40,"vehicle_capacity_tons":20}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}
}

func TestRouterAssignsRequestID(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	_, err := uuid.Parse(rec.Header().Get("X-Request-ID"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}

func TestRouterRecordsMetrics(t *testing.T) {
	router := newTestRouter(t)
	counter := obs.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/health", "200")
	before := testutil.ToFloat64(counter)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestRouterCountsOptimizations(t *testing.T) {
	router := newTestRouter(t)
	counter := obs.OptimizationsTotal.WithLabelValues("same_region/short", "Hydrogen Truck 100%")
	before := testutil.ToFloat64(counter)

	body := `{"origin":{"country":"Germany","city":"Berlin"},"destination":{"country":"Germany","city":"Munich"},"weight_tons":1,"prefer_low_emission_modes":true}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes/optimize", strings.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
