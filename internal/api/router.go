package api

import (
	"net/http"
	"shipment-emissions-service/internal/api/handlers"
	"shipment-emissions-service/internal/ports"
	"shipment-emissions-service/internal/services"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer needs. Records, Catalog and Pricer are optional.
type Deps struct {
	Shipments *services.ShipmentService
	Records   ports.EmissionRecordRepository
	Catalog   ports.LocationCatalog
	Pricer    *services.CarbonPricer
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(deps Deps) http.Handler {
	mux := http.NewServeMux()

	optimizer := deps.Shipments.Optimizer()

	shipmentHandler := &handlers.ShipmentHandler{Service: deps.Shipments, Pricer: deps.Pricer}
	locationHandler := &handlers.LocationHandler{
		Table:   deps.Shipments.Resolver().Table(),
		Model:   optimizer.Model(),
		Catalog: deps.Catalog,
	}
	recordHandler := &handlers.RecordHandler{Repo: deps.Records}
	loadHandler := &handlers.LoadHandler{Model: optimizer.Model()}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/emissions", shipmentHandler.Emissions)
	mux.HandleFunc("/routes/optimize", shipmentHandler.Optimize)
	mux.HandleFunc("/locations", locationHandler.List)
	mux.HandleFunc("/transport-modes", locationHandler.Modes)
	mux.HandleFunc("/records", recordHandler.List)
	mux.HandleFunc("/load-optimizations", loadHandler.Optimize)
	mux.Handle("/metrics", promhttp.Handler())

	return requestIDMiddleware(loggingMiddleware(mux))
}
