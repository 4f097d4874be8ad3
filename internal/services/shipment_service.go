package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/obs"
	"shipment-emissions-service/internal/ports"
	"time"

	"github.com/google/uuid"
)

// ShipmentService is the caller-facing evaluation: resolve, measure, then
// either estimate a single mode or search the mode splits.
type ShipmentService struct {
	resolver  *LocationResolver
	optimizer *Optimizer
	records   ports.EmissionRecordRepository
	now       func() time.Time
}

// records may be nil, in which case evaluations are not persisted.
func NewShipmentService(resolver *LocationResolver, optimizer *Optimizer, records ports.EmissionRecordRepository) (*ShipmentService, error) {
	if resolver == nil || optimizer == nil {
		return nil, errors.New("new shipment service: resolver and optimizer are required")
	}
	return &ShipmentService{
		resolver:  resolver,
		optimizer: optimizer,
		records:   records,
		now:       time.Now,
	}, nil
}

func (s *ShipmentService) Optimizer() *Optimizer { return s.optimizer }

func (s *ShipmentService) Resolver() *LocationResolver { return s.resolver }

// Evaluate runs one shipment through the pipeline. Caller errors are raised
// before any location is resolved.
func (s *ShipmentService) Evaluate(ctx context.Context, req domain.ShipmentRequest) (_ *domain.RouteReport, err error) {
	defer obs.Time(ctx, "shipment.evaluate")(&err)

	if req.Origin == req.Destination {
		return nil, fmt.Errorf("evaluate shipment: %s to itself: %w", req.Origin, domain.ErrDegenerateRoute)
	}
	if !positive(req.WeightTons) {
		return nil, fmt.Errorf("evaluate shipment: weight must be positive (got %v): %w", req.WeightTons, domain.ErrInvalidQuantity)
	}
	if !req.Optimize() {
		if _, err := s.optimizer.Model().Factor(req.TransportMode); err != nil {
			return nil, fmt.Errorf("evaluate shipment: %w", err)
		}
	}

	origin, err := s.resolver.Resolve(ctx, req.Origin.Country, req.Origin.City)
	if err != nil {
		return nil, fmt.Errorf("evaluate shipment: origin: %w", err)
	}
	destination, err := s.resolver.Resolve(ctx, req.Destination.Country, req.Destination.City)
	if err != nil {
		return nil, fmt.Errorf("evaluate shipment: destination: %w", err)
	}

	km, err := Distance(origin, destination)
	if err != nil {
		return nil, fmt.Errorf("evaluate shipment: %w", err)
	}

	var result *domain.OptimizationResult
	if req.Optimize() {
		result, err = s.optimizer.Optimize(origin.Place, destination.Place, km, req.WeightTons, req.PreferLowEmission)
	} else {
		result, err = s.optimizer.Estimate(origin.Place, destination.Place, req.TransportMode, km, req.WeightTons)
	}
	if err != nil {
		return nil, fmt.Errorf("evaluate shipment: %w", err)
	}

	report := Report(*result)
	if req.Optimize() {
		obs.RecordOptimization(report.RouteClass, report.Strategy, result.SavingsKg)
	}

	s.saveRecord(ctx, req, report)

	return &report, nil
}

func (s *ShipmentService) saveRecord(ctx context.Context, req domain.ShipmentRequest, report domain.RouteReport) {
	if s.records == nil {
		return
	}

	label := string(req.TransportMode)
	if req.Optimize() {
		label = report.Strategy
	}

	rec := domain.EmissionRecord{
		ID:            uuid.New(),
		Source:        report.Origin.String(),
		Destination:   report.Destination.String(),
		TransportMode: label,
		DistanceKm:    report.DistanceKm,
		CO2Kg:         report.TotalCO2Kg,
		WeightTons:    req.WeightTons,
		CreatedAt:     s.now().UTC(),
	}
	if err := s.records.SaveRecord(ctx, rec); err != nil {
		slog.WarnContext(ctx, "emission record not saved", "req_id", obs.RequestID(ctx), "record_id", rec.ID.String(), "err", err)
	}
}
