package ports

import (
	"context"
	"shipment-emissions-service/internal/domain"
	"time"
)

// Port: persistence boundary for computed shipment emission records.
type EmissionRecordRepository interface {
	SaveRecord(ctx context.Context, rec domain.EmissionRecord) error
	// List the most recent records first.
	ListRecords(ctx context.Context, limit int) ([]domain.EmissionRecord, error)
	// Delete records created before cutoff and return how many were removed.
	DeleteRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
