package repositories

import (
	"context"
	"errors"
	"fmt"
	"shipment-emissions-service/internal/domain"
	"shipment-emissions-service/internal/platform/db"
	"shipment-emissions-service/internal/platform/obs"
	"time"
)

const (
	DefaultRecordLimit = 50
	MaxRecordLimit     = 1000
)

// Postgres-backed implementation of the EmissionRecordRepository port.
type SQLEmissionRepository struct{ DB db.DBTX }

func NewSQLEmissionRepository(conn db.DBTX) *SQLEmissionRepository {
	return &SQLEmissionRepository{DB: conn}
}

func (s *SQLEmissionRepository) SaveRecord(ctx context.Context, rec domain.EmissionRecord) (err error) {
	ctx, done := obs.Span(ctx, "records.save")
	defer done(&err)

	if s.DB == nil {
		return errors.New("sql emission repository: DB is nil")
	}

	query := `
	INSERT INTO emission_records (
		id,
		source,
		destination,
		transport_mode,
		distance_km,
		co2_kg,
		weight_tons,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = s.DB.Exec(ctx, query,
		rec.ID, rec.Source, rec.Destination, rec.TransportMode,
		rec.DistanceKm, rec.CO2Kg, rec.WeightTons, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save emission record %s: %w", rec.ID, err)
	}
	return nil
}

// Return the most recent records, newest first. limit is clamped to
// [1, MaxRecordLimit]; zero or negative selects DefaultRecordLimit.
func (s *SQLEmissionRepository) ListRecords(ctx context.Context, limit int) (_ []domain.EmissionRecord, err error) {
	ctx, done := obs.Span(ctx, "records.list")
	defer done(&err)

	if s.DB == nil {
		return nil, errors.New("sql emission repository: DB is nil")
	}

	if limit <= 0 {
		limit = DefaultRecordLimit
	}
	if limit > MaxRecordLimit {
		limit = MaxRecordLimit
	}

	query := `
	SELECT
		id,
		source,
		destination,
		transport_mode,
		distance_km,
		co2_kg,
		weight_tons,
		created_at
	FROM emission_records
	ORDER BY created_at DESC
	LIMIT $1;
	`
	rows, err := s.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list emission records: query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EmissionRecord, 0, limit)
	for rows.Next() {
		var r domain.EmissionRecord
		if err := rows.Scan(
			&r.ID, &r.Source, &r.Destination, &r.TransportMode,
			&r.DistanceKm, &r.CO2Kg, &r.WeightTons, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list emission records: scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list emission records: row iteration: %w", err)
	}

	return records, nil
}

func (s *SQLEmissionRepository) DeleteRecordsBefore(ctx context.Context, cutoff time.Time) (_ int64, err error) {
	ctx, done := obs.Span(ctx, "records.cleanup")
	defer done(&err)

	if s.DB == nil {
		return 0, errors.New("sql emission repository: DB is nil")
	}

	tag, err := s.DB.Exec(ctx, `DELETE FROM emission_records WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete emission records before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return tag.RowsAffected(), nil
}
