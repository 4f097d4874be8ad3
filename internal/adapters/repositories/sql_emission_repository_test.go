package repositories

import (
	"context"
	"regexp"
	"shipment-emissions-service/internal/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"id", "source", "destination", "transport_mode", "distance_km", "co2_kg", "weight_tons", "created_at"}

func TestSQLEmissionRepositorySaveRecord(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rec := domain.EmissionRecord{
		ID:            uuid.MustParse("7b0f3c1e-3f0a-4c55-9a0e-2b7d1c9e4f11"),
		Source:        "Lagos, Nigeria",
		Destination:   "Abuja, Nigeria",
		TransportMode: "Truck",
		DistanceKm:    533.79,
		CO2Kg:         256.22,
		WeightTons:    5,
		CreatedAt:     time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO emission_records").
		WithArgs(rec.ID, rec.Source, rec.Destination, rec.TransportMode, rec.DistanceKm, rec.CO2Kg, rec.WeightTons, rec.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	repo := NewSQLEmissionRepository(mock)
	require.NoError(t, repo.SaveRecord(context.Background(), rec))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEmissionRepositoryListRecords(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	newer := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	id1, id2 := uuid.New(), uuid.New()

	mock.ExpectQuery("FROM emission_records").
		WithArgs(DefaultRecordLimit).
		WillReturnRows(pgxmock.NewRows(recordColumns).
			AddRow(id1, "New York, USA", "Shanghai, China", "Ship 90% + Train 10%", 11858.43, 2039.65, 10.0, newer).
			AddRow(id2, "Lagos, Nigeria", "Abuja, Nigeria", "Truck", 533.79, 256.22, 5.0, older))

	repo := NewSQLEmissionRepository(mock)
	records, err := repo.ListRecords(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, id1, records[0].ID)
	assert.Equal(t, "Ship 90% + Train 10%", records[0].TransportMode)
	assert.Equal(t, newer, records[0].CreatedAt)
	assert.Equal(t, "Truck", records[1].TransportMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEmissionRepositoryListClampsLimit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery("FROM emission_records").
		WithArgs(MaxRecordLimit).
		WillReturnRows(pgxmock.NewRows(recordColumns))

	repo := NewSQLEmissionRepository(mock)
	records, err := repo.ListRecords(context.Background(), 1_000_000)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEmissionRepositoryDeleteRecordsBefore(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	cutoff := time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM emission_records WHERE created_at < $1`)).
		WithArgs(cutoff).
		WillReturnResult(pgxmock.NewResult("DELETE", 3))

	repo := NewSQLEmissionRepository(mock)
	n, err := repo.DeleteRecordsBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
