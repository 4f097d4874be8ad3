package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSchemaCreatesTables(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS geocode_cache").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS emission_records").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_emission_records_created_at").WillReturnResult(pgxmock.NewResult("CREATE", 0))
	mock.ExpectCommit()

	require.NoError(t, InitSchema(context.Background(), mock))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchemaRollsBackOnFailure(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS geocode_cache").WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = InitSchema(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statement #1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchemaNilDB(t *testing.T) {
	assert.Error(t, InitSchema(context.Background(), nil))
}
