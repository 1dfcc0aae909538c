package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/pkg/metrics"
)

func TestDB_ExecRecordsErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	m := metrics.NewWithRegistry(prometheus.NewRegistry(), "booking")
	wrapped := Wrap(db, m, "booking")

	mock.ExpectExec("UPDATE payment_confirmations").WillReturnError(assert.AnError)

	_, err = wrapped.ExecContext(context.Background(), "UPDATE payment_confirmations SET status = $1", "x")
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrors.WithLabelValues("booking", "update")))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "insert", operation("  INSERT INTO x VALUES ($1)"))
	assert.Equal(t, "select", operation("SELECT 1"))
	assert.Equal(t, "unknown", operation(""))
}
