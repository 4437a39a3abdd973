package pgsql

import (
	"errors"
	"testing"

	"github.com/centshift/centshift_backend/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestSaveTransactionError_UniqueViolationMapsToDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"}

	err := saveTransactionError("txn-1", pgErr)

	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	assert.Contains(t, err.Error(), "txn-1")
}

func TestSaveTransactionError_OtherPgErrorIsNotDuplicate(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23514"} // check_violation

	err := saveTransactionError("txn-2", pgErr)

	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, pgErr)
}

func TestSaveTransactionError_GenericErrorIsWrapped(t *testing.T) {
	cause := errors.New("connection reset")

	err := saveTransactionError("txn-3", cause)

	assert.NotErrorIs(t, err, apperrors.ErrDuplicate)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to save transaction txn-3")
}
