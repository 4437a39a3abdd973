package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/centshift/centshift_backend/internal/apperrors"
	"github.com/centshift/centshift_backend/internal/core/domain"
	portsrepo "github.com/centshift/centshift_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTransactionRepository creates a new repository for ledger data.
func NewPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{pool: pool}
}

// Ensure PgxTransactionRepository implements the repository port
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction appends a transaction to the ledger. The ledger is
// append-only, so this is a plain insert with no upsert clause.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (transaction_id, kind, amount, currency, occurred_on, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`

	_, err := r.pool.Exec(ctx, query,
		txn.TransactionID,
		string(txn.Kind),
		txn.Amount,
		string(txn.Currency),
		txn.OccurredOn,
		txn.Category,
		txn.Description,
		txn.CreatedAt,
	)

	if err != nil {
		return saveTransactionError(txn.TransactionID, err)
	}
	return nil
}

// saveTransactionError maps insert failures to application errors. A
// unique violation on the primary key means the transaction ID was
// already appended, e.g. by a retried request.
func saveTransactionError(transactionID string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
		return fmt.Errorf("transaction %s already exists: %w", transactionID, apperrors.ErrDuplicate)
	}
	return fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
}

// FindTransactionByID retrieves a transaction by its ID.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, kind, amount, currency, occurred_on, category, description, created_at
		FROM transactions
		WHERE transaction_id = $1;
	`
	var txn domain.Transaction
	err := r.pool.QueryRow(ctx, query, transactionID).Scan(
		&txn.TransactionID,
		&txn.Kind,
		&txn.Amount,
		&txn.Currency,
		&txn.OccurredOn,
		&txn.Category,
		&txn.Description,
		&txn.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Map db not found error to application specific error
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}

	return &txn, nil
}

// ListTransactions retrieves a page of transactions in insertion order.
// created_at plus transaction_id keeps the ordering stable for rows
// inserted in the same instant.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	// Default limit if not specified or invalid
	if limit <= 0 {
		limit = 100
	}
	// Ensure offset is non-negative
	if offset < 0 {
		offset = 0
	}

	query := `
		SELECT transaction_id, kind, amount, currency, occurred_on, category, description, created_at
		FROM transactions
		ORDER BY created_at, transaction_id
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		var txn domain.Transaction
		err := row.Scan(
			&txn.TransactionID,
			&txn.Kind,
			&txn.Amount,
			&txn.Currency,
			&txn.OccurredOn,
			&txn.Category,
			&txn.Description,
			&txn.CreatedAt,
		)
		return txn, err
	})

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []domain.Transaction{}, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return txns, nil
}
