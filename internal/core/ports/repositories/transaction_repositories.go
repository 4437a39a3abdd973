package repositories

import (
	"context"

	"github.com/centshift/centshift_backend/internal/core/domain"
)

// TransactionReader defines read operations for ledger data
type TransactionReader interface {
	// FindTransactionByID retrieves a single transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions in stable insertion order.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for ledger data
type TransactionWriter interface {
	// SaveTransaction appends a new transaction to the ledger.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionRepository combines all ledger repository interfaces.
// The ledger is append-only: there is no update or delete operation.
type TransactionRepository interface {
	TransactionReader
	TransactionWriter
}
