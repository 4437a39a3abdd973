package services

import (
	"context"

	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/centshift/centshift_backend/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions in insertion order.
	ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for ledger data
type TransactionWriterSvc interface {
	// CreateTransaction validates and appends a new transaction, returning
	// it with its assigned ID.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
