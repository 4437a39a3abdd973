package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/centshift/centshift_backend/internal/apperrors"
	"github.com/centshift/centshift_backend/internal/core/domain"
	portsrepo "github.com/centshift/centshift_backend/internal/core/ports/repositories"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"github.com/centshift/centshift_backend/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
}

// NewTransactionService creates a new ledger service backed by the given repository.
func NewTransactionService(repo portsrepo.TransactionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request, assigns an ID and appends the
// transaction to the ledger. Transactions are immutable snapshots: once
// appended they are never mutated.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	kind := domain.TransactionKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type '%s'", apperrors.ErrValidation, req.Kind)
	}

	currency := domain.Currency(req.Currency)
	if !currency.IsValid() {
		return nil, fmt.Errorf("%w: unsupported currency '%s'", apperrors.ErrValidation, req.Currency)
	}

	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must be non-negative, got %s", apperrors.ErrValidation, req.Amount)
	}

	occurredOn, err := time.Parse(dto.TransactionDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date '%s', expected YYYY-MM-DD", apperrors.ErrValidation, req.Date)
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		Kind:          kind,
		Amount:        req.Amount,
		Currency:      currency,
		OccurredOn:    occurredOn,
		Category:      req.Category,
		Description:   req.Description,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to create transaction in service: %w", err)
	}

	s.LogInfo(ctx, "Transaction appended to ledger",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("kind", string(txn.Kind)),
		slog.String("category", txn.Category))
	return &txn, nil
}

// GetTransactionByID retrieves a single transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by ID in service: %w", err)
	}
	return txn, nil
}

// ListTransactions retrieves a page of transactions in insertion order.
func (s *transactionService) ListTransactions(ctx context.Context, limit int, offset int) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions in service: %w", err)
	}
	// Return empty slice if no transactions found, not nil
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}
