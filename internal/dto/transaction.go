package dto

import (
	"time"

	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionDateLayout is the wire format for transaction dates. Dates
// are calendar days, no time component.
const TransactionDateLayout = "2006-01-02"

// CreateTransactionRequest defines the data needed to append a transaction.
// Field names follow the public payload contract: {type, amount, currency,
// date, category?, description?}.
type CreateTransactionRequest struct {
	Kind        string          `json:"type" binding:"required,oneof=expense income investment saving"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Currency    string          `json:"currency" binding:"required,oneof=EUR USD BRL CHF"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
}

// TransactionResponse defines the data returned for a transaction: the
// creation payload plus the store-assigned id.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Kind        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        string          `json:"date"`
	Category    string          `json:"category,omitempty"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          txn.TransactionID,
		Kind:        string(txn.Kind),
		Amount:      txn.Amount,
		Currency:    string(txn.Currency),
		Date:        txn.OccurredOn.Format(TransactionDateLayout),
		Category:    txn.Category,
		Description: txn.Description,
		CreatedAt:   txn.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}
