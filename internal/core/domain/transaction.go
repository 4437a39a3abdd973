package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind classifies a transaction by the direction and purpose of the money flow.
type TransactionKind string

const (
	KindExpense    TransactionKind = "expense"
	KindIncome     TransactionKind = "income"
	KindInvestment TransactionKind = "investment"
	KindSaving     TransactionKind = "saving"
)

// IsValid reports whether k is one of the recognized transaction kinds.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindExpense, KindIncome, KindInvestment, KindSaving:
		return true
	}
	return false
}

// IsSpending reports whether the kind consumes a budget allocation.
// Income represents inflow, not allocation consumption, so it is excluded.
func (k TransactionKind) IsSpending() bool {
	switch k {
	case KindExpense, KindInvestment, KindSaving:
		return true
	}
	return false
}

// Currency is one of the supported ISO currency codes.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyBRL Currency = "BRL"
	CurrencyCHF Currency = "CHF"
)

// IsValid reports whether c is one of the supported currencies.
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyEUR, CurrencyUSD, CurrencyBRL, CurrencyCHF:
		return true
	}
	return false
}

// Transaction represents a single financial event in the ledger.
// Transactions are immutable once appended; the store assigns the ID.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID), assigned on creation
	Kind          TransactionKind `json:"kind"`          // expense, income, investment or saving
	Amount        decimal.Decimal `json:"amount"`        // Non-negative; precise decimal type
	Currency      Currency        `json:"currency"`      // EUR, USD, BRL or CHF
	OccurredOn    time.Time       `json:"occurredOn"`    // Calendar date, no time component
	Category      string          `json:"category"`      // Empty means uncategorized
	Description   string          `json:"description"`   // Nullable
	CreatedAt     time.Time       `json:"createdAt"`
}
