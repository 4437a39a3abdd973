package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptCategories is the fixed category set the extraction prompt
// constrains the model to. It matches the categories exposed to allocation
// consumers plus Income and Other.
var ReceiptCategories = []string{
	"Expenses (Necessities)",
	"Personal (Wants)",
	"Investments",
	"Savings (Emergency Fund)",
	"Income",
	"Other",
}

// ReceiptFields is the structured result of analyzing a receipt image.
// It is ephemeral: nothing is persisted until a caller explicitly converts
// it into a Transaction.
type ReceiptFields struct {
	Total       decimal.Decimal `json:"total"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}
