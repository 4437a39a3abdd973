package domain

import "github.com/shopspring/decimal"

// CategorySpending compares actual spending in one category against the
// plan's limit for it.
type CategorySpending struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	OverBy   decimal.Decimal `json:"overBy"`   // max(0, spent-limit)
	Progress float64         `json:"progress"` // min(spent/limit, 1); 0 when limit is 0
}

// SpendingSnapshot is a point-in-time comparison of a transaction set
// against an AllocationPlan. It is derived on demand and never persisted.
// Entries follow the plan's category order.
type SpendingSnapshot struct {
	StrategyKey string             `json:"strategyKey"`
	Entries     []CategorySpending `json:"entries"`
}
