package dto

import (
	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StrategyListResponse lists the recognized strategy keys in order.
type StrategyListResponse struct {
	Strategies []string `json:"strategies"`
}

// CategorySpendingResponse is one snapshot row: actual spending versus the
// plan's limit for a single category.
type CategorySpendingResponse struct {
	Category string          `json:"category"`
	Spent    decimal.Decimal `json:"spent"`
	Limit    decimal.Decimal `json:"limit"`
	OverBy   decimal.Decimal `json:"overBy"`
	Progress float64         `json:"progress"`
}

// SpendingSnapshotResponse compares the ledger against an allocation plan.
type SpendingSnapshotResponse struct {
	Strategy string                     `json:"strategy"`
	Entries  []CategorySpendingResponse `json:"entries"`
}

// ToSpendingSnapshotResponse converts a domain snapshot to its DTO.
func ToSpendingSnapshotResponse(snapshot *domain.SpendingSnapshot) SpendingSnapshotResponse {
	entries := make([]CategorySpendingResponse, len(snapshot.Entries))
	for i, entry := range snapshot.Entries {
		entries[i] = CategorySpendingResponse{
			Category: entry.Category,
			Spent:    entry.Spent,
			Limit:    entry.Limit,
			OverBy:   entry.OverBy,
			Progress: entry.Progress,
		}
	}
	return SpendingSnapshotResponse{
		Strategy: snapshot.StrategyKey,
		Entries:  entries,
	}
}
