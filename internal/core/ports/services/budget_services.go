package services

import (
	"context"

	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BudgetSvcFacade exposes the budget allocation calculator and the
// spending snapshot derived from it.
type BudgetSvcFacade interface {
	// CalculateAllocation splits a salary across the named strategy's
	// categories. Total function: unknown strategies fall back to a
	// single Unallocated category, so there is no error path.
	CalculateAllocation(ctx context.Context, salary decimal.Decimal, strategyKey string) domain.AllocationPlan

	// ListStrategies returns the recognized strategy keys in order.
	ListStrategies(ctx context.Context) []string

	// SpendingSnapshot computes the allocation plan for the given salary
	// and strategy, then compares the full ledger against it.
	SpendingSnapshot(ctx context.Context, salary decimal.Decimal, strategyKey string) (*domain.SpendingSnapshot, error)
}
