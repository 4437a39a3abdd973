// Package budgeting holds the pure budget math: salary allocation and
// spending snapshots. Everything here is referentially transparent and
// safe for concurrent use.
package budgeting

import (
	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Allocate splits a salary across the categories of the named strategy.
// It is a total function: an unrecognized strategy key falls back to a
// single "Unallocated" category holding the full salary, never an error.
// The salary is taken as-is, without sign validation, matching the
// calculator's historical behavior.
func Allocate(salary decimal.Decimal, strategyKey string) domain.AllocationPlan {
	strategy, ok := domain.StrategyByKey(strategyKey)
	if !ok {
		return domain.AllocationPlan{
			StrategyKey: strategyKey,
			Allocations: []domain.CategoryAllocation{
				{Category: domain.CategoryUnallocated, Amount: salary},
			},
		}
	}

	allocations := make([]domain.CategoryAllocation, len(strategy.Splits))
	for i, split := range strategy.Splits {
		allocations[i] = domain.CategoryAllocation{
			Category: split.Category,
			Amount:   salary.Mul(split.Fraction),
		}
	}

	return domain.AllocationPlan{
		StrategyKey: strategy.Key,
		Allocations: allocations,
	}
}
