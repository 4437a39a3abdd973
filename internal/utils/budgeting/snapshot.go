package budgeting

import (
	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Snapshot compares a set of transactions against an allocation plan.
// Only spending kinds (expense, investment, saving) count towards totals;
// income is inflow, not allocation consumption. Categories are matched by
// exact string against the plan's labels; transaction categories absent
// from the plan simply have no limit to report against and are ignored.
func Snapshot(transactions []domain.Transaction, plan domain.AllocationPlan) domain.SpendingSnapshot {
	spentByCategory := make(map[string]decimal.Decimal)
	for _, txn := range transactions {
		if !txn.Kind.IsSpending() {
			continue
		}
		spentByCategory[txn.Category] = spentByCategory[txn.Category].Add(txn.Amount)
	}

	entries := make([]domain.CategorySpending, len(plan.Allocations))
	for i, allocation := range plan.Allocations {
		spent := spentByCategory[allocation.Category]
		limit := allocation.Amount

		overBy := spent.Sub(limit)
		if overBy.IsNegative() {
			overBy = decimal.Zero
		}

		entries[i] = domain.CategorySpending{
			Category: allocation.Category,
			Spent:    spent,
			Limit:    limit,
			OverBy:   overBy,
			Progress: progressRatio(spent, limit),
		}
	}

	return domain.SpendingSnapshot{
		StrategyKey: plan.StrategyKey,
		Entries:     entries,
	}
}

// progressRatio returns min(spent/limit, 1), with 0 for a non-positive
// limit so a zero allocation never divides by zero.
func progressRatio(spent, limit decimal.Decimal) float64 {
	if limit.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio, _ := spent.Div(limit).Float64()
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}
