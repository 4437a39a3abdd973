package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/centshift/centshift_backend/internal/core/domain"
	portsrepo "github.com/centshift/centshift_backend/internal/core/ports/repositories"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"github.com/centshift/centshift_backend/internal/utils/budgeting"
	"github.com/shopspring/decimal"
)

// snapshotPageSize is the batch size used when walking the ledger for a
// spending snapshot.
const snapshotPageSize = 500

// budgetService implements the BudgetSvcFacade interface
type budgetService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
}

// NewBudgetService creates a new budget service. The repository is only
// needed for snapshots; allocation itself is pure.
func NewBudgetService(repo portsrepo.TransactionReader) portssvc.BudgetSvcFacade {
	return &budgetService{transactionRepo: repo}
}

// Ensure budgetService implements the BudgetSvcFacade interface
var _ portssvc.BudgetSvcFacade = (*budgetService)(nil)

// CalculateAllocation splits a salary across the named strategy's categories.
func (s *budgetService) CalculateAllocation(ctx context.Context, salary decimal.Decimal, strategyKey string) domain.AllocationPlan {
	plan := budgeting.Allocate(salary, strategyKey)
	s.LogDebug(ctx, "Allocation plan calculated",
		slog.String("strategy", strategyKey),
		slog.String("salary", salary.String()),
		slog.Int("categories", len(plan.Allocations)))
	return plan
}

// ListStrategies returns the recognized strategy keys in order.
func (s *budgetService) ListStrategies(_ context.Context) []string {
	return domain.StrategyKeys()
}

// SpendingSnapshot computes the plan for the given salary and strategy and
// compares the full ledger against it, paging through the repository.
func (s *budgetService) SpendingSnapshot(ctx context.Context, salary decimal.Decimal, strategyKey string) (*domain.SpendingSnapshot, error) {
	plan := budgeting.Allocate(salary, strategyKey)

	var all []domain.Transaction
	for offset := 0; ; offset += snapshotPageSize {
		page, err := s.transactionRepo.ListTransactions(ctx, snapshotPageSize, offset)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transactions for snapshot",
				slog.Int("offset", offset))
			return nil, fmt.Errorf("failed to load ledger for snapshot: %w", err)
		}
		all = append(all, page...)
		if len(page) < snapshotPageSize {
			break
		}
	}

	snapshot := budgeting.Snapshot(all, plan)

	s.LogInfo(ctx, "Spending snapshot computed",
		slog.String("strategy", plan.StrategyKey),
		slog.Int("transactions", len(all)),
		slog.Int("categories", len(snapshot.Entries)))
	return &snapshot, nil
}
