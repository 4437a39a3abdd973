package services

import (
	portsrepo "github.com/centshift/centshift_backend/internal/core/ports/repositories"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly
// initialized dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, analyzer portssvc.ReceiptAnalyzer) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Budget:      NewBudgetService(repos.TransactionRepo),
		Receipt:     NewReceiptService(analyzer),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.ReceiptSvcFacade     = (*receiptService)(nil)
)
