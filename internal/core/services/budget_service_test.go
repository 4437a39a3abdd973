package services_test

import (
	"context"
	"testing"

	"github.com/centshift/centshift_backend/internal/core/domain"
	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"github.com/centshift/centshift_backend/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewBudgetService(suite.mockRepo)
}

func (suite *BudgetServiceTestSuite) TestCalculateAllocation() {
	ctx := context.Background()

	plan := suite.service.CalculateAllocation(ctx, decimal.NewFromInt(1000), "50/30/20")

	suite.Require().Len(plan.Allocations, 3)
	suite.Equal("Expenses (Necessities)", plan.Allocations[0].Category)
	suite.True(plan.Allocations[0].Amount.Equal(decimal.NewFromInt(500)))
	suite.True(plan.Total().Equal(decimal.NewFromInt(1000)))
	// The engine never touches the repository.
	suite.mockRepo.AssertNotCalled(suite.T(), "ListTransactions")
}

func (suite *BudgetServiceTestSuite) TestCalculateAllocation_Fallback() {
	ctx := context.Background()

	plan := suite.service.CalculateAllocation(ctx, decimal.NewFromInt(750), "yolo")

	suite.Require().Len(plan.Allocations, 1)
	suite.Equal(domain.CategoryUnallocated, plan.Allocations[0].Category)
	suite.True(plan.Allocations[0].Amount.Equal(decimal.NewFromInt(750)))
}

func (suite *BudgetServiceTestSuite) TestListStrategies() {
	keys := suite.service.ListStrategies(context.Background())

	suite.Equal([]string{
		"50/30/20",
		"Smart Saver (50/30/10/10)",
		"70/20/10",
		"Aggressive Investor (30/30/40)",
	}, keys)
}

func (suite *BudgetServiceTestSuite) TestSpendingSnapshot_SinglePage() {
	ctx := context.Background()
	ledger := []domain.Transaction{
		{Kind: domain.KindExpense, Category: "Expenses (Necessities)", Amount: decimal.NewFromInt(600)},
		{Kind: domain.KindIncome, Category: "Expenses (Necessities)", Amount: decimal.NewFromInt(2000)},
	}

	suite.mockRepo.On("ListTransactions", ctx, 500, 0).Return(ledger, nil).Once()

	snapshot, err := suite.service.SpendingSnapshot(ctx, decimal.NewFromInt(1000), "50/30/20")

	suite.Require().NoError(err)
	suite.Require().NotNil(snapshot)
	suite.Require().Len(snapshot.Entries, 3)
	suite.True(snapshot.Entries[0].Spent.Equal(decimal.NewFromInt(600)))
	suite.True(snapshot.Entries[0].Limit.Equal(decimal.NewFromInt(500)))
	suite.True(snapshot.Entries[0].OverBy.Equal(decimal.NewFromInt(100)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSpendingSnapshot_PagesThroughLedger() {
	ctx := context.Background()

	fullPage := make([]domain.Transaction, 500)
	for i := range fullPage {
		fullPage[i] = domain.Transaction{
			Kind:     domain.KindExpense,
			Category: "Investments",
			Amount:   decimal.NewFromInt(1),
		}
	}
	lastPage := []domain.Transaction{
		{Kind: domain.KindExpense, Category: "Investments", Amount: decimal.NewFromInt(5)},
	}

	suite.mockRepo.On("ListTransactions", ctx, 500, 0).Return(fullPage, nil).Once()
	suite.mockRepo.On("ListTransactions", ctx, 500, 500).Return(lastPage, nil).Once()

	snapshot, err := suite.service.SpendingSnapshot(ctx, decimal.NewFromInt(1000), "50/30/20")

	suite.Require().NoError(err)
	suite.True(snapshot.Entries[1].Spent.Equal(decimal.NewFromInt(505)))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestSpendingSnapshot_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("ListTransactions", ctx, 500, 0).Return(nil, expectedErr).Once()

	snapshot, err := suite.service.SpendingSnapshot(ctx, decimal.NewFromInt(1000), "50/30/20")

	suite.Require().Error(err)
	suite.Nil(snapshot)
	suite.ErrorIs(err, expectedErr)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
