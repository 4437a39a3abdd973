package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/centshift/centshift_backend/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type BudgetHandlerTestSuite struct {
	suite.Suite
	router                 *gin.Engine
	mockTransactionService *MockTransactionService
	mockBudgetService      *MockBudgetService
	mockReceiptService     *MockReceiptService
}

func (suite *BudgetHandlerTestSuite) SetupTest() {
	suite.mockTransactionService = new(MockTransactionService)
	suite.mockBudgetService = new(MockBudgetService)
	suite.mockReceiptService = new(MockReceiptService)
	suite.router = newTestRouter(suite.mockTransactionService, suite.mockBudgetService, suite.mockReceiptService)
}

func fiftyThirtyTwentyPlan(salary decimal.Decimal) domain.AllocationPlan {
	return domain.AllocationPlan{
		StrategyKey: "50/30/20",
		Allocations: []domain.CategoryAllocation{
			{Category: "Expenses (Necessities)", Amount: salary.Mul(decimal.RequireFromString("0.50"))},
			{Category: "Investments", Amount: salary.Mul(decimal.RequireFromString("0.30"))},
			{Category: "Personal (Wants)", Amount: salary.Mul(decimal.RequireFromString("0.20"))},
		},
	}
}

// --- Calculate ---

func (suite *BudgetHandlerTestSuite) TestCalculateAllocation_Success() {
	salary := decimal.NewFromInt(1000)
	suite.mockBudgetService.On("CalculateAllocation",
		mock.Anything,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(salary) }),
		"50/30/20",
	).Return(fiftyThirtyTwentyPlan(salary)).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/calculate?amount=1000&strategy=50%2F30%2F20", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	// The response object preserves the strategy's category order.
	suite.JSONEq(`{"Expenses (Necessities)":"500","Investments":"300","Personal (Wants)":"200"}`, w.Body.String())
	suite.Contains(w.Body.String(), `"Expenses (Necessities)":"500","Investments":"300","Personal (Wants)":"200"`)

	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestCalculateAllocation_InvalidAmount() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/calculate?amount=abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "CalculateAllocation")
}

func (suite *BudgetHandlerTestSuite) TestCalculateAllocation_MissingAmount() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/calculate", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "CalculateAllocation")
}

// --- Strategies ---

func (suite *BudgetHandlerTestSuite) TestListStrategies() {
	keys := []string{"50/30/20", "Smart Saver (50/30/10/10)", "70/20/10", "Aggressive Investor (30/30/40)"}
	suite.mockBudgetService.On("ListStrategies", mock.Anything).Return(keys).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/strategies", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.StrategyListResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(keys, resp.Strategies)

	suite.mockBudgetService.AssertExpectations(suite.T())
}

// --- Snapshot ---

func (suite *BudgetHandlerTestSuite) TestSpendingSnapshot_Success() {
	snapshot := &domain.SpendingSnapshot{
		StrategyKey: "50/30/20",
		Entries: []domain.CategorySpending{
			{
				Category: "Expenses (Necessities)",
				Spent:    decimal.NewFromInt(600),
				Limit:    decimal.NewFromInt(500),
				OverBy:   decimal.NewFromInt(100),
				Progress: 1,
			},
			{
				Category: "Investments",
				Spent:    decimal.Zero,
				Limit:    decimal.NewFromInt(300),
				OverBy:   decimal.Zero,
				Progress: 0,
			},
		},
	}
	suite.mockBudgetService.On("SpendingSnapshot",
		mock.Anything,
		mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(1000)) }),
		"50/30/20",
	).Return(snapshot, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/snapshot?amount=1000&strategy=50%2F30%2F20", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.SpendingSnapshotResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("50/30/20", resp.Strategy)
	suite.Len(resp.Entries, 2)
	suite.Equal("Expenses (Necessities)", resp.Entries[0].Category)
	suite.True(resp.Entries[0].OverBy.Equal(decimal.NewFromInt(100)))
	suite.InDelta(1.0, resp.Entries[0].Progress, 0.0001)

	suite.mockBudgetService.AssertExpectations(suite.T())
}

func (suite *BudgetHandlerTestSuite) TestSpendingSnapshot_InvalidAmount() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/snapshot?amount=lots", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockBudgetService.AssertNotCalled(suite.T(), "SpendingSnapshot")
}

func (suite *BudgetHandlerTestSuite) TestSpendingSnapshot_ServiceError() {
	suite.mockBudgetService.On("SpendingSnapshot", mock.Anything, mock.Anything, "").
		Return(nil, errors.New("db down")).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/budget/snapshot?amount=1000", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockBudgetService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestBudgetHandler(t *testing.T) {
	suite.Run(t, new(BudgetHandlerTestSuite))
}
