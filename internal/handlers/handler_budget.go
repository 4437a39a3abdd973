package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/centshift/centshift_backend/internal/core/ports/services"
	"github.com/centshift/centshift_backend/internal/dto"
	"github.com/centshift/centshift_backend/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// budgetHandler handles HTTP requests related to budget allocation.
type budgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// newBudgetHandler creates a new budgetHandler.
func newBudgetHandler(bs portssvc.BudgetSvcFacade) *budgetHandler {
	return &budgetHandler{
		budgetService: bs,
	}
}

// registerBudgetRoutes registers routes related to budget allocation.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := newBudgetHandler(budgetService)

	budget := rg.Group("/budget")
	{
		budget.GET("/calculate", h.calculateAllocation)
		budget.GET("/strategies", h.listStrategies)
		budget.GET("/snapshot", h.spendingSnapshot)
	}
}

// calculateAllocation godoc
// @Summary Calculate a budget allocation plan
// @Description Splits a salary across the categories of the named strategy. Unknown strategies fall back to a single Unallocated category.
// @Tags budget
// @Produce  json
// @Param   amount query number true "Salary amount"
// @Param   strategy query string false "Strategy key"
// @Success 200 {object} map[string]string "Ordered category to amount mapping"
// @Failure 400 {object} map[string]string "Invalid amount"
// @Router /budget/calculate [get]
func (h *budgetHandler) calculateAllocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	salary, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		logger.Warn("Invalid amount for allocation", slog.String("amount", c.Query("amount")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'amount' query parameter"})
		return
	}
	strategy := c.Query("strategy")

	plan := h.budgetService.CalculateAllocation(c.Request.Context(), salary, strategy)

	// The plan marshals as an ordered JSON object, category -> amount.
	c.JSON(http.StatusOK, plan)
}

// listStrategies godoc
// @Summary List recognized allocation strategies
// @Description Retrieves the strategy keys accepted by the allocation calculator, in order
// @Tags budget
// @Produce  json
// @Success 200 {object} dto.StrategyListResponse
// @Router /budget/strategies [get]
func (h *budgetHandler) listStrategies(c *gin.Context) {
	keys := h.budgetService.ListStrategies(c.Request.Context())
	c.JSON(http.StatusOK, dto.StrategyListResponse{Strategies: keys})
}

// spendingSnapshot godoc
// @Summary Compare ledger spending against an allocation plan
// @Description Computes the plan for the given salary and strategy, then reports per-category spent/limit/overBy for the whole ledger
// @Tags budget
// @Produce  json
// @Param   amount query number true "Salary amount"
// @Param   strategy query string false "Strategy key"
// @Success 200 {object} dto.SpendingSnapshotResponse
// @Failure 400 {object} map[string]string "Invalid amount"
// @Failure 500 {object} map[string]string "Failed to compute snapshot"
// @Router /budget/snapshot [get]
func (h *budgetHandler) spendingSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	salary, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		logger.Warn("Invalid amount for snapshot", slog.String("amount", c.Query("amount")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'amount' query parameter"})
		return
	}
	strategy := c.Query("strategy")

	snapshot, err := h.budgetService.SpendingSnapshot(c.Request.Context(), salary, strategy)
	if err != nil {
		logger.Error("Failed to compute spending snapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute spending snapshot"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSpendingSnapshotResponse(snapshot))
}
