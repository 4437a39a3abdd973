package budgeting_test

import (
	"encoding/json"
	"testing"

	"github.com/centshift/centshift_backend/internal/core/domain"
	"github.com/centshift/centshift_backend/internal/utils/budgeting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAllocate_FiftyThirtyTwenty(t *testing.T) {
	plan := budgeting.Allocate(d("1000"), "50/30/20")

	require.Len(t, plan.Allocations, 3)
	assert.Equal(t, "Expenses (Necessities)", plan.Allocations[0].Category)
	assert.True(t, plan.Allocations[0].Amount.Equal(d("500")), "got %s", plan.Allocations[0].Amount)
	assert.Equal(t, "Investments", plan.Allocations[1].Category)
	assert.True(t, plan.Allocations[1].Amount.Equal(d("300")), "got %s", plan.Allocations[1].Amount)
	assert.Equal(t, "Personal (Wants)", plan.Allocations[2].Category)
	assert.True(t, plan.Allocations[2].Amount.Equal(d("200")), "got %s", plan.Allocations[2].Amount)
}

func TestAllocate_SumEqualsSalaryForEveryStrategy(t *testing.T) {
	salaries := []decimal.Decimal{d("0"), d("1000"), d("1234.56"), d("0.01"), d("99999.99")}

	for _, key := range domain.StrategyKeys() {
		for _, salary := range salaries {
			plan := budgeting.Allocate(salary, key)
			assert.True(t, plan.Total().Equal(salary),
				"strategy %q salary %s: allocations sum to %s", key, salary, plan.Total())
		}
	}
}

func TestAllocate_CategoryTables(t *testing.T) {
	tests := []struct {
		key        string
		categories []string
		fractions  []string
	}{
		{
			key:        "50/30/20",
			categories: []string{"Expenses (Necessities)", "Investments", "Personal (Wants)"},
			fractions:  []string{"0.50", "0.30", "0.20"},
		},
		{
			key:        "Smart Saver (50/30/10/10)",
			categories: []string{"Expenses (Necessities)", "Investments (Long Term)", "Personal (Wants)", "Savings (Emergency Fund)"},
			fractions:  []string{"0.50", "0.30", "0.10", "0.10"},
		},
		{
			key:        "70/20/10",
			categories: []string{"Expenses (Necessities)", "Personal (Wants)", "Savings/Investments"},
			fractions:  []string{"0.70", "0.20", "0.10"},
		},
		{
			key:        "Aggressive Investor (30/30/40)",
			categories: []string{"Expenses (Necessities)", "Personal (Wants)", "Investments"},
			fractions:  []string{"0.30", "0.30", "0.40"},
		},
	}

	salary := d("2000")
	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			plan := budgeting.Allocate(salary, tc.key)
			require.Len(t, plan.Allocations, len(tc.categories))
			for i, category := range tc.categories {
				assert.Equal(t, category, plan.Allocations[i].Category)
				expected := salary.Mul(d(tc.fractions[i]))
				assert.True(t, plan.Allocations[i].Amount.Equal(expected),
					"category %q: expected %s, got %s", category, expected, plan.Allocations[i].Amount)
			}
		})
	}
}

func TestAllocate_UnrecognizedStrategyFallsBack(t *testing.T) {
	plan := budgeting.Allocate(d("1000"), "unknown-strategy")

	require.Len(t, plan.Allocations, 1)
	assert.Equal(t, domain.CategoryUnallocated, plan.Allocations[0].Category)
	assert.True(t, plan.Allocations[0].Amount.Equal(d("1000")))
}

func TestAllocate_NegativeSalaryPassesThrough(t *testing.T) {
	// The engine does not validate the salary sign; callers decide.
	plan := budgeting.Allocate(d("-100"), "50/30/20")
	assert.True(t, plan.Total().Equal(d("-100")))
}

func TestAllocationPlan_MarshalJSONPreservesOrder(t *testing.T) {
	plan := budgeting.Allocate(d("1000"), "50/30/20")

	raw, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.JSONEq(t, `{"Expenses (Necessities)":"500","Investments":"300","Personal (Wants)":"200"}`, string(raw))

	// Key order matters for consumers rendering category columns; make
	// sure encoding did not sort alphabetically.
	assert.Equal(t, `{"Expenses (Necessities)":"500","Investments":"300","Personal (Wants)":"200"}`, string(raw))
}

func TestAllocationPlan_AmountFor(t *testing.T) {
	plan := budgeting.Allocate(d("1000"), "70/20/10")

	amount, ok := plan.AmountFor("Personal (Wants)")
	require.True(t, ok)
	assert.True(t, amount.Equal(d("200")))

	_, ok = plan.AmountFor("No Such Category")
	assert.False(t, ok)
}
