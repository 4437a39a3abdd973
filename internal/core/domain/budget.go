package domain

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CategoryUnallocated is the single category of the fallback plan produced
// for an unrecognized strategy key.
const CategoryUnallocated = "Unallocated"

// CategorySplit pairs a budget category label with the fraction of the
// salary allocated to it.
type CategorySplit struct {
	Category string
	Fraction decimal.Decimal
}

// Strategy is a named fixed table of category splits summing to 1.0.
// The category labels are part of the public contract: they are used as
// join keys against transaction categories.
type Strategy struct {
	Key    string
	Splits []CategorySplit
}

func frac(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// strategies holds the recognized allocation strategies in their fixed
// category order. Labels and fractions must not be changed; existing
// ledgers are categorized against them.
var strategies = []Strategy{
	{
		Key: "50/30/20",
		Splits: []CategorySplit{
			{Category: "Expenses (Necessities)", Fraction: frac("0.50")},
			{Category: "Investments", Fraction: frac("0.30")},
			{Category: "Personal (Wants)", Fraction: frac("0.20")},
		},
	},
	{
		Key: "Smart Saver (50/30/10/10)",
		Splits: []CategorySplit{
			{Category: "Expenses (Necessities)", Fraction: frac("0.50")},
			{Category: "Investments (Long Term)", Fraction: frac("0.30")},
			{Category: "Personal (Wants)", Fraction: frac("0.10")},
			{Category: "Savings (Emergency Fund)", Fraction: frac("0.10")},
		},
	},
	{
		Key: "70/20/10",
		Splits: []CategorySplit{
			{Category: "Expenses (Necessities)", Fraction: frac("0.70")},
			{Category: "Personal (Wants)", Fraction: frac("0.20")},
			{Category: "Savings/Investments", Fraction: frac("0.10")},
		},
	},
	{
		Key: "Aggressive Investor (30/30/40)",
		Splits: []CategorySplit{
			{Category: "Expenses (Necessities)", Fraction: frac("0.30")},
			{Category: "Personal (Wants)", Fraction: frac("0.30")},
			{Category: "Investments", Fraction: frac("0.40")},
		},
	},
}

// StrategyByKey returns the strategy for the given key, or false when the
// key is unrecognized.
func StrategyByKey(key string) (Strategy, bool) {
	for _, s := range strategies {
		if s.Key == key {
			return s, true
		}
	}
	return Strategy{}, false
}

// StrategyKeys returns the recognized strategy keys in declaration order.
func StrategyKeys() []string {
	keys := make([]string, len(strategies))
	for i, s := range strategies {
		keys[i] = s.Key
	}
	return keys
}

// CategoryAllocation is one category's share of an AllocationPlan.
type CategoryAllocation struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// AllocationPlan is the ordered category -> amount breakdown produced by
// applying a strategy to a salary. Category names are unique within a plan
// and keep the strategy's fixed order.
type AllocationPlan struct {
	StrategyKey string
	Allocations []CategoryAllocation
}

// AmountFor returns the allocated amount for a category, or false when the
// plan has no such category. Matching is exact-string, like the snapshot.
func (p AllocationPlan) AmountFor(category string) (decimal.Decimal, bool) {
	for _, a := range p.Allocations {
		if a.Category == category {
			return a.Amount, true
		}
	}
	return decimal.Zero, false
}

// Total returns the sum of all allocated amounts. For any recognized
// strategy this equals the salary the plan was computed from.
func (p AllocationPlan) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range p.Allocations {
		total = total.Add(a.Amount)
	}
	return total
}

// MarshalJSON renders the plan as a JSON object whose keys appear in the
// strategy's category order. Encoding a Go map would sort the keys, so the
// object is built by hand.
func (p AllocationPlan) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range p.Allocations {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Category)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		amount, err := json.Marshal(a.Amount)
		if err != nil {
			return nil, err
		}
		buf.Write(amount)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
