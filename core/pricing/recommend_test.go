package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

func model(monthly int64) *types.PricingModel {
	total := decimal.NewFromInt(monthly)
	return &types.PricingModel{Total: total, MonthlyTotal: total, AnnualTotal: total.Mul(twelve)}
}

func TestCompareModelsNoTransactionData(t *testing.T) {
	cfg := Defaults()
	rec := cfg.CompareModels(model(1000), nil)

	if rec.Model != types.ChoiceModelA {
		t.Errorf("model = %s, want %s", rec.Model, types.ChoiceModelA)
	}
	if rec.Reason != "Transaction data not available" {
		t.Errorf("unexpected reason %q", rec.Reason)
	}
	if rec.Savings != nil {
		t.Errorf("expected nil savings, got %s", rec.Savings)
	}
}

func TestCompareModelsSimilar(t *testing.T) {
	// 50 apart on 1000 is 5%, inside the similarity window, so the
	// simpler turnover model wins even though B is cheaper.
	cfg := Defaults()
	rec := cfg.CompareModels(model(1000), model(950))

	if rec.Model != types.ChoiceModelA {
		t.Errorf("model = %s, want %s", rec.Model, types.ChoiceModelA)
	}
	if rec.Reason != "Both models similar - using simpler turnover-based approach" {
		t.Errorf("unexpected reason %q", rec.Reason)
	}
}

func TestCompareModelsTransactionCheaper(t *testing.T) {
	cfg := Defaults()
	rec := cfg.CompareModels(model(1000), model(800))

	if rec.Model != types.ChoiceModelB {
		t.Errorf("model = %s, want %s", rec.Model, types.ChoiceModelB)
	}
	want := "Transaction-based saves £200.00/month (£2400/year)"
	if rec.Reason != want {
		t.Errorf("reason = %q, want %q", rec.Reason, want)
	}
	if rec.Savings == nil || !rec.Savings.Equal(decimal.NewFromInt(200)) {
		t.Errorf("savings = %v, want 200", rec.Savings)
	}
}

func TestCompareModelsTurnoverCheaper(t *testing.T) {
	cfg := Defaults()
	rec := cfg.CompareModels(model(1000), model(1200))

	if rec.Model != types.ChoiceModelA {
		t.Errorf("model = %s, want %s", rec.Model, types.ChoiceModelA)
	}
	want := "Turnover-based saves £200.00/month (£2400/year)"
	if rec.Reason != want {
		t.Errorf("reason = %q, want %q", rec.Reason, want)
	}
}

func TestCompareModelsZeroTotals(t *testing.T) {
	cfg := Defaults()

	rec := cfg.CompareModels(model(0), model(0))
	if rec.Model != types.ChoiceModelA {
		t.Errorf("equal zero totals should recommend %s, got %s", types.ChoiceModelA, rec.Model)
	}

	rec = cfg.CompareModels(model(0), model(50))
	if rec.Savings == nil || !rec.Savings.Equal(decimal.NewFromInt(50)) {
		t.Errorf("savings = %v, want 50", rec.Savings)
	}
}
