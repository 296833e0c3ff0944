package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

func TestDiscountStackBelowThreshold(t *testing.T) {
	cfg := Defaults()
	discounts := cfg.BuildDiscountStack(decimal.NewFromInt(400), nil)
	if len(discounts) != 0 {
		t.Fatalf("expected no discounts for subtotal 400, got %d", len(discounts))
	}
}

func TestDiscountStackTierOne(t *testing.T) {
	cfg := Defaults()
	model := cfg.finalizeModel("Turnover-Based", nil, decimal.NewFromInt(600), nil)

	if len(model.Discounts) != 1 {
		t.Fatalf("expected 1 discount, got %d", len(model.Discounts))
	}
	d := model.Discounts[0]
	if d.Type != types.DiscountVolume {
		t.Errorf("discount type = %s, want %s", d.Type, types.DiscountVolume)
	}
	if d.Description != "5% volume discount (over £500/month)" {
		t.Errorf("unexpected description %q", d.Description)
	}
	if !d.Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("tier 1 amount = %s, want 30", d.Amount)
	}
	if !model.Total.Equal(decimal.NewFromInt(570)) {
		t.Errorf("total = %s, want 570", model.Total)
	}
}

func TestDiscountStackTierTwo(t *testing.T) {
	// Tier 2 sizes off the post-tier-1 base but the total still subtracts
	// both amounts from the original subtotal: 1200 - 60 - 34.2 = 1105.8.
	cfg := Defaults()
	model := cfg.finalizeModel("Turnover-Based", nil, decimal.NewFromInt(1200), nil)

	if len(model.Discounts) != 2 {
		t.Fatalf("expected 2 discounts, got %d", len(model.Discounts))
	}
	if !model.Discounts[0].Amount.Equal(decimal.NewFromInt(60)) {
		t.Errorf("tier 1 amount = %s, want 60", model.Discounts[0].Amount)
	}
	if !model.Discounts[1].Amount.Equal(decimal.NewFromFloat(34.2)) {
		t.Errorf("tier 2 amount = %s, want 34.2", model.Discounts[1].Amount)
	}
	if model.Discounts[1].Description != "Additional 3% discount (over £1000/month)" {
		t.Errorf("unexpected description %q", model.Discounts[1].Description)
	}
	if !model.Total.Equal(decimal.NewFromFloat(1105.8)) {
		t.Errorf("total = %s, want 1105.8", model.Total)
	}
}

func TestDiscountStackTierTwoBoundary(t *testing.T) {
	// 1050 clears tier 1 but the post-tier-1 base 997.5 does not clear
	// tier 2.
	cfg := Defaults()
	discounts := cfg.BuildDiscountStack(decimal.NewFromInt(1050), nil)
	if len(discounts) != 1 {
		t.Fatalf("expected tier 1 only, got %d discounts", len(discounts))
	}
}

func TestRushFeeIsNegativeDiscount(t *testing.T) {
	cfg := Defaults()
	mods := &types.Modifiers{Rush: true}
	model := cfg.finalizeModel("Turnover-Based", nil, decimal.NewFromInt(1000), mods)

	var rush *types.Discount
	for i := range model.Discounts {
		if model.Discounts[i].Type == types.DiscountRush {
			rush = &model.Discounts[i]
		}
	}
	if rush == nil {
		t.Fatal("expected a rush fee entry")
	}
	if rush.Description != "25% rush fee (within 1 month of deadline)" {
		t.Errorf("unexpected description %q", rush.Description)
	}
	if !rush.Amount.Equal(decimal.NewFromInt(-250)) {
		t.Errorf("rush amount = %s, want -250", rush.Amount)
	}
	// 1000 - 50 (tier 1) + 250 (rush) = 1200
	if !model.Total.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("total = %s, want 1200", model.Total)
	}
}

func TestNewClientDiscount(t *testing.T) {
	cfg := Defaults()
	mods := &types.Modifiers{NewClient: true}
	discounts := cfg.BuildDiscountStack(decimal.NewFromInt(300), mods)

	if len(discounts) != 1 {
		t.Fatalf("expected 1 discount, got %d", len(discounts))
	}
	d := discounts[0]
	if d.Type != types.DiscountNewClient {
		t.Errorf("discount type = %s, want %s", d.Type, types.DiscountNewClient)
	}
	if d.Description != "10% first-year discount (new client)" {
		t.Errorf("unexpected description %q", d.Description)
	}
	if !d.Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("amount = %s, want 30", d.Amount)
	}
}

func TestCustomDiscount(t *testing.T) {
	cfg := Defaults()
	pct := decimal.NewFromInt(15)
	mods := &types.Modifiers{CustomDiscountPct: &pct}
	discounts := cfg.BuildDiscountStack(decimal.NewFromInt(200), mods)

	if len(discounts) != 1 {
		t.Fatalf("expected 1 discount, got %d", len(discounts))
	}
	d := discounts[0]
	if d.Description != "15% custom discount (approved)" {
		t.Errorf("unexpected description %q", d.Description)
	}
	if !d.Amount.Equal(decimal.NewFromInt(30)) {
		t.Errorf("amount = %s, want 30", d.Amount)
	}

	zero := decimal.Zero
	discounts = cfg.BuildDiscountStack(decimal.NewFromInt(200), &types.Modifiers{CustomDiscountPct: &zero})
	if len(discounts) != 0 {
		t.Errorf("zero custom percentage should be skipped, got %d discounts", len(discounts))
	}
}

func TestFinalizeModelTotals(t *testing.T) {
	cfg := Defaults()
	model := cfg.finalizeModel("Transaction-Based", nil, decimal.NewFromInt(600), nil)

	if !model.MonthlyTotal.Equal(model.Total) {
		t.Errorf("monthly total %s != total %s", model.MonthlyTotal, model.Total)
	}
	if !model.AnnualTotal.Equal(model.Total.Mul(decimal.NewFromInt(12))) {
		t.Errorf("annual total %s != 12 x total %s", model.AnnualTotal, model.Total)
	}
}
