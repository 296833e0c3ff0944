// Package pricing - Discount/surcharge stack
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

func percentOf(base, pct decimal.Decimal) decimal.Decimal {
	return base.Mul(pct).Div(hundred)
}

// BuildDiscountStack produces the discount entries for a model subtotal
// in fixed order: volume tier 1, volume tier 2, rush surcharge, new
// client, custom. Tier 2's eligibility and size are taken against the
// post-tier-1 base; every entry's amount, including tier 2's, is still
// subtracted from the original subtotal when the total is computed.
// The rush surcharge is carried as a negative discount amount.
func (c Config) BuildDiscountStack(subtotal decimal.Decimal, mods *types.Modifiers) []types.Discount {
	discounts := []types.Discount{}
	rules := c.Discounts
	current := subtotal

	if current.GreaterThan(rules.VolumeTier1.Threshold) {
		amount := percentOf(current, rules.VolumeTier1.Percentage)
		discounts = append(discounts, types.Discount{
			Type:        types.DiscountVolume,
			Description: rules.VolumeTier1.Description,
			Percentage:  &rules.VolumeTier1.Percentage,
			Amount:      amount,
		})
		current = current.Sub(amount)
	}

	if current.GreaterThan(rules.VolumeTier2.Threshold) {
		amount := percentOf(current, rules.VolumeTier2.Percentage)
		discounts = append(discounts, types.Discount{
			Type:        types.DiscountVolume,
			Description: rules.VolumeTier2.Description,
			Percentage:  &rules.VolumeTier2.Percentage,
			Amount:      amount,
		})
	}

	if mods == nil {
		return discounts
	}

	if mods.Rush {
		fee := percentOf(subtotal, rules.RushFee.Percentage)
		discounts = append(discounts, types.Discount{
			Type:        types.DiscountRush,
			Description: rules.RushFee.Description,
			Percentage:  &rules.RushFee.Percentage,
			Amount:      fee.Neg(),
		})
	}

	if mods.NewClient {
		discounts = append(discounts, types.Discount{
			Type:        types.DiscountNewClient,
			Description: rules.NewClient.Description,
			Percentage:  &rules.NewClient.Percentage,
			Amount:      percentOf(subtotal, rules.NewClient.Percentage),
		})
	}

	if mods.CustomDiscountPct != nil && !mods.CustomDiscountPct.IsZero() {
		pct := *mods.CustomDiscountPct
		discounts = append(discounts, types.Discount{
			Type:        types.DiscountCustom,
			Description: fmt.Sprintf("%s%% custom discount (approved)", pct.String()),
			Percentage:  &pct,
			Amount:      percentOf(subtotal, pct),
		})
	}

	return discounts
}

// finalizeModel applies the discount stack and computes totals.
// Total is the original subtotal minus the sum of all discount amounts.
func (c Config) finalizeModel(name string, services []types.ServicePrice, subtotal decimal.Decimal, mods *types.Modifiers) *types.PricingModel {
	discounts := c.BuildDiscountStack(subtotal, mods)

	total := subtotal
	for _, d := range discounts {
		total = total.Sub(d.Amount)
	}

	return &types.PricingModel{
		Name:         name,
		Services:     services,
		Subtotal:     subtotal,
		Discounts:    discounts,
		Total:        total,
		MonthlyTotal: total,
		AnnualTotal:  total.Mul(twelve),
	}
}
