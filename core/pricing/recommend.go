// Package pricing - Model recommendation
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

var ten = decimal.NewFromInt(10)

// CompareModels picks which pricing model to present. Without a Model B
// the choice is trivially Model A. When the monthly totals are within
// ten percent of Model A's, Model A wins regardless of which one is
// cheaper; otherwise the cheaper model wins and the reason reports the
// monthly and annualized savings.
func (c Config) CompareModels(modelA *types.PricingModel, modelB *types.PricingModel) types.Recommendation {
	if modelB == nil {
		return types.Recommendation{
			Model:  types.ChoiceModelA,
			Reason: "Transaction data not available",
		}
	}

	priceA := modelA.MonthlyTotal
	priceB := modelB.MonthlyTotal
	difference := priceA.Sub(priceB).Abs()

	similar := false
	if priceA.IsZero() {
		// Avoid dividing by a zero Model A total; identical totals are
		// similar, anything else is a real difference.
		similar = difference.IsZero()
	} else {
		similar = difference.Div(priceA).Mul(hundred).LessThan(ten)
	}

	if similar {
		return types.Recommendation{
			Model:  types.ChoiceModelA,
			Reason: "Both models similar - using simpler turnover-based approach",
		}
	}

	symbol := c.Global.CurrencySymbol
	if priceB.LessThan(priceA) {
		return types.Recommendation{
			Model: types.ChoiceModelB,
			Reason: fmt.Sprintf("Transaction-based saves %s%s/month (%s%s/year)",
				symbol, difference.StringFixed(2), symbol, difference.Mul(twelve).StringFixed(0)),
			Savings: &difference,
		}
	}
	return types.Recommendation{
		Model: types.ChoiceModelA,
		Reason: fmt.Sprintf("Turnover-based saves %s%s/month (%s%s/year)",
			symbol, difference.StringFixed(2), symbol, difference.Mul(twelve).StringFixed(0)),
		Savings: &difference,
	}
}
