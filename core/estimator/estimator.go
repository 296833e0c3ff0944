// Package estimator provides the transaction volume heuristic.
// It is used to synthesize a monthly transaction count for Model B when
// no real bookkeeping data is available. Pure function, no lookups.
package estimator

import (
	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

// baseEstimates maps turnover bands to typical monthly transaction
// counts. Unknown bands fall back to 100.
var baseEstimates = map[string]int64{
	"0-89k":     35,
	"90k-149k":  55,
	"150k-249k": 80,
	"250k-499k": 120,
	"500k-749k": 180,
	"750k-999k": 250,
	"1m+":       350,
}

// industryMultipliers weight the estimate by sector activity. These are
// activity-volume weights, distinct from the pricing multiplier table.
var industryMultipliers = map[types.Industry]decimal.Decimal{
	types.IndustrySimple:    decimal.NewFromFloat(0.7),
	types.IndustryStandard:  decimal.NewFromInt(1),
	types.IndustryComplex:   decimal.NewFromFloat(1.4),
	types.IndustryRegulated: decimal.NewFromFloat(1.2),
}

var vatMultiplier = decimal.NewFromFloat(1.2)

// MonthlyTransactions estimates a client's monthly transaction count
// from their turnover band and industry. VAT registration typically
// means more transactions. The result is rounded to the nearest whole
// transaction.
func MonthlyTransactions(turnoverBand string, industry types.Industry, vatRegistered bool) int64 {
	base, ok := baseEstimates[turnoverBand]
	if !ok {
		base = 100
	}

	estimate := decimal.NewFromInt(base)

	if m, ok := industryMultipliers[industry]; ok {
		estimate = estimate.Mul(m)
	}

	if vatRegistered {
		estimate = estimate.Mul(vatMultiplier)
	}

	return estimate.Round(0).IntPart()
}
