// Package pricing - Payroll step-function pricing
// Payroll is priced identically in both models and takes no complexity
// or industry multiplier.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

// PayrollPrice computes the monthly payroll charge from the employee
// count, scaled for pay frequency. Zero or one employee is charged the
// flat director rate regardless of frequency.
func PayrollPrice(employees int, frequency types.PayrollFrequency) decimal.Decimal {
	if employees <= 1 {
		return decimal.NewFromInt(18)
	}

	var base int64
	switch {
	case employees < 10:
		base = 50
	case employees < 15:
		base = 70
	case employees < 20:
		base = 90
	case employees == 20:
		base = 110
	default:
		base = 130 + int64(employees-20)*2
	}

	switch frequency {
	case types.PayWeekly:
		base *= 3
	case types.PayFortnightly, types.PayFourWeekly:
		base *= 2
	}

	return decimal.NewFromInt(base)
}

// payrollLine prices a payroll selection. Absent options default to
// zero employees on a monthly run.
func payrollLine(comp *types.ServiceComponent, sel types.ServiceSelection) types.ServicePrice {
	employees := 0
	frequency := types.PayMonthly
	if sel.Payroll != nil {
		employees = sel.Payroll.Employees
		if sel.Payroll.Frequency != "" {
			frequency = sel.Payroll.Frequency
		}
	}

	price := PayrollPrice(employees, frequency)
	return types.ServicePrice{
		ComponentCode: sel.ComponentCode,
		ComponentName: comp.Name,
		Calculation:   fmt.Sprintf("%d employees, %s", employees, frequency),
		BasePrice:     price,
		Adjustments:   []types.Adjustment{},
		FinalPrice:    price,
	}
}

// fixedLine prices a fixed-price component. A missing fixed price
// resolves to zero.
func fixedLine(comp *types.ServiceComponent, sel types.ServiceSelection) types.ServicePrice {
	price := decimal.Zero
	if comp.FixedPrice != nil {
		price = *comp.FixedPrice
	}
	return types.ServicePrice{
		ComponentCode: sel.ComponentCode,
		ComponentName: comp.Name,
		Calculation:   "Fixed price",
		BasePrice:     price,
		Adjustments:   []types.Adjustment{},
		FinalPrice:    price,
	}
}
