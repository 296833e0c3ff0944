// Package pricing - Engine configuration
// Tenant overrides are merged onto defaults once, before the engine is
// constructed. The resulting Config is immutable for the engine's lifetime.
package pricing

import (
	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

// MultiplierTable maps complexity levels to price multipliers
type MultiplierTable map[types.Complexity]decimal.Decimal

// IndustryTable maps industry classifications to price multipliers
type IndustryTable map[types.Industry]decimal.Decimal

// VolumeTier is one threshold-gated volume discount
type VolumeTier struct {
	// Threshold is the subtotal the tier activates above
	Threshold decimal.Decimal `json:"threshold"`

	// Percentage is the discount percentage
	Percentage decimal.Decimal `json:"percentage"`

	// Description is the discount line description
	Description string `json:"description"`
}

// PercentageRule is a flat percentage discount or surcharge
type PercentageRule struct {
	Percentage  decimal.Decimal `json:"percentage"`
	Description string          `json:"description"`
}

// CustomDiscountRule bounds ad hoc discounts
type CustomDiscountRule struct {
	MaxPercentage    decimal.Decimal `json:"max_percentage"`
	RequiresApproval bool            `json:"requires_approval"`
}

// DiscountRules configures the discount/surcharge stack
type DiscountRules struct {
	VolumeTier1 VolumeTier         `json:"volume_tier_1"`
	VolumeTier2 VolumeTier         `json:"volume_tier_2"`
	RushFee     PercentageRule     `json:"rush_fee"`
	NewClient   PercentageRule     `json:"new_client"`
	Custom      CustomDiscountRule `json:"custom"`
}

// GlobalSettings are presentation and default settings
type GlobalSettings struct {
	DefaultTurnoverBand string         `json:"default_turnover_band"`
	DefaultIndustry     types.Industry `json:"default_industry"`
	CurrencySymbol      string         `json:"currency_symbol"`
}

// Config is the full engine configuration
type Config struct {
	// ComplexityA is Model A's complexity multiplier table
	ComplexityA MultiplierTable `json:"complexity_model_a"`

	// ComplexityB is Model B's gentler complexity multiplier table
	ComplexityB MultiplierTable `json:"complexity_model_b"`

	// Industry is the industry multiplier table, used by Model A only
	Industry IndustryTable `json:"industry"`

	// Discounts configures the discount stack
	Discounts DiscountRules `json:"discounts"`

	// Global are presentation and default settings
	Global GlobalSettings `json:"global"`
}

// Defaults returns the standard configuration
func Defaults() Config {
	return Config{
		ComplexityA: MultiplierTable{
			types.ComplexityClean:    decimal.NewFromFloat(0.95),
			types.ComplexityAverage:  decimal.NewFromInt(1),
			types.ComplexityComplex:  decimal.NewFromFloat(1.15),
			types.ComplexityDisaster: decimal.NewFromFloat(1.4),
		},
		ComplexityB: MultiplierTable{
			types.ComplexityClean:    decimal.NewFromFloat(0.98),
			types.ComplexityAverage:  decimal.NewFromInt(1),
			types.ComplexityComplex:  decimal.NewFromFloat(1.08),
			types.ComplexityDisaster: decimal.NewFromFloat(1.2),
		},
		Industry: IndustryTable{
			types.IndustrySimple:    decimal.NewFromFloat(0.95),
			types.IndustryStandard:  decimal.NewFromInt(1),
			types.IndustryComplex:   decimal.NewFromFloat(1.15),
			types.IndustryRegulated: decimal.NewFromFloat(1.3),
		},
		Discounts: DiscountRules{
			VolumeTier1: VolumeTier{
				Threshold:   decimal.NewFromInt(500),
				Percentage:  decimal.NewFromInt(5),
				Description: "5% volume discount (over £500/month)",
			},
			VolumeTier2: VolumeTier{
				Threshold:   decimal.NewFromInt(1000),
				Percentage:  decimal.NewFromInt(3),
				Description: "Additional 3% discount (over £1000/month)",
			},
			RushFee: PercentageRule{
				Percentage:  decimal.NewFromInt(25),
				Description: "25% rush fee (within 1 month of deadline)",
			},
			NewClient: PercentageRule{
				Percentage:  decimal.NewFromInt(10),
				Description: "10% first-year discount (new client)",
			},
			Custom: CustomDiscountRule{
				MaxPercentage:    decimal.NewFromInt(25),
				RequiresApproval: true,
			},
		},
		Global: GlobalSettings{
			DefaultTurnoverBand: "90k-149k",
			DefaultIndustry:     types.IndustryStandard,
			CurrencySymbol:      "£",
		},
	}
}

// Overrides is a partial configuration layered onto defaults.
// Nil fields and absent map keys keep the default values.
type Overrides struct {
	ComplexityA MultiplierTable `json:"complexity_model_a,omitempty"`
	ComplexityB MultiplierTable `json:"complexity_model_b,omitempty"`
	Industry    IndustryTable   `json:"industry,omitempty"`
	Discounts   *DiscountRules  `json:"discounts,omitempty"`
	Global      *GlobalSettings `json:"global,omitempty"`
}

// Merge returns a copy of c with the overrides applied.
// The receiver is not modified.
func (c Config) Merge(o Overrides) Config {
	merged := c
	merged.ComplexityA = mergeMultipliers(c.ComplexityA, o.ComplexityA)
	merged.ComplexityB = mergeMultipliers(c.ComplexityB, o.ComplexityB)

	if len(o.Industry) > 0 {
		table := make(IndustryTable, len(c.Industry))
		for k, v := range c.Industry {
			table[k] = v
		}
		for k, v := range o.Industry {
			table[k] = v
		}
		merged.Industry = table
	}

	if o.Discounts != nil {
		merged.Discounts = *o.Discounts
	}
	if o.Global != nil {
		merged.Global = *o.Global
	}
	return merged
}

func mergeMultipliers(base, over MultiplierTable) MultiplierTable {
	if len(over) == 0 {
		return base
	}
	table := make(MultiplierTable, len(base))
	for k, v := range base {
		table[k] = v
	}
	for k, v := range over {
		table[k] = v
	}
	return table
}
