// Package pricing - Fixed multiplier lookups
package pricing

import (
	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

var one = decimal.NewFromInt(1)

// ComplexityMultiplier returns the complexity multiplier for a model.
// Unknown levels fall back to 1.0; average is 1.0 in both models.
func (c Config) ComplexityMultiplier(level types.Complexity, model types.ModelChoice) decimal.Decimal {
	table := c.ComplexityA
	if model == types.ChoiceModelB {
		table = c.ComplexityB
	}
	if m, ok := table[level]; ok {
		return m
	}
	return one
}

// IndustryMultiplier returns the industry multiplier.
// Only Model A applies it; Model B takes no sector weighting.
func (c Config) IndustryMultiplier(industry types.Industry) decimal.Decimal {
	if m, ok := c.Industry[industry]; ok {
		return m
	}
	return one
}
