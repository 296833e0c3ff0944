package pricing

import (
	"testing"

	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

func TestComplexityMultiplierAverageIsNeutral(t *testing.T) {
	cfg := Defaults()

	for _, model := range []types.ModelChoice{types.ChoiceModelA, types.ChoiceModelB} {
		m := cfg.ComplexityMultiplier(types.ComplexityAverage, model)
		if !m.Equal(decimal.NewFromInt(1)) {
			t.Errorf("average multiplier for model %s = %s, want 1", model, m)
		}
	}
}

func TestComplexityMultiplierTables(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		level  types.Complexity
		model  types.ModelChoice
		expect float64
	}{
		{types.ComplexityClean, types.ChoiceModelA, 0.95},
		{types.ComplexityComplex, types.ChoiceModelA, 1.15},
		{types.ComplexityDisaster, types.ChoiceModelA, 1.4},
		{types.ComplexityClean, types.ChoiceModelB, 0.98},
		{types.ComplexityComplex, types.ChoiceModelB, 1.08},
		{types.ComplexityDisaster, types.ChoiceModelB, 1.2},
	}

	for _, tt := range tests {
		m := cfg.ComplexityMultiplier(tt.level, tt.model)
		if !m.Equal(decimal.NewFromFloat(tt.expect)) {
			t.Errorf("ComplexityMultiplier(%s, %s) = %s, want %v", tt.level, tt.model, m, tt.expect)
		}
	}
}

func TestModelBTableIsGentlerThanModelA(t *testing.T) {
	cfg := Defaults()
	one := decimal.NewFromInt(1)

	for _, level := range []types.Complexity{
		types.ComplexityClean, types.ComplexityComplex, types.ComplexityDisaster,
	} {
		a := cfg.ComplexityMultiplier(level, types.ChoiceModelA)
		b := cfg.ComplexityMultiplier(level, types.ChoiceModelB)
		distA := a.Sub(one).Abs()
		distB := b.Sub(one).Abs()
		if !distB.LessThan(distA) {
			t.Errorf("level %s: model B multiplier %s not closer to 1 than model A %s", level, b, a)
		}
	}
}

func TestIndustryMultiplier(t *testing.T) {
	cfg := Defaults()

	tests := []struct {
		industry types.Industry
		expect   float64
	}{
		{types.IndustrySimple, 0.95},
		{types.IndustryStandard, 1.0},
		{types.IndustryComplex, 1.15},
		{types.IndustryRegulated, 1.3},
	}

	for _, tt := range tests {
		m := cfg.IndustryMultiplier(tt.industry)
		if !m.Equal(decimal.NewFromFloat(tt.expect)) {
			t.Errorf("IndustryMultiplier(%s) = %s, want %v", tt.industry, m, tt.expect)
		}
	}

	if m := cfg.IndustryMultiplier(types.Industry("unknown")); !m.Equal(decimal.NewFromInt(1)) {
		t.Errorf("unknown industry multiplier = %s, want 1", m)
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := Defaults()
	override := decimal.NewFromFloat(1.5)

	merged := cfg.Merge(Overrides{
		ComplexityA: MultiplierTable{types.ComplexityDisaster: override},
	})

	if m := merged.ComplexityMultiplier(types.ComplexityDisaster, types.ChoiceModelA); !m.Equal(override) {
		t.Errorf("merged disaster multiplier = %s, want %s", m, override)
	}
	// Other entries keep defaults
	if m := merged.ComplexityMultiplier(types.ComplexityClean, types.ChoiceModelA); !m.Equal(decimal.NewFromFloat(0.95)) {
		t.Errorf("merged clean multiplier = %s, want 0.95", m)
	}
	// The original config is untouched
	if m := cfg.ComplexityMultiplier(types.ComplexityDisaster, types.ChoiceModelA); !m.Equal(decimal.NewFromFloat(1.4)) {
		t.Errorf("defaults mutated: disaster multiplier = %s, want 1.4", m)
	}
}
