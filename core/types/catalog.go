// Package types defines the domain model for the pricing engine.
package types

import "github.com/shopspring/decimal"

// PricingStrategy is the closed set of component pricing strategies.
// Payroll is a first-class variant, not a code-naming convention.
type PricingStrategy string

const (
	// PricingTurnover prices from turnover band rules only
	PricingTurnover PricingStrategy = "turnover"

	// PricingTransaction prices from transaction volume rules only
	PricingTransaction PricingStrategy = "transaction"

	// PricingBoth supports turnover and transaction pricing
	PricingBoth PricingStrategy = "both"

	// PricingFixed is a fixed-price passthrough
	PricingFixed PricingStrategy = "fixed"

	// PricingPayroll uses the employee-count step function
	PricingPayroll PricingStrategy = "payroll"
)

// Valid reports whether the strategy is a known variant
func (s PricingStrategy) Valid() bool {
	switch s {
	case PricingTurnover, PricingTransaction, PricingBoth, PricingFixed, PricingPayroll:
		return true
	}
	return false
}

// UsesTurnoverBands reports whether Model A can band-price the component
func (s PricingStrategy) UsesTurnoverBands() bool {
	return s == PricingTurnover || s == PricingBoth
}

// UsesTransactionRules reports whether Model B can price the component
func (s PricingStrategy) UsesTransactionRules() bool {
	return s == PricingTransaction || s == PricingBoth
}

// ServiceComponent is a sellable catalog entry.
// Components are owned by the external catalog store and are immutable
// for the duration of a quote.
type ServiceComponent struct {
	// ID uniquely identifies the component
	ID string `json:"id"`

	// TenantID scopes the component to a tenant
	TenantID string `json:"tenant_id"`

	// Code is the tenant-unique component code
	Code string `json:"code"`

	// Name is the display name
	Name string `json:"name"`

	// Category groups components (compliance, bookkeeping, payroll, ...)
	Category string `json:"category"`

	// Pricing selects the pricing strategy
	Pricing PricingStrategy `json:"pricing_model"`

	// SupportsComplexity enables the complexity multiplier
	SupportsComplexity bool `json:"supports_complexity"`

	// FixedPrice is the price for fixed strategy components
	FixedPrice *decimal.Decimal `json:"fixed_price,omitempty"`

	// BasePrice is the standing charge added before transaction fees
	BasePrice *decimal.Decimal `json:"base_price,omitempty"`

	// Active marks the component as sellable
	Active bool `json:"is_active"`
}

// RuleType identifies how a pricing rule is matched
type RuleType string

const (
	// RuleTurnoverBand matches a turnover value against [min, max)
	RuleTurnoverBand RuleType = "turnover_band"

	// RuleTransactionBand prices per transaction within a band
	RuleTransactionBand RuleType = "transaction_band"

	// RulePerUnit prices per unit regardless of volume
	RulePerUnit RuleType = "per_unit"
)

// Transactional reports whether the rule type prices transaction volume
func (t RuleType) Transactional() bool {
	return t == RuleTransactionBand || t == RulePerUnit
}

// PricingRule maps a half-open value interval to a price.
// Active rules of the same (component, type) must not overlap; that
// invariant is owned by the catalog store and checked by the integrity
// validator, not at quote time.
type PricingRule struct {
	// ID uniquely identifies the rule
	ID string `json:"id"`

	// ComponentID links to the priced component
	ComponentID string `json:"component_id"`

	// Type is the rule matching mode
	Type RuleType `json:"rule_type"`

	// MinValue is the inclusive lower bound
	MinValue int64 `json:"min_value"`

	// MaxValue is the exclusive upper bound; nil means unbounded above
	MaxValue *int64 `json:"max_value,omitempty"`

	// Price is the band price, or the per-transaction rate for
	// transactional rule types
	Price decimal.Decimal `json:"price"`

	// Active marks the rule as in force
	Active bool `json:"is_active"`
}

// Contains reports whether v falls within [MinValue, MaxValue)
func (r PricingRule) Contains(v int64) bool {
	if v < r.MinValue {
		return false
	}
	return r.MaxValue == nil || v < *r.MaxValue
}
