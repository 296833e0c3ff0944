// Package types - Quote input and output structures
package types

import "github.com/shopspring/decimal"

// Industry classifies a prospective client's sector
type Industry string

const (
	IndustrySimple    Industry = "simple"
	IndustryStandard  Industry = "standard"
	IndustryComplex   Industry = "complex"
	IndustryRegulated Industry = "regulated"
)

// Valid reports whether the industry is a known variant
func (i Industry) Valid() bool {
	switch i {
	case IndustrySimple, IndustryStandard, IndustryComplex, IndustryRegulated:
		return true
	}
	return false
}

// Complexity is the bookkeeping-cleanliness tier
type Complexity string

const (
	ComplexityClean    Complexity = "clean"
	ComplexityAverage  Complexity = "average"
	ComplexityComplex  Complexity = "complex"
	ComplexityDisaster Complexity = "disaster"
)

// Valid reports whether the complexity is a known variant
func (c Complexity) Valid() bool {
	switch c {
	case ComplexityClean, ComplexityAverage, ComplexityComplex, ComplexityDisaster:
		return true
	}
	return false
}

// PayrollFrequency is how often payroll is run
type PayrollFrequency string

const (
	PayMonthly     PayrollFrequency = "monthly"
	PayWeekly      PayrollFrequency = "weekly"
	PayFortnightly PayrollFrequency = "fortnightly"
	PayFourWeekly  PayrollFrequency = "4weekly"
)

// TransactionSource records where transaction volume data came from
type TransactionSource string

const (
	SourceXero      TransactionSource = "xero"
	SourceManual    TransactionSource = "manual"
	SourceEstimated TransactionSource = "estimated"
)

// BookkeepingOptions configures complexity-sensitive services
type BookkeepingOptions struct {
	Complexity Complexity `json:"complexity"`
}

// PayrollOptions configures payroll services
type PayrollOptions struct {
	Employees int              `json:"employees"`
	Frequency PayrollFrequency `json:"frequency"`
}

// ServiceSelection selects one catalog component for a quote.
// Books and Payroll are variant options; which one is read depends on
// the resolved component's pricing strategy.
type ServiceSelection struct {
	// ComponentCode is the catalog code of the selected service
	ComponentCode string `json:"component_code"`

	// Quantity is reserved for per-unit services
	Quantity int `json:"quantity,omitempty"`

	// Books applies to complexity-priced services
	Books *BookkeepingOptions `json:"books,omitempty"`

	// Payroll applies to payroll services
	Payroll *PayrollOptions `json:"payroll,omitempty"`
}

// TransactionData carries real or estimated monthly transaction volume
type TransactionData struct {
	MonthlyTransactions int64             `json:"monthly_transactions"`
	Source              TransactionSource `json:"source"`
}

// Modifiers are the optional quote-level discount/surcharge switches
type Modifiers struct {
	// Rush applies the short-notice surcharge
	Rush bool `json:"is_rush,omitempty"`

	// NewClient applies the first-year discount
	NewClient bool `json:"new_client,omitempty"`

	// CustomDiscountPct is an approved ad hoc discount percentage
	CustomDiscountPct *decimal.Decimal `json:"custom_discount_pct,omitempty"`
}

// PricingInput is the transient request into the quoting engine
type PricingInput struct {
	// Turnover is the client's revenue band string, e.g. "90k-149k"
	Turnover string `json:"turnover"`

	// Industry is the client's sector classification
	Industry Industry `json:"industry"`

	// Services are the selected components, priced in input order
	Services []ServiceSelection `json:"services"`

	// TransactionData enables Model B when present
	TransactionData *TransactionData `json:"transaction_data,omitempty"`

	// Modifiers are the optional discount/surcharge switches
	Modifiers *Modifiers `json:"modifiers,omitempty"`
}

// AdjustmentType classifies a per-service price adjustment
type AdjustmentType string

const (
	AdjustComplexity AdjustmentType = "complexity"
	AdjustIndustry   AdjustmentType = "industry"
	AdjustVolume     AdjustmentType = "volume"
)

// Adjustment records one multiplier or fee applied to a service price
type Adjustment struct {
	Type        AdjustmentType   `json:"type"`
	Description string           `json:"description"`
	Multiplier  *decimal.Decimal `json:"multiplier,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}

// DiscountType classifies a quote-level discount entry
type DiscountType string

const (
	DiscountVolume    DiscountType = "volume"
	DiscountNewClient DiscountType = "new_client"
	DiscountCustom    DiscountType = "custom"
	DiscountRush      DiscountType = "rush"
)

// Discount is one entry in the discount stack.
// Amount is signed: a negative amount is a surcharge.
type Discount struct {
	Type        DiscountType     `json:"type"`
	Description string           `json:"description"`
	Percentage  *decimal.Decimal `json:"percentage,omitempty"`
	Amount      decimal.Decimal  `json:"amount"`
}

// ServicePrice is the computed price for one selected service
type ServicePrice struct {
	ComponentCode string          `json:"component_code"`
	ComponentName string          `json:"component_name"`
	Calculation   string          `json:"calculation"`
	BasePrice     decimal.Decimal `json:"base_price"`
	Adjustments   []Adjustment    `json:"adjustments"`
	FinalPrice    decimal.Decimal `json:"final_price"`
}

// PricingModel is one fully priced strategy output
type PricingModel struct {
	// Name is the strategy display name
	Name string `json:"name"`

	// Services are the priced line items in selection order
	Services []ServicePrice `json:"services"`

	// Subtotal is the sum of service final prices before discounts
	Subtotal decimal.Decimal `json:"subtotal"`

	// Discounts is the applied discount stack
	Discounts []Discount `json:"discounts"`

	// Total is subtotal minus the sum of discount amounts
	Total decimal.Decimal `json:"total"`

	// MonthlyTotal equals Total
	MonthlyTotal decimal.Decimal `json:"monthly_total"`

	// AnnualTotal equals MonthlyTotal times twelve
	AnnualTotal decimal.Decimal `json:"annual_total"`
}

// ModelChoice identifies which pricing strategy is recommended
type ModelChoice string

const (
	ChoiceModelA ModelChoice = "A"
	ChoiceModelB ModelChoice = "B"
)

// Recommendation is the engine's strategy pick
type Recommendation struct {
	Model   ModelChoice      `json:"model"`
	Reason  string           `json:"reason"`
	Savings *decimal.Decimal `json:"savings,omitempty"`
}

// Quote is the full dual-model quoting result
type Quote struct {
	ModelA         *PricingModel  `json:"model_a"`
	ModelB         *PricingModel  `json:"model_b"`
	Recommendation Recommendation `json:"recommendation"`
}
