// Package pricing - Model B: transaction-volume pricing
package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"practice-pricing/core/types"
	errs "practice-pricing/internal/errors"
)

// calculateModelB prices services from monthly transaction volume.
// Turnover-only components are excluded rather than failed: Model B
// only prices what it can price. Components without an active
// transaction rule are likewise skipped. Payroll and fixed services are
// handled exactly as in Model A, and no industry multiplier applies.
func (e *Engine) calculateModelB(ctx context.Context, tenantID string, input types.PricingInput) (*types.PricingModel, error) {
	if input.TransactionData == nil {
		return nil, nil
	}
	volume := input.TransactionData.MonthlyTransactions

	services := []types.ServicePrice{}
	subtotal := decimal.Zero

	for _, sel := range input.Services {
		comp, err := e.lookupComponent(ctx, tenantID, sel.ComponentCode)
		if err != nil {
			return nil, err
		}

		switch comp.Pricing {
		case types.PricingPayroll:
			line := payrollLine(comp, sel)
			services = append(services, line)
			subtotal = subtotal.Add(line.FinalPrice)
			continue
		case types.PricingFixed:
			line := fixedLine(comp, sel)
			services = append(services, line)
			subtotal = subtotal.Add(line.FinalPrice)
			continue
		}

		if !comp.Pricing.UsesTransactionRules() {
			e.log.Debug("skipping turnover-only service",
				zap.String("component", comp.Code))
			continue
		}

		rules, err := e.rules.TransactionRules(ctx, tenantID, comp.ID)
		if err != nil {
			return nil, errs.Storage("transaction rule lookup failed", err)
		}
		if len(rules) == 0 {
			continue
		}
		if len(rules) > 1 {
			return nil, errs.RuleConflict(comp.Code, len(rules))
		}
		rule := rules[0]

		base := decimal.Zero
		if comp.BasePrice != nil {
			base = *comp.BasePrice
		}

		fee := decimal.NewFromInt(volume).Mul(rule.Price)
		adjustments := []types.Adjustment{{
			Type: types.AdjustVolume,
			Description: fmt.Sprintf("%d transactions @ %s%s",
				volume, e.cfg.Global.CurrencySymbol, rule.Price.StringFixed(2)),
			Amount: &fee,
		}}

		final := base.Add(fee)

		if sel.Books != nil && comp.SupportsComplexity {
			m := e.cfg.ComplexityMultiplier(sel.Books.Complexity, types.ChoiceModelB)
			adjustments = append(adjustments, types.Adjustment{
				Type:        types.AdjustComplexity,
				Description: fmt.Sprintf("%s books", sel.Books.Complexity),
				Multiplier:  &m,
			})
			final = final.Mul(m)
		}

		services = append(services, types.ServicePrice{
			ComponentCode: sel.ComponentCode,
			ComponentName: comp.Name,
			Calculation:   e.transactionCalculation(base, adjustments),
			BasePrice:     base,
			Adjustments:   adjustments,
			FinalPrice:    final,
		})
		subtotal = subtotal.Add(final)
	}

	return e.cfg.finalizeModel("Transaction-Based", services, subtotal, input.Modifiers), nil
}

// transactionCalculation renders the derivation string for a
// transaction-priced service, e.g.
// "Base: £20.00 + 150 transactions @ £0.30 × 1.08 (complex books)".
func (e *Engine) transactionCalculation(base decimal.Decimal, adjustments []types.Adjustment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Base: %s%s", e.cfg.Global.CurrencySymbol, base.StringFixed(2))
	for _, adj := range adjustments {
		switch {
		case adj.Type == types.AdjustVolume:
			fmt.Fprintf(&b, " + %s", adj.Description)
		case adj.Multiplier != nil:
			fmt.Fprintf(&b, " × %s (%s)", adj.Multiplier.String(), adj.Description)
		}
	}
	return b.String()
}
