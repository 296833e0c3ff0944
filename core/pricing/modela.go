// Package pricing - Model A: turnover-band pricing
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

// calculateModelA prices every selected service from the client's
// turnover band. Multipliers apply in fixed order: complexity first
// (when configured and supported), then industry.
func (e *Engine) calculateModelA(ctx context.Context, tenantID string, input types.PricingInput) (*types.PricingModel, error) {
	services := []types.ServicePrice{}
	subtotal := decimal.Zero

	// The band is only parsed once a band-priced service needs it, so a
	// quote of purely fixed or payroll services accepts any band string.
	var band *TurnoverBand

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

		if band == nil {
			parsed, err := ParseTurnoverBand(input.Turnover)
			if err != nil {
				return nil, err
			}
			band = &parsed
		}

		rule, err := e.rules.TurnoverBandRule(ctx, tenantID, comp.ID, band.Min)
		if err != nil {
			return nil, errs.Storage("turnover band rule lookup failed", err)
		}
		if rule == nil {
			return nil, errs.NoPricingRule(sel.ComponentCode, input.Turnover)
		}

		adjustments := []types.Adjustment{}
		final := rule.Price

		if sel.Books != nil && comp.SupportsComplexity {
			m := e.cfg.ComplexityMultiplier(sel.Books.Complexity, types.ChoiceModelA)
			adjustments = append(adjustments, types.Adjustment{
				Type:        types.AdjustComplexity,
				Description: fmt.Sprintf("%s books", sel.Books.Complexity),
				Multiplier:  &m,
			})
			final = final.Mul(m)
		}

		im := e.cfg.IndustryMultiplier(input.Industry)
		if !im.Equal(one) {
			adjustments = append(adjustments, types.Adjustment{
				Type:        types.AdjustIndustry,
				Description: fmt.Sprintf("%s industry", input.Industry),
				Multiplier:  &im,
			})
			final = final.Mul(im)
		}

		e.log.Debug("priced service from turnover band",
			zap.String("component", comp.Code),
			zap.String("band", input.Turnover),
			zap.String("final", final.String()))

		services = append(services, types.ServicePrice{
			ComponentCode: sel.ComponentCode,
			ComponentName: comp.Name,
			Calculation:   e.bandCalculation(rule.Price, adjustments),
			BasePrice:     rule.Price,
			Adjustments:   adjustments,
			FinalPrice:    final,
		})
		subtotal = subtotal.Add(final)
	}

	return e.cfg.finalizeModel("Turnover-Based", services, subtotal, input.Modifiers), nil
}

// bandCalculation renders the derivation string for a band-priced
// service, e.g. "Base: £85.00 × 1.15 (complex books)".
func (e *Engine) bandCalculation(base decimal.Decimal, adjustments []types.Adjustment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Base: %s%s", e.cfg.Global.CurrencySymbol, base.StringFixed(2))
	for _, adj := range adjustments {
		if adj.Multiplier != nil {
			fmt.Fprintf(&b, " × %s (%s)", adj.Multiplier.String(), adj.Description)
		}
	}
	return b.String()
}
