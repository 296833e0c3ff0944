// Package pricing implements the dual-model fee quoting engine.
// The engine is a pure computation over its input plus read-only
// catalog and rule lookups; it persists nothing and holds no mutable
// state, so any number of quotes may run concurrently.
package pricing

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"practice-pricing/core/types"
	errs "practice-pricing/internal/errors"
)

// CatalogProvider resolves sellable service components.
// Lookups return (nil, nil) when no active component matches.
type CatalogProvider interface {
	// ActiveComponent returns the active component with the given code
	ActiveComponent(ctx context.Context, tenantID, code string) (*types.ServiceComponent, error)

	// ActiveComponents lists all active components for a tenant
	ActiveComponents(ctx context.Context, tenantID string) ([]types.ServiceComponent, error)
}

// RuleProvider resolves active pricing rules.
type RuleProvider interface {
	// TurnoverBandRule returns the active turnover_band rule whose
	// [min, max) interval contains value, or (nil, nil) if none does
	TurnoverBandRule(ctx context.Context, tenantID, componentID string, value int64) (*types.PricingRule, error)

	// TransactionRules returns every active transaction_band or
	// per_unit rule for the component. The engine requires exactly one
	// to qualify and rejects ambiguous configurations.
	TransactionRules(ctx context.Context, tenantID, componentID string) ([]types.PricingRule, error)
}

// Engine computes dual-model fee quotes.
type Engine struct {
	catalog CatalogProvider
	rules   RuleProvider
	cfg     Config
	log     *zap.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithConfig sets the merged engine configuration
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithLogger sets the engine logger
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New creates an engine over the given catalog and rule providers.
// Tenant overrides must already be merged into the Config via
// Defaults().Merge before construction.
func New(catalog CatalogProvider, rules RuleProvider, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		rules:   rules,
		cfg:     Defaults(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's merged configuration
func (e *Engine) Config() Config {
	return e.cfg
}

// CalculateQuote prices the input under both models and recommends one.
// Model B is only computed when transaction data is supplied. The two
// models have no data dependency and run concurrently; the first error
// aborts the quote with no partial result.
func (e *Engine) CalculateQuote(ctx context.Context, tenantID string, input types.PricingInput) (*types.Quote, error) {
	if input.Turnover == "" {
		input.Turnover = e.cfg.Global.DefaultTurnoverBand
	}
	if input.Industry == "" {
		input.Industry = e.cfg.Global.DefaultIndustry
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	var (
		wg         sync.WaitGroup
		modelA     *types.PricingModel
		modelB     *types.PricingModel
		errA, errB error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		modelA, errA = e.calculateModelA(ctx, tenantID, input)
	}()

	if input.TransactionData != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			modelB, errB = e.calculateModelB(ctx, tenantID, input)
		}()
	}

	wg.Wait()
	if errA != nil {
		return nil, errA
	}
	if errB != nil {
		return nil, errB
	}

	recommendation := e.cfg.CompareModels(modelA, modelB)

	e.log.Debug("quote computed",
		zap.String("tenant", tenantID),
		zap.Int("services", len(input.Services)),
		zap.String("model_a_total", modelA.MonthlyTotal.String()),
		zap.String("recommended", string(recommendation.Model)))

	return &types.Quote{
		ModelA:         modelA,
		ModelB:         modelB,
		Recommendation: recommendation,
	}, nil
}

// lookupComponent resolves a component code or fails the whole quote.
// An unknown or inactive code is fatal in both models.
func (e *Engine) lookupComponent(ctx context.Context, tenantID, code string) (*types.ServiceComponent, error) {
	comp, err := e.catalog.ActiveComponent(ctx, tenantID, code)
	if err != nil {
		return nil, errs.Storage("component lookup failed", err)
	}
	if comp == nil {
		return nil, errs.ComponentNotFound(code)
	}
	return comp, nil
}

func validateInput(input types.PricingInput) error {
	if !input.Industry.Valid() {
		return errs.Input("unknown industry classification: " + string(input.Industry))
	}
	for _, sel := range input.Services {
		if sel.ComponentCode == "" {
			return errs.Input("service selection missing component code")
		}
		if sel.Books != nil && !sel.Books.Complexity.Valid() {
			return errs.Input("unknown complexity level: " + string(sel.Books.Complexity))
		}
	}
	return nil
}
