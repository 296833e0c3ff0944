// Package postgres provides pgx-backed catalog and rule providers.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
)

// Store serves catalog and rule lookups from Postgres.
// All queries are tenant-scoped and read-only; catalog mutation belongs
// to the administration surface, not this module.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore wraps an existing connection pool
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Connect creates a pooled connection from a DATABASE_URL-style string
func Connect(ctx context.Context, connStr string) (*Store, error) {
	if connStr == "" {
		return nil, fmt.Errorf("database connection string not set")
	}

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close releases the connection pool
func (s *Store) Close() {
	s.pool.Close()
}

const componentColumns = `id::text, tenant_id, code, name, category, pricing_model,
	supports_complexity, fixed_price::text, base_price::text, is_active`

// ActiveComponent implements pricing.CatalogProvider
func (s *Store) ActiveComponent(ctx context.Context, tenantID, code string) (*types.ServiceComponent, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+componentColumns+`
		FROM service_components
		WHERE tenant_id = $1 AND code = $2 AND is_active = TRUE`,
		tenantID, code)

	comp, err := scanComponent(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return comp, nil
}

// ActiveComponents implements pricing.CatalogProvider
func (s *Store) ActiveComponents(ctx context.Context, tenantID string) ([]types.ServiceComponent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+componentColumns+`
		FROM service_components
		WHERE tenant_id = $1 AND is_active = TRUE
		ORDER BY category, name`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComponents(rows)
}

// Components implements catalog.Source
func (s *Store) Components(ctx context.Context, tenantID string) ([]types.ServiceComponent, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+componentColumns+`
		FROM service_components
		WHERE tenant_id = $1
		ORDER BY category, name`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectComponents(rows)
}

const ruleColumns = `id::text, component_id::text, rule_type, min_value, max_value, price::text, is_active`

// TurnoverBandRule implements pricing.RuleProvider.
// The [min, max) interval is half open: a NULL max_value is unbounded
// above.
func (s *Store) TurnoverBandRule(ctx context.Context, tenantID, componentID string, value int64) (*types.PricingRule, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+ruleColumns+`
		FROM pricing_rules
		WHERE tenant_id = $1 AND component_id = $2
		  AND rule_type = 'turnover_band' AND is_active = TRUE
		  AND min_value <= $3 AND (max_value IS NULL OR max_value > $3)
		ORDER BY min_value
		LIMIT 1`,
		tenantID, componentID, value)

	rule, err := scanRule(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// TransactionRules implements pricing.RuleProvider.
// Every qualifying rule is returned in deterministic order; the engine
// decides whether more than one is an error.
func (s *Store) TransactionRules(ctx context.Context, tenantID, componentID string) ([]types.PricingRule, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM pricing_rules
		WHERE tenant_id = $1 AND component_id = $2
		  AND rule_type IN ('transaction_band', 'per_unit') AND is_active = TRUE
		ORDER BY min_value, id`,
		tenantID, componentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRules(rows)
}

// Rules implements catalog.Source
func (s *Store) Rules(ctx context.Context, tenantID string) ([]types.PricingRule, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+ruleColumns+`
		FROM pricing_rules
		WHERE tenant_id = $1
		ORDER BY component_id, rule_type, min_value`,
		tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRules(rows)
}

func scanComponent(row pgx.Row) (*types.ServiceComponent, error) {
	var (
		comp       types.ServiceComponent
		pricing    string
		fixedPrice *string
		basePrice  *string
	)
	err := row.Scan(&comp.ID, &comp.TenantID, &comp.Code, &comp.Name, &comp.Category,
		&pricing, &comp.SupportsComplexity, &fixedPrice, &basePrice, &comp.Active)
	if err != nil {
		return nil, err
	}

	comp.Pricing = types.PricingStrategy(pricing)
	if comp.FixedPrice, err = parsePrice(fixedPrice); err != nil {
		return nil, fmt.Errorf("component %s: %w", comp.Code, err)
	}
	if comp.BasePrice, err = parsePrice(basePrice); err != nil {
		return nil, fmt.Errorf("component %s: %w", comp.Code, err)
	}
	return &comp, nil
}

func collectComponents(rows pgx.Rows) ([]types.ServiceComponent, error) {
	var components []types.ServiceComponent
	for rows.Next() {
		comp, err := scanComponent(rows)
		if err != nil {
			return nil, err
		}
		components = append(components, *comp)
	}
	return components, rows.Err()
}

func scanRule(row pgx.Row) (*types.PricingRule, error) {
	var (
		rule     types.PricingRule
		ruleType string
		price    string
	)
	err := row.Scan(&rule.ID, &rule.ComponentID, &ruleType,
		&rule.MinValue, &rule.MaxValue, &price, &rule.Active)
	if err != nil {
		return nil, err
	}

	rule.Type = types.RuleType(ruleType)
	if rule.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("rule %s: invalid price: %w", rule.ID, err)
	}
	return &rule, nil
}

func collectRules(rows pgx.Rows) ([]types.PricingRule, error) {
	var rules []types.PricingRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
	}
	return rules, rows.Err()
}

func parsePrice(raw *string) (*decimal.Decimal, error) {
	if raw == nil {
		return nil, nil
	}
	price, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q: %w", *raw, err)
	}
	return &price, nil
}
