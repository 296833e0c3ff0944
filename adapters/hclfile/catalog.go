// Package hclfile provides an HCL-file-backed catalog and rule source.
// The file is read once into an immutable snapshot; there is no
// mutation or reload.
package hclfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/shopspring/decimal"

	"practice-pricing/core/types"
	errs "practice-pricing/internal/errors"
)

// DefaultTenant is used when the catalog file does not name a tenant
const DefaultTenant = "default"

type fileSchema struct {
	Tenant     string           `hcl:"tenant,optional"`
	Components []componentBlock `hcl:"component,block"`
}

type componentBlock struct {
	Code               string      `hcl:"code,label"`
	Name               string      `hcl:"name"`
	Category           string      `hcl:"category,optional"`
	PricingModel       string      `hcl:"pricing_model"`
	SupportsComplexity bool        `hcl:"supports_complexity,optional"`
	FixedPrice         *float64    `hcl:"fixed_price,optional"`
	BasePrice          *float64    `hcl:"base_price,optional"`
	Active             *bool       `hcl:"active,optional"`
	Rules              []ruleBlock `hcl:"rule,block"`
}

type ruleBlock struct {
	Type   string  `hcl:"type"`
	Min    int64   `hcl:"min,optional"`
	Max    *int64  `hcl:"max,optional"`
	Price  float64 `hcl:"price"`
	Active *bool   `hcl:"active,optional"`
}

// Catalog is an immutable catalog snapshot loaded from an HCL file.
// It serves component lookups, rule resolution and integrity
// validation for a single tenant.
type Catalog struct {
	tenantID   string
	components []types.ServiceComponent
	byCode     map[string]int
	rules      map[string][]types.PricingRule
}

// Load reads and decodes a catalog file
func Load(path string) (*Catalog, error) {
	var file fileSchema
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, errs.Config(fmt.Sprintf("cannot decode catalog file %s", path), err)
	}
	return build(file)
}

func build(file fileSchema) (*Catalog, error) {
	tenant := file.Tenant
	if tenant == "" {
		tenant = DefaultTenant
	}

	c := &Catalog{
		tenantID: tenant,
		byCode:   make(map[string]int),
		rules:    make(map[string][]types.PricingRule),
	}

	for _, block := range file.Components {
		strategy := types.PricingStrategy(block.PricingModel)
		if !strategy.Valid() {
			return nil, errs.Newf(errs.TypeConfig,
				"component %s: unknown pricing model %q", block.Code, block.PricingModel)
		}
		if _, dup := c.byCode[block.Code]; dup {
			return nil, errs.Newf(errs.TypeConfig, "duplicate component code %s", block.Code)
		}

		comp := types.ServiceComponent{
			ID:                 block.Code,
			TenantID:           tenant,
			Code:               block.Code,
			Name:               block.Name,
			Category:           block.Category,
			Pricing:            strategy,
			SupportsComplexity: block.SupportsComplexity,
			Active:             block.Active == nil || *block.Active,
		}
		if block.FixedPrice != nil {
			price := decimal.NewFromFloat(*block.FixedPrice)
			comp.FixedPrice = &price
		}
		if block.BasePrice != nil {
			price := decimal.NewFromFloat(*block.BasePrice)
			comp.BasePrice = &price
		}

		c.byCode[block.Code] = len(c.components)
		c.components = append(c.components, comp)

		for i, rb := range block.Rules {
			ruleType := types.RuleType(rb.Type)
			switch ruleType {
			case types.RuleTurnoverBand, types.RuleTransactionBand, types.RulePerUnit:
			default:
				return nil, errs.Newf(errs.TypeConfig,
					"component %s: unknown rule type %q", block.Code, rb.Type)
			}

			rule := types.PricingRule{
				ID:          fmt.Sprintf("%s/%s/%d", block.Code, rb.Type, i),
				ComponentID: block.Code,
				Type:        ruleType,
				MinValue:    rb.Min,
				MaxValue:    rb.Max,
				Price:       decimal.NewFromFloat(rb.Price),
				Active:      rb.Active == nil || *rb.Active,
			}
			c.rules[block.Code] = append(c.rules[block.Code], rule)
		}
	}

	return c, nil
}

// TenantID returns the tenant the catalog file belongs to
func (c *Catalog) TenantID() string {
	return c.tenantID
}

// ActiveComponent implements pricing.CatalogProvider
func (c *Catalog) ActiveComponent(ctx context.Context, tenantID, code string) (*types.ServiceComponent, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	idx, ok := c.byCode[code]
	if !ok || !c.components[idx].Active {
		return nil, nil
	}
	comp := c.components[idx]
	return &comp, nil
}

// ActiveComponents implements pricing.CatalogProvider
func (c *Catalog) ActiveComponents(ctx context.Context, tenantID string) ([]types.ServiceComponent, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	var active []types.ServiceComponent
	for _, comp := range c.components {
		if comp.Active {
			active = append(active, comp)
		}
	}
	return active, nil
}

// TurnoverBandRule implements pricing.RuleProvider
func (c *Catalog) TurnoverBandRule(ctx context.Context, tenantID, componentID string, value int64) (*types.PricingRule, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	for _, rule := range c.rules[componentID] {
		if rule.Active && rule.Type == types.RuleTurnoverBand && rule.Contains(value) {
			matched := rule
			return &matched, nil
		}
	}
	return nil, nil
}

// TransactionRules implements pricing.RuleProvider
func (c *Catalog) TransactionRules(ctx context.Context, tenantID, componentID string) ([]types.PricingRule, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	var matched []types.PricingRule
	for _, rule := range c.rules[componentID] {
		if rule.Active && rule.Type.Transactional() {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

// Components implements catalog.Source
func (c *Catalog) Components(ctx context.Context, tenantID string) ([]types.ServiceComponent, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	out := make([]types.ServiceComponent, len(c.components))
	copy(out, c.components)
	return out, nil
}

// Rules implements catalog.Source
func (c *Catalog) Rules(ctx context.Context, tenantID string) ([]types.PricingRule, error) {
	if tenantID != c.tenantID {
		return nil, nil
	}
	var out []types.PricingRule
	for _, comp := range c.components {
		out = append(out, c.rules[comp.ID]...)
	}
	return out, nil
}
