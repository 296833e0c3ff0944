// Package catalog - Catalog and pricing rule integrity validation
// The quote engine assumes rule data is well formed; this validator is
// where that assumption is enforced, out of the quoting hot path.
package catalog

import (
	"context"
	"fmt"
	"sort"

	"practice-pricing/core/types"
)

// Severity grades an integrity issue
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Issue is one integrity finding
type Issue struct {
	// Type identifies the check that produced the issue
	Type string `json:"type"`

	// Severity grades the issue
	Severity Severity `json:"severity"`

	// Message is the human-readable summary
	Message string `json:"message"`

	// Details lists the offending component or rule identifiers
	Details []string `json:"details,omitempty"`
}

// Report is the result of an integrity validation run
type Report struct {
	// Healthy is true when no error-severity issues were found
	Healthy bool `json:"healthy"`

	// Issues are the findings, in check order
	Issues []Issue `json:"issues"`
}

// Snapshot is the full tenant catalog under validation, including
// inactive entries
type Snapshot struct {
	Components []types.ServiceComponent
	Rules      []types.PricingRule
}

// Source loads a tenant's full catalog for validation
type Source interface {
	// Components returns all components for a tenant, active or not
	Components(ctx context.Context, tenantID string) ([]types.ServiceComponent, error)

	// Rules returns all pricing rules for a tenant, active or not
	Rules(ctx context.Context, tenantID string) ([]types.PricingRule, error)
}

// Check inspects a snapshot and reports zero or more issues
type Check func(Snapshot) []Issue

// DefaultChecks returns the standard integrity checks
func DefaultChecks() []Check {
	return []Check{
		checkMissingRules,
		checkOrphanedRules,
		checkInactiveWithActiveRules,
		checkOverlappingRules,
	}
}

// Validate runs the checks against a snapshot
func Validate(snapshot Snapshot, checks []Check) Report {
	report := Report{Healthy: true, Issues: []Issue{}}
	for _, check := range checks {
		for _, issue := range check(snapshot) {
			if issue.Severity == SeverityError {
				report.Healthy = false
			}
			report.Issues = append(report.Issues, issue)
		}
	}
	return report
}

// ValidateSource loads a tenant snapshot and runs the default checks
func ValidateSource(ctx context.Context, src Source, tenantID string) (Report, error) {
	components, err := src.Components(ctx, tenantID)
	if err != nil {
		return Report{}, err
	}
	rules, err := src.Rules(ctx, tenantID)
	if err != nil {
		return Report{}, err
	}
	return Validate(Snapshot{Components: components, Rules: rules}, DefaultChecks()), nil
}

// checkMissingRules flags active band-priced components with no active
// rules. Fixed and payroll components price without rules and are
// exempt.
func checkMissingRules(s Snapshot) []Issue {
	ruledComponents := make(map[string]bool)
	for _, r := range s.Rules {
		if r.Active {
			ruledComponents[r.ComponentID] = true
		}
	}

	var missing []string
	for _, c := range s.Components {
		if !c.Active || c.Pricing == types.PricingFixed || c.Pricing == types.PricingPayroll {
			continue
		}
		if !ruledComponents[c.ID] {
			missing = append(missing, c.Code)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []Issue{{
		Type:     "missing_rules",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%d active service components have no pricing rules", len(missing)),
		Details:  missing,
	}}
}

// checkOrphanedRules flags rules referencing unknown components
func checkOrphanedRules(s Snapshot) []Issue {
	known := make(map[string]bool, len(s.Components))
	for _, c := range s.Components {
		known[c.ID] = true
	}

	var orphaned []string
	for _, r := range s.Rules {
		if !known[r.ComponentID] {
			orphaned = append(orphaned, r.ID)
		}
	}
	if len(orphaned) == 0 {
		return nil
	}
	return []Issue{{
		Type:     "orphaned_rules",
		Severity: SeverityError,
		Message:  fmt.Sprintf("%d pricing rules reference non-existent components", len(orphaned)),
		Details:  orphaned,
	}}
}

// checkInactiveWithActiveRules flags disabled components that still
// carry rules in force
func checkInactiveWithActiveRules(s Snapshot) []Issue {
	activeRules := make(map[string]int)
	for _, r := range s.Rules {
		if r.Active {
			activeRules[r.ComponentID]++
		}
	}

	var affected []string
	for _, c := range s.Components {
		if !c.Active && activeRules[c.ID] > 0 {
			affected = append(affected, c.Code)
		}
	}
	if len(affected) == 0 {
		return nil
	}
	return []Issue{{
		Type:     "inactive_with_active_rules",
		Severity: SeverityWarning,
		Message:  fmt.Sprintf("%d inactive components have active pricing rules", len(affected)),
		Details:  affected,
	}}
}

// checkOverlappingRules flags active rules of the same component and
// rule type whose [min, max) intervals overlap. Overlaps make band
// resolution order-dependent.
func checkOverlappingRules(s Snapshot) []Issue {
	groups := make(map[string][]types.PricingRule)
	for _, r := range s.Rules {
		if !r.Active {
			continue
		}
		key := r.ComponentID + "/" + string(r.Type)
		groups[key] = append(groups[key], r)
	}

	var overlapping []string
	for key, rules := range groups {
		if len(rules) < 2 {
			continue
		}
		sort.Slice(rules, func(i, j int) bool {
			return rules[i].MinValue < rules[j].MinValue
		})
		for i := 1; i < len(rules); i++ {
			prev := rules[i-1]
			if prev.MaxValue == nil || rules[i].MinValue < *prev.MaxValue {
				overlapping = append(overlapping, key)
				break
			}
		}
	}
	if len(overlapping) == 0 {
		return nil
	}
	sort.Strings(overlapping)
	return []Issue{{
		Type:     "overlapping_rules",
		Severity: SeverityError,
		Message:  fmt.Sprintf("%d rule groups contain overlapping bands", len(overlapping)),
		Details:  overlapping,
	}}
}
