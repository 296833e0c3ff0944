// Package cmd - catalog commands
package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"practice-pricing/adapters/hclfile"
	"practice-pricing/core/catalog"
)

// catalogCmd groups catalog maintenance commands
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and validate the service catalog",
}

// catalogValidateCmd validates catalog integrity
var catalogValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog and pricing rule integrity",
	Long: `Check the catalog for data problems the quoting engine assumes are
absent: components without rules, orphaned rules, inactive components
with active rules, and overlapping rule bands.

Exits non-zero when an error-severity issue is found.`,
	RunE: runCatalogValidate,
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
}

func runCatalogValidate(cmd *cobra.Command, args []string) error {
	cat, err := hclfile.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	report, err := catalog.ValidateSource(context.Background(), cat, cat.TenantID())
	if err != nil {
		return err
	}

	if len(report.Issues) == 0 {
		fmt.Println("Catalog is healthy: no issues found.")
		return nil
	}

	for _, issue := range report.Issues {
		fmt.Printf("[%s] %s: %s\n", issue.Severity, issue.Type, issue.Message)
		for _, detail := range issue.Details {
			fmt.Printf("  - %s\n", detail)
		}
	}

	if !report.Healthy {
		return fmt.Errorf("catalog has error-severity integrity issues")
	}
	return nil
}
