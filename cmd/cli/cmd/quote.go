// Package cmd - quote command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"practice-pricing/adapters/hclfile"
	"practice-pricing/core/pricing"
	"practice-pricing/core/types"
	"practice-pricing/internal/logging"
)

var outputFormat string

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote [input.json]",
	Short: "Compute a dual-model fee quote",
	Long: `Price the services in the input file under both pricing models and
recommend one.

The input file is a JSON pricing request: turnover band, industry,
selected services and optional transaction data and modifiers.

Examples:
  practice-pricing quote input.json
  practice-pricing quote --catalog catalog.hcl --format json input.json`,
	Args: cobra.ExactArgs(1),
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}

	var input types.PricingInput
	if err := json.Unmarshal(data, &input); err != nil {
		return fmt.Errorf("cannot parse input file: %w", err)
	}

	cat, err := hclfile.Load(cfg.Catalog.Path)
	if err != nil {
		return err
	}

	engine := pricing.New(cat, cat,
		pricing.WithConfig(cfg.EngineConfig()),
		pricing.WithLogger(logging.Logger))

	quote, err := engine.CalculateQuote(ctx, cat.TenantID(), input)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(quote)
	}

	renderQuote(os.Stdout, quote, engine.Config().Global.CurrencySymbol)
	return nil
}

func renderQuote(out *os.File, quote *types.Quote, symbol string) {
	renderModel(out, quote.ModelA, symbol)
	if quote.ModelB != nil {
		fmt.Fprintln(out)
		renderModel(out, quote.ModelB, symbol)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Recommended: Model %s\n", quote.Recommendation.Model)
	fmt.Fprintf(out, "  %s\n", quote.Recommendation.Reason)
}

func renderModel(out *os.File, model *types.PricingModel, symbol string) {
	fmt.Fprintf(out, "%s\n", model.Name)
	for _, svc := range model.Services {
		fmt.Fprintf(out, "  %-30s %s%s\n", svc.ComponentName, symbol, svc.FinalPrice.StringFixed(2))
		fmt.Fprintf(out, "    %s\n", svc.Calculation)
	}
	fmt.Fprintf(out, "  Subtotal: %s%s\n", symbol, model.Subtotal.StringFixed(2))
	for _, d := range model.Discounts {
		fmt.Fprintf(out, "  %-30s %s%s\n", d.Description, symbol, d.Amount.Neg().StringFixed(2))
	}
	fmt.Fprintf(out, "  Monthly total: %s%s (%s%s/year)\n",
		symbol, model.MonthlyTotal.StringFixed(2), symbol, model.AnnualTotal.StringFixed(2))
}
