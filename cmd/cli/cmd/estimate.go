// Package cmd - estimate command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"practice-pricing/core/estimator"
	"practice-pricing/core/types"
)

var (
	estimateTurnover string
	estimateIndustry string
	estimateVAT      bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate monthly transaction volume",
	Long: `Estimate a client's monthly transaction count from their turnover
band and industry, for use as Model B input when no real bookkeeping
data is available.

Examples:
  practice-pricing estimate --turnover 90k-149k --industry standard
  practice-pricing estimate --turnover 1m+ --industry regulated --vat`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&estimateTurnover, "turnover", "t", "", "turnover band, e.g. 90k-149k")
	estimateCmd.Flags().StringVarP(&estimateIndustry, "industry", "i", "standard", "industry classification")
	estimateCmd.Flags().BoolVar(&estimateVAT, "vat", false, "client is VAT registered")
	_ = estimateCmd.MarkFlagRequired("turnover")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	estimated := estimator.MonthlyTransactions(
		estimateTurnover,
		types.Industry(estimateIndustry),
		estimateVAT,
	)
	fmt.Printf("%d transactions/month\n", estimated)
	return nil
}
