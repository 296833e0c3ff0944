// Package cmd provides the CLI commands for practice-pricing.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"practice-pricing/internal/config"
	"practice-pricing/internal/logging"
)

var (
	cfgFile     string
	catalogFile string
	verbose     bool

	cfg *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "practice-pricing",
	Short: "Dual-model fee quoting for accountancy practices",
	Long: `practice-pricing computes service fee quotes under two independent
pricing strategies - turnover-band based and transaction-volume based -
applies layered discounts, and recommends which quote to present.

Examples:
  practice-pricing quote --catalog catalog.hcl input.json
  practice-pricing estimate --turnover 90k-149k --industry standard --vat
  practice-pricing catalog validate --catalog catalog.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./practice-pricing.json)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "catalog HCL file (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = "practice-pricing.json"
	}

	loaded, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded
	cfg.FromEnv()

	if catalogFile != "" {
		cfg.Catalog.Path = catalogFile
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("practice-pricing version 0.1.0")
	},
}
