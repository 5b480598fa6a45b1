// Package cmd provides the CLI commands for the pricing tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"freelance-pricing/internal/config"
	"freelance-pricing/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pricing",
	Short: "Derive a recommended monthly price for a freelance offer",
	Long: `pricing is a guided pricing calculator for freelance community managers.

It derives a recommended monthly price from experience, offer composition,
and client transformation level, with market-band context and pedagogical
alerts.

Examples:
  pricing interview
  pricing price --answers answers.json
  pricing price --answers answers.json --format json --tuning pricing.hcl`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(interviewCmd)
	rootCmd.AddCommand(priceCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.Set(cfg)

	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}
