package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"freelance-pricing/adapters/tuning"
	"freelance-pricing/core/catalog"
	"freelance-pricing/core/engine"
	"freelance-pricing/core/output"
	"freelance-pricing/core/refdata"
	"freelance-pricing/internal/config"
	"freelance-pricing/internal/logging"
)

var (
	answersFile string
	formatFlag  string
	tuningFile  string
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Compute the pricing result from an answers file",
	Long: `Compute the recommended monthly price from a JSON answers document.

The document maps question ids to answers, e.g.:

  {
    "niveau_experience": "experte",
    "services_inclus": ["strategie", "creation_contenu", "publication"],
    "objectif_mensuel_net": 3000,
    "nombre_clients_max": "3"
  }`,
	RunE: runPrice,
}

func init() {
	priceCmd.Flags().StringVar(&answersFile, "answers", "", "answers file (JSON, required)")
	priceCmd.Flags().StringVar(&formatFlag, "format", "", "output format: cli or json")
	priceCmd.Flags().StringVar(&tuningFile, "tuning", "", "HCL tuning override file")
	_ = priceCmd.MarkFlagRequired("answers")
}

func runPrice(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	tables, err := loadTables(cfg)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(answersFile)
	if err != nil {
		return err
	}
	answers, err := cat.ParseAnswers(data)
	if err != nil {
		return err
	}
	if missing := cat.MissingRequired(answers); len(missing) > 0 {
		logging.Warn("computing with defaults for unanswered questions",
			zap.Int("missing", len(missing)))
	}

	result := engine.New(tables).ComputePricing(answers)
	logging.Debug("pricing computed",
		zap.String("offer_tier", result.OfferTier.String()),
		zap.Int("recommended", result.Recommended))

	return formatter(cfg, tables).Render(os.Stdout, result)
}

// loadTables returns the reference tables, retuned when a tuning file is
// configured via flag or config.
func loadTables(cfg *config.Config) (*refdata.Tables, error) {
	tables := refdata.Defaults()

	path := tuningFile
	if path == "" {
		path = cfg.Tuning.File
	}
	if path == "" {
		return tables, nil
	}

	tuned, err := tuning.Load(tables, path)
	if err != nil {
		return nil, err
	}
	logging.Info("tuning overrides applied", zap.String("file", path))
	return tuned, nil
}

func formatter(cfg *config.Config, tables *refdata.Tables) output.Formatter {
	format := formatFlag
	if format == "" {
		format = cfg.Output.DefaultFormat
	}
	if format == string(output.FormatJSON) {
		return output.NewJSON()
	}

	cli := output.NewCLI(tables)
	cli.ShowBand = cfg.Output.ShowBand
	cli.ShowStrategies = cfg.Output.ShowStrategies
	return cli
}
