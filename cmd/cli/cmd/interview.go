package cmd

import (
	"github.com/spf13/cobra"

	"freelance-pricing/adapters/tui"
	"freelance-pricing/core/catalog"
	"freelance-pricing/core/engine"
	"freelance-pricing/internal/config"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Run the interactive questionnaire",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Get()

		tables, err := loadTables(cfg)
		if err != nil {
			return err
		}
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		// The TUI renders the result itself; a nil result means the user
		// left before finishing, which is not an error.
		_, err = tui.Run(cat, engine.New(tables))
		return err
	},
}
