package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"freelance-pricing/core/catalog"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return err
		}

		for _, section := range cat.Sections {
			fmt.Printf("## %s\n%s\n\n", section.Title, section.Description)
			for _, q := range cat.BySection(section.ID) {
				required := ""
				if q.Required {
					required = " (obligatoire)"
				}
				fmt.Printf("  %s%s\n    %s\n", q.ID, required, q.Prompt)
				for _, opt := range q.Options {
					fmt.Printf("      - %s: %s\n", opt.Value, opt.Label)
				}
				fmt.Println()
			}
		}
		return nil
	},
}
