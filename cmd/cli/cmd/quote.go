package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"freelance-pricing/core/advisory"
	"freelance-pricing/core/refdata"
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print a random pricing philosophy quote",
	Run: func(cmd *cobra.Command, args []string) {
		source := advisory.NewQuoteSource(refdata.Defaults().Philosophy, time.Now().UnixNano())
		fmt.Println(source.Quote())
	},
}
