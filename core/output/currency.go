package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var frPrinter = message.NewPrinter(language.French)

// FormatCurrency renders a whole-euro amount the French way: grouped
// thousands and a trailing euro sign ("1 250 €"). Display only; all
// computation stays on integers.
func FormatCurrency(amount int) string {
	return frPrinter.Sprintf("%d", amount) + " €"
}
