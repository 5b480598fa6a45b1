package output

import (
	"encoding/json"
	"io"

	"freelance-pricing/core/types"
)

// JSONFormatter renders the result as indented JSON.
type JSONFormatter struct{}

// NewJSON creates a JSON formatter.
func NewJSON() *JSONFormatter { return &JSONFormatter{} }

// Format returns the format type
func (f *JSONFormatter) Format() Format { return FormatJSON }

// Render writes the result as JSON
func (f *JSONFormatter) Render(w io.Writer, result *types.PricingResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
