// Package output renders pricing results for humans and machines and
// owns currency display. Rendering never feeds back into computation.
package output

import (
	"io"

	"freelance-pricing/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable styled terminal rendering
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *types.PricingResult) error
}
