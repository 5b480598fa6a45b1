package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))

	headlineStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	faintStyle = lipgloss.NewStyle().Faint(true)

	alertStyles = map[types.AlertKind]lipgloss.Style{
		types.AlertInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		types.AlertWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		types.AlertDanger:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		types.AlertError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
)

// CLIFormatter renders a styled human-readable report.
type CLIFormatter struct {
	tables *refdata.Tables

	// ShowBand and ShowStrategies toggle the reference context sections
	ShowBand       bool
	ShowStrategies bool
}

// NewCLI creates a CLI formatter over the reference tables used for the
// calculation, so the report can show band and strategy context.
func NewCLI(tables *refdata.Tables) *CLIFormatter {
	return &CLIFormatter{tables: tables, ShowBand: true, ShowStrategies: false}
}

// Format returns the format type
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the styled report
func (f *CLIFormatter) Render(w io.Writer, result *types.PricingResult) error {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Ton pricing recommandé"))
	b.WriteString("\n\n")
	b.WriteString(headlineStyle.Render(FormatCurrency(result.Recommended) + " / mois"))
	b.WriteString("\n\n")

	writeFigure(&b, "Prix minimum", result.Minimum)
	writeFigure(&b, "Prix idéal", result.Ideal)
	writeFigure(&b, "Prix rêvé", result.Dream)
	writeFigure(&b, "Prix plancher (temps)", result.Floor)
	writeFigure(&b, "Prix objectif (CA)", result.Objective)

	if f.ShowBand {
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("Zone de marché: "))
		b.WriteString(fmt.Sprintf("%s (%s - %s)\n",
			result.Band.Label, FormatCurrency(result.Band.Min), FormatCurrency(result.Band.Max)))
		if result.OfferTier != types.OfferComplete {
			b.WriteString(faintStyle.Render("Missions pouvant être pricées sous le minimum standard:"))
			b.WriteString("\n")
			for _, e := range f.tables.AllowedExceptions {
				b.WriteString(faintStyle.Render("  - " + e))
				b.WriteString("\n")
			}
		}
	}

	if len(result.Alerts) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Alertes"))
		b.WriteString("\n")
		for _, a := range result.Alerts {
			style := alertStyles[a.Kind]
			b.WriteString(style.Render(fmt.Sprintf("[%s] %s", strings.ToUpper(string(a.Kind)), a.Title)))
			b.WriteString("\n  " + a.Message + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Pourquoi ce prix"))
	b.WriteString("\n")
	for _, j := range result.Justifications {
		b.WriteString("  • " + j + "\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Comment l'annoncer"))
	b.WriteString("\n  " + result.Announcement + "\n")

	if f.ShowStrategies {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Stratégies de pricing"))
		b.WriteString("\n")
		for _, s := range f.tables.Strategies {
			b.WriteString("  " + s.Label + "\n")
			for _, p := range s.Pros {
				b.WriteString(faintStyle.Render("    + " + p))
				b.WriteString("\n")
			}
			for _, c := range s.Cons {
				b.WriteString(faintStyle.Render("    - " + c))
				b.WriteString("\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeFigure(b *strings.Builder, label string, amount int) {
	b.WriteString(labelStyle.Render(fmt.Sprintf("%-24s", label+":")))
	b.WriteString(FormatCurrency(amount))
	b.WriteString("\n")
}
