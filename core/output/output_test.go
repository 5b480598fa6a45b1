package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

func sampleResult() *types.PricingResult {
	return &types.PricingResult{
		Floor:       375,
		Objective:   913,
		Minimum:     750,
		Ideal:       900,
		Dream:       1035,
		Recommended: 968,
		Band:        types.MarketBand{Label: "Moyenne marché", Min: 950, Max: 1200},
		OfferTier:   types.OfferComplete,
		Alerts: []types.Alert{
			{Kind: types.AlertInfo, Title: "Confusion objectif / prix", Message: "Attention."},
		},
		Justifications: []string{
			"Ton niveau d'expérience (intermédiaire) justifie ce positionnement.",
		},
		Announcement: "Tu ne paies pas mes heures.",
	}
}

func TestFormatCurrency(t *testing.T) {
	// The exact grouping character depends on the locale tables; assert
	// the digits and the euro suffix, not the separator.
	cases := map[int][]string{
		0:    {"0"},
		42:   {"42"},
		750:  {"750"},
		1250: {"1", "250"},
	}
	for amount, digits := range cases {
		got := FormatCurrency(amount)
		assert.True(t, strings.HasSuffix(got, " €"), "got %q", got)
		for _, d := range digits {
			assert.Contains(t, got, d)
		}
	}
}

func TestJSONFormatterRoundTrip(t *testing.T) {
	f := NewJSON()
	assert.Equal(t, FormatJSON, f.Format())

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))

	var decoded types.PricingResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *sampleResult(), decoded)
}

func TestCLIFormatterSections(t *testing.T) {
	f := NewCLI(refdata.Defaults())
	assert.Equal(t, FormatCLI, f.Format())

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "Ton pricing recommandé")
	assert.Contains(t, out, "Prix minimum")
	assert.Contains(t, out, "Prix idéal")
	assert.Contains(t, out, "Prix rêvé")
	assert.Contains(t, out, "Moyenne marché")
	assert.Contains(t, out, "Confusion objectif / prix")
	assert.Contains(t, out, "Pourquoi ce prix")
	assert.Contains(t, out, "Comment l'annoncer")
	assert.Contains(t, out, "Tu ne paies pas mes heures.")

	// Complete offers never show the below-minimum exceptions.
	assert.NotContains(t, out, "Missions pouvant être pricées")
	// Strategies are off unless asked for.
	assert.NotContains(t, out, "Stratégies de pricing")
}

func TestCLIFormatterNarrowOfferShowsExceptions(t *testing.T) {
	f := NewCLI(refdata.Defaults())

	res := sampleResult()
	res.OfferTier = types.OfferSpecific
	res.Band = types.MarketBand{Label: "Mission spécifique", Min: 300, Max: 600}

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, res))
	out := buf.String()

	assert.Contains(t, out, "Missions pouvant être pricées")
	assert.Contains(t, out, "Support ponctuel")
}

func TestCLIFormatterStrategies(t *testing.T) {
	f := NewCLI(refdata.Defaults())
	f.ShowStrategies = true

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleResult()))
	out := buf.String()

	assert.Contains(t, out, "Stratégies de pricing")
	assert.Contains(t, out, "Très bas")
	assert.Contains(t, out, "Moyen (Idéal)")
	assert.Contains(t, out, "Premium")
}

func TestCLIFormatterNoAlerts(t *testing.T) {
	f := NewCLI(refdata.Defaults())

	res := sampleResult()
	res.Alerts = nil

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, res))

	assert.NotContains(t, buf.String(), "Alertes")
}
