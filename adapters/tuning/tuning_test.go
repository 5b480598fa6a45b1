package tuning

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
	"freelance-pricing/internal/errors"
)

func writeTuningFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFullOverride(t *testing.T) {
	path := writeTuningFile(t, `
rules {
  minimum_complete_offer = 800
  max_price              = 1600
  stretch_factor         = 1.2
}

base_prices {
  complete = 780
  specific = 350
}

multiplier "experience" {
  values = {
    experte = 1.35
  }
}

multiplier "zone" {
  values = {
    paris_idf = 1.08
    lyon      = 1.02
  }
}

band "premium" {
  min   = 1350
  max   = 1600
  label = "Très haut de marché"
}
`)

	base := refdata.Defaults()
	tuned, err := Load(base, path)
	require.NoError(t, err)

	assert.Equal(t, 800, tuned.Rules.MinimumCompleteOffer)
	assert.Equal(t, 1600, tuned.Rules.MaxPrice)
	assert.Equal(t, 1.2, tuned.Rules.StretchFactor)

	assert.Equal(t, 780, tuned.BasePrices[types.OfferComplete])
	assert.Equal(t, 350, tuned.BasePrices[types.OfferSpecific])
	// Untouched entries keep their defaults.
	assert.Equal(t, 450, tuned.BasePrices[types.OfferPartial])

	assert.Equal(t, 1.35, tuned.Experience[types.ExperienceExpert])
	assert.Equal(t, 1.0, tuned.Experience[types.ExperienceBeginner])

	assert.Equal(t, 1.08, tuned.Zone["paris_idf"])
	assert.Equal(t, 1.02, tuned.Zone["lyon"])

	assert.Equal(t, "Très haut de marché", tuned.PremiumBand.Label)
	assert.Equal(t, 1350, tuned.PremiumBand.Min)
	assert.Equal(t, 1600, tuned.PremiumBand.Max)
}

func TestLoadLeavesBaseUntouched(t *testing.T) {
	path := writeTuningFile(t, `
rules {
  max_price = 9999
}

multiplier "experience" {
  values = {
    debutante = 0.5
  }
}
`)

	base := refdata.Defaults()
	_, err := Load(base, path)
	require.NoError(t, err)

	assert.Equal(t, 1500, base.Rules.MaxPrice)
	assert.Equal(t, 1.0, base.Experience[types.ExperienceBeginner])
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeTuningFile(t, "")

	base := refdata.Defaults()
	tuned, err := Load(base, path)
	require.NoError(t, err)

	assert.Equal(t, base, tuned)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(refdata.Defaults(), filepath.Join(t.TempDir(), "absent.hcl"))

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
}

func TestLoadSyntaxError(t *testing.T) {
	path := writeTuningFile(t, `rules {`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
}

func TestLoadUnknownMultiplierTable(t *testing.T) {
	path := writeTuningFile(t, `
multiplier "karma" {
  values = {
    bon = 2.0
  }
}
`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
	assert.Contains(t, err.Error(), "karma")
}

func TestLoadUnknownBand(t *testing.T) {
	path := writeTuningFile(t, `
band "stratosphere" {
  min = 1
  max = 2
}
`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
	assert.Contains(t, err.Error(), "stratosphere")
}

func TestLoadRejectsNonPositiveMultiplier(t *testing.T) {
	path := writeTuningFile(t, `
multiplier "transformation" {
  values = {
    faible = -0.85
  }
}
`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
	assert.Contains(t, err.Error(), "strictly positive")
}

func TestLoadRejectsInvalidChargeRate(t *testing.T) {
	path := writeTuningFile(t, `
rules {
  social_charge_rate = 1.0
}
`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
}

func TestLoadRejectsInvertedBand(t *testing.T) {
	path := writeTuningFile(t, `
band "mid" {
  min = 1300
  max = 900
}
`)

	_, err := Load(refdata.Defaults(), path)

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeTuning))
}
