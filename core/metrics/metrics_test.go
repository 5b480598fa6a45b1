package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

func TestClassifyOfferTier(t *testing.T) {
	tables := refdata.Defaults()

	tests := []struct {
		name     string
		services []string
		want     types.OfferTier
	}{
		{"empty selection", nil, types.OfferSpecific},
		{"single non-core service", []string{"montage_video"}, types.OfferSpecific},
		{"one core service", []string{"publication"}, types.OfferSpecific},
		{"two core services", []string{"strategie", "publication"}, types.OfferPartial},
		{"three core services", []string{"strategie", "publication", "reporting"}, types.OfferPartial},
		{"four core services", []string{"strategie", "creation_contenu", "publication", "management"}, types.OfferComplete},
		{"all five core services", []string{"strategie", "creation_contenu", "publication", "management", "reporting"}, types.OfferComplete},
		{"core services plus extras", []string{"strategie", "creation_contenu", "publication", "management", "pub", "tunnel"}, types.OfferComplete},
		{"many non-core services only", []string{"audit", "montage_video", "coaching", "pub"}, types.OfferSpecific},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyOfferTier(tables, tt.services))
		})
	}
}

func TestSocialProofTier(t *testing.T) {
	tests := []struct {
		name    string
		results []string
		want    types.ProofTier
	}{
		{"empty", nil, types.ProofNone},
		{"explicit none", []string{"aucun"}, types.ProofNone},
		{"none mixed with results", []string{"temoignages", "aucun"}, types.ProofNone},
		{"one result", []string{"temoignages"}, types.ProofWeak},
		{"two results", []string{"temoignages", "etude_cas"}, types.ProofWeak},
		{"three results", []string{"temoignages", "etude_cas", "avant_apres"}, types.ProofMedium},
		{"five results", []string{"temoignages", "etude_cas", "avant_apres", "resultats_ventes", "resultats_leads"}, types.ProofStrong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SocialProofTier(tt.results))
		})
	}
}

func TestTargetAudienceMultiplier(t *testing.T) {
	tables := refdata.Defaults()

	// The single best-paying segment dominates.
	got := TargetAudienceMultiplier(tables, []string{"independants", "grandes_entreprises", "pme"})
	assert.InDelta(t, 1.12, got, 1e-9)

	// Empty selection is neutral.
	assert.InDelta(t, 1.0, TargetAudienceMultiplier(tables, nil), 1e-9)

	// Unknown codes resolve to neutral, not to zero.
	assert.InDelta(t, 1.0, TargetAudienceMultiplier(tables, []string{"inconnu"}), 1e-9)
}

func TestServiceValueSum(t *testing.T) {
	tables := refdata.Defaults()

	assert.InDelta(t, 0, ServiceValueSum(tables, nil), 1e-9)
	assert.InDelta(t, 95, ServiceValueSum(tables, []string{"strategie", "creation_contenu", "publication", "management", "reporting"}), 1e-9)

	// Unknown services contribute nothing.
	assert.InDelta(t, 25, ServiceValueSum(tables, []string{"strategie", "inconnu"}), 1e-9)
}

func TestAverageHours(t *testing.T) {
	tables := refdata.Defaults()

	assert.InDelta(t, 7.5, AverageHours(tables, "5-10"), 1e-9)
	assert.InDelta(t, 45, AverageHours(tables, "40+"), 1e-9)

	// Unknown buckets fall back to the documented default.
	assert.InDelta(t, 20, AverageHours(tables, "n/a"), 1e-9)
	assert.InDelta(t, 20, AverageHours(tables, ""), 1e-9)
}

func TestClientCap(t *testing.T) {
	assert.Equal(t, 1, ClientCap("1"))
	assert.Equal(t, 5, ClientCap("5"))
	assert.Equal(t, 6, ClientCap("6+"))
	assert.Equal(t, 3, ClientCap(""))
	assert.Equal(t, 3, ClientCap("beaucoup"))
	assert.Equal(t, 3, ClientCap("0"))
}

func TestObjectivePrice(t *testing.T) {
	tables := refdata.Defaults()

	// 2000 net grossed up by 27% charges, split across 3 clients.
	assert.Equal(t, 913, ObjectivePrice(tables, 2000, "3"))

	// The 6+ sentinel resolves to 6 clients.
	assert.Equal(t, 1142, ObjectivePrice(tables, 5000, "6+"))

	// Single client carries the whole target.
	assert.Equal(t, 2740, ObjectivePrice(tables, 2000, "1"))
}

func TestFloorPrice(t *testing.T) {
	tables := refdata.Defaults()

	assert.Equal(t, 675, FloorPrice(tables, "40+"))
	assert.Equal(t, 300, FloorPrice(tables, ""))
}
