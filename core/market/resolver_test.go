package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

func TestResolveFixedBandsForNarrowOffers(t *testing.T) {
	r := NewResolver(refdata.Defaults())

	// Specific and partial offers ignore experience and transformation.
	for _, exp := range []types.ExperienceTier{types.ExperienceBeginner, types.ExperienceExpert} {
		for _, tr := range []types.TransformationTier{types.TransformationLow, types.TransformationHigh} {
			assert.Equal(t, "Mission spécifique", r.Resolve(types.OfferSpecific, exp, tr).Label)
			assert.Equal(t, "Offre partielle", r.Resolve(types.OfferPartial, exp, tr).Label)
		}
	}
}

func TestResolveCompleteOfferEscalation(t *testing.T) {
	r := NewResolver(refdata.Defaults())

	tests := []struct {
		name    string
		exp     types.ExperienceTier
		transfo types.TransformationTier
		want    string
	}{
		{"beginner low", types.ExperienceBeginner, types.TransformationLow, "Entrée de gamme"},
		{"beginner medium", types.ExperienceBeginner, types.TransformationMedium, "Moyenne marché"},
		{"intermediate low", types.ExperienceIntermediate, types.TransformationLow, "Moyenne marché"},
		{"expert low", types.ExperienceExpert, types.TransformationLow, "Haut de marché"},
		{"beginner high", types.ExperienceBeginner, types.TransformationHigh, "Haut de marché"},
		{"expert high", types.ExperienceExpert, types.TransformationHigh, "Haut de marché"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(types.OfferComplete, tt.exp, tt.transfo).Label)
		})
	}
}

func TestResolveTotalOverUnknownInputs(t *testing.T) {
	r := NewResolver(refdata.Defaults())

	// Unknown tiers still land in exactly one band.
	band := r.Resolve(types.OfferComplete, "inconnue", "inconnue")
	assert.Equal(t, "Entrée de gamme", band.Label)
	assert.LessOrEqual(t, band.Min, band.Max)
}
