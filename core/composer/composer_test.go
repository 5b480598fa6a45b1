package composer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

func allInputs() []Input {
	tables := refdata.Defaults()

	var inputs []Input
	for tier := range tables.BasePrices {
		for exp := range tables.Experience {
			for transfo := range tables.Transformation {
				for proof := range tables.SocialProof {
					for _, objective := range []int{0, 500, 913, 2283, 9000} {
						inputs = append(inputs, Input{
							OfferTier:          tier,
							Experience:         exp,
							Transformation:     transfo,
							PastClientsBucket:  "10+",
							Proof:              proof,
							Zone:               "paris_idf",
							AudienceMultiplier: 1.12,
							ServiceValue:       200,
							Floor:              675,
							Objective:          objective,
						})
					}
				}
			}
		}
	}
	return inputs
}

// TestComposeMonotonicityInvariant sweeps the input space and checks the
// figure ordering that every result must satisfy.
func TestComposeMonotonicityInvariant(t *testing.T) {
	tables := refdata.Defaults()
	c := New(tables)
	maxPrice := tables.Rules.MaxPrice

	for _, in := range allInputs() {
		f := c.Compose(in)

		require.GreaterOrEqual(t, f.Minimum, 0, "input %+v", in)
		require.LessOrEqual(t, f.Minimum, f.Ideal, "input %+v", in)
		require.LessOrEqual(t, f.Ideal, f.Dream, "input %+v", in)
		require.LessOrEqual(t, f.Dream, maxPrice, "input %+v", in)
		require.LessOrEqual(t, f.Minimum, f.Recommended, "input %+v", in)
		require.LessOrEqual(t, f.Recommended, f.Dream, "input %+v", in)
	}
}

// TestComposeCapInvariant pushes every multiplier to its strongest value
// and checks nothing escapes the ceiling.
func TestComposeCapInvariant(t *testing.T) {
	tables := refdata.Defaults()
	c := New(tables)

	f := c.Compose(Input{
		OfferTier:          types.OfferComplete,
		Experience:         types.ExperienceExpert,
		Transformation:     types.TransformationHigh,
		PastClientsBucket:  "10+",
		Proof:              types.ProofStrong,
		Zone:               "paris_idf",
		AudienceMultiplier: 1.12,
		ServiceValue:       1000,
		Floor:              5000,
		Objective:          50000,
	})

	maxPrice := tables.Rules.MaxPrice
	assert.Equal(t, maxPrice, f.Minimum)
	assert.Equal(t, maxPrice, f.Ideal)
	assert.Equal(t, maxPrice, f.Dream)
	assert.Equal(t, maxPrice, f.Recommended)
}

func TestComposeCompleteOfferFloorOverride(t *testing.T) {
	c := New(refdata.Defaults())

	// A beginner with a low transformation composes below the hard floor.
	f := c.Compose(Input{
		OfferTier:          types.OfferComplete,
		Experience:         types.ExperienceBeginner,
		Transformation:     types.TransformationLow,
		PastClientsBucket:  "aucun",
		Proof:              types.ProofNone,
		Zone:               "remote",
		AudienceMultiplier: 1.0,
		ServiceValue:       95,
		Floor:              300,
		Objective:          913,
	})

	assert.True(t, f.Overridden)
	assert.GreaterOrEqual(t, f.Minimum, 750)
	assert.GreaterOrEqual(t, f.Ideal, 750)
	assert.GreaterOrEqual(t, f.Recommended, 750)
}

func TestComposeNoOverrideForNarrowOffers(t *testing.T) {
	c := New(refdata.Defaults())

	f := c.Compose(Input{
		OfferTier:          types.OfferSpecific,
		Experience:         types.ExperienceBeginner,
		Transformation:     types.TransformationLow,
		PastClientsBucket:  "aucun",
		Proof:              types.ProofNone,
		Zone:               "remote",
		AudienceMultiplier: 1.0,
		ServiceValue:       10,
		Floor:              0,
		Objective:          0,
	})

	assert.False(t, f.Overridden)
	// A specific mission may legitimately sit below the complete floor.
	assert.Less(t, f.Ideal, 750)
}

func TestComposeStageOrder(t *testing.T) {
	c := New(refdata.Defaults())

	// Known-value check of the full chain:
	// 750 * 1.3 * 1.15 * 1.07 * 1.07 * 1.0 * 1.0 * 1.02 + 95*0.05 = 1314.14
	f := c.Compose(Input{
		OfferTier:          types.OfferComplete,
		Experience:         types.ExperienceExpert,
		Transformation:     types.TransformationHigh,
		PastClientsBucket:  "10+",
		Proof:              types.ProofStrong,
		Zone:               "remote",
		AudienceMultiplier: 1.0,
		ServiceValue:       95,
		Floor:              300,
		Objective:          0,
	})

	assert.Equal(t, 1314, f.Ideal)
	// Dream stretches past the cap and gets clamped.
	assert.Equal(t, 1500, f.Dream)
	assert.Equal(t, 1407, f.Recommended)
}

// TestComposeExperienceMonotonic holds everything else fixed and checks
// that climbing experience tiers never lowers the ideal price.
func TestComposeExperienceMonotonic(t *testing.T) {
	c := New(refdata.Defaults())

	base := Input{
		OfferTier:          types.OfferComplete,
		Transformation:     types.TransformationMedium,
		PastClientsBucket:  "4-10",
		Proof:              types.ProofMedium,
		Zone:               "grande_ville",
		AudienceMultiplier: 1.03,
		ServiceValue:       120,
		Floor:              375,
		Objective:          913,
	}

	prev := -1
	for _, exp := range []types.ExperienceTier{
		types.ExperienceBeginner,
		types.ExperienceIntermediate,
		types.ExperienceExpert,
	} {
		in := base
		in.Experience = exp
		f := c.Compose(in)
		assert.GreaterOrEqual(t, f.Ideal, prev, "experience %s", exp)
		prev = f.Ideal
	}
}

// TestComposeComboBonusSuperLinear checks the expert+strong combination
// is never below applying the two factors independently.
func TestComposeComboBonusSuperLinear(t *testing.T) {
	tables := refdata.Defaults()
	c := New(tables)

	in := Input{
		OfferTier:          types.OfferComplete,
		Experience:         types.ExperienceExpert,
		Transformation:     types.TransformationMedium,
		PastClientsBucket:  "aucun",
		Proof:              types.ProofStrong,
		Zone:               "remote",
		AudienceMultiplier: 1.0,
		ServiceValue:       0,
		Floor:              0,
		Objective:          0,
	}
	combined := c.Compose(in)

	// Independent application: same chain without the combo factor.
	independent := 750.0 *
		tables.ExperienceMultiplier(types.ExperienceExpert) *
		tables.SocialProofMultiplier(types.ProofStrong)

	assert.GreaterOrEqual(t, float64(combined.Ideal), independent)
}

func TestComposeUnknownCodesAreNeutral(t *testing.T) {
	c := New(refdata.Defaults())

	known := c.Compose(Input{
		OfferTier:          types.OfferPartial,
		Experience:         types.ExperienceIntermediate,
		Transformation:     types.TransformationMedium,
		PastClientsBucket:  "1-3",
		Proof:              types.ProofWeak,
		Zone:               "remote",
		AudienceMultiplier: 1.0,
		ServiceValue:       35,
		Floor:              0,
		Objective:          0,
	})
	unknownCodes := c.Compose(Input{
		OfferTier:          types.OfferPartial,
		Experience:         types.ExperienceIntermediate,
		Transformation:     types.TransformationMedium,
		PastClientsBucket:  "???",
		Proof:              types.ProofWeak,
		Zone:               "mars",
		AudienceMultiplier: 1.0,
		ServiceValue:       35,
		Floor:              0,
		Objective:          0,
	})

	// "1-3" and "remote" are both neutral, so unknown codes match them.
	assert.Equal(t, known, unknownCodes)
}
