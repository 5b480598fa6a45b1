// Package composer implements the price composition algorithm: a base
// price pushed through an ordered chain of multiplicative and additive
// adjustments, derived into minimum / ideal / dream figures, then
// reconciled under caps, floors, and monotonicity repair.
//
// The stage order is load-bearing: multiplicative and additive steps
// interleave, so reordering changes the final figures.
package composer

import (
	"math"

	"github.com/shopspring/decimal"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

// Input carries the signals the composer needs, already derived from the
// raw answers.
type Input struct {
	// OfferTier selects the base price and the hard floor regime
	OfferTier types.OfferTier

	// Experience is the primary multiplier key
	Experience types.ExperienceTier

	// Transformation is the secondary multiplier key
	Transformation types.TransformationTier

	// PastClientsBucket is the client-count bucket code
	PastClientsBucket string

	// Proof is the derived social-proof tier
	Proof types.ProofTier

	// Zone is the geographic zone code
	Zone string

	// AudienceMultiplier is the max-of-selected segment multiplier
	AudienceMultiplier float64

	// ServiceValue is the summed per-service weight score
	ServiceValue float64

	// Floor is the time-based floor price, 0 when not computed
	Floor int

	// Objective is the income-goal-derived per-client price
	Objective int
}

// Figures are the reconciled price figures.
type Figures struct {
	// Minimum <= Ideal <= Dream <= the max price; Recommended sits
	// between Minimum and Dream
	Minimum     int
	Ideal       int
	Dream       int
	Recommended int

	// Overridden reports that the complete-offer floor rule rewrote the
	// figures after composition
	Overridden bool
}

// Composer combines reference tables into price figures.
type Composer struct {
	tables *refdata.Tables
}

// New creates a composer over the given reference tables.
func New(tables *refdata.Tables) *Composer {
	return &Composer{tables: tables}
}

// Compose runs the full composition pipeline. The running price stays
// fractional until the explicit rounding at the three-figure derivation.
func (c *Composer) Compose(in Input) Figures {
	t := c.tables

	// Stage 1: tier-indexed base.
	running := decimal.NewFromInt(int64(t.BasePrice(in.OfferTier)))

	// Stage 2: multiplier chain, fixed order. Experience carries the
	// largest spread, transformation the second largest.
	running = mul(running, t.ExperienceMultiplier(in.Experience))
	running = mul(running, t.TransformationMultiplier(in.Transformation))
	running = mul(running, t.PastClientsMultiplier(in.PastClientsBucket))
	running = mul(running, t.SocialProofMultiplier(in.Proof))
	running = mul(running, t.ZoneMultiplier(in.Zone))
	running = mul(running, in.AudienceMultiplier)

	// Expert experience backed by strong proof compounds beyond the two
	// independent factors; the factor is >= 1 so the combined effect is
	// never below applying them separately.
	if in.Experience == types.ExperienceExpert && in.Proof == types.ProofStrong {
		running = mul(running, t.Rules.ComboBonus)
	}

	// Stage 3: additive service bonus. Added, never multiplied, so the
	// service score cannot push the price past its own scale.
	bonus := decimal.NewFromFloat(in.ServiceValue * t.Rules.ServiceBonusRate)
	running = running.Add(bonus)

	// Stage 4: three-figure derivation.
	ideal := int(running.Round(0).IntPart())
	dream := int(mul(running, t.Rules.StretchFactor).Round(0).IntPart())

	hardFloor := t.Rules.GenericFloor
	if in.OfferTier == types.OfferComplete {
		hardFloor = t.Rules.MinimumCompleteOffer
	}
	objectiveFloor := int(math.Round(float64(in.Objective) * t.Rules.ObjectiveFloorRate))
	minimum := maxInt(in.Floor, objectiveFloor, hardFloor)

	// Stage 5: cap everything at the absolute ceiling.
	maxPrice := t.Rules.MaxPrice
	minimum = minInt(minimum, maxPrice)
	ideal = minInt(ideal, maxPrice)
	dream = minInt(dream, maxPrice)

	// The override rule in stage 8 judges what the arithmetic alone
	// produced. Taken after repair, the hard floor folded into the
	// minimum would mask every violation.
	composedRecommended := int(math.Round(float64(ideal+maxInt(dream, ideal)) / 2))

	// Stage 6: monotonicity repair. Floors and caps are computed
	// independently and can cross; repair by raising, never lowering.
	ideal = maxInt(ideal, minimum)
	dream = maxInt(dream, ideal)

	// Stage 7: the headline figure.
	recommended := int(math.Round(float64(ideal+dream) / 2))
	recommended = minInt(recommended, maxPrice)

	f := Figures{
		Minimum:     minimum,
		Ideal:       ideal,
		Dream:       dream,
		Recommended: recommended,
	}

	// Stage 8: hard-rule override. A complete offer never goes out below
	// the non-negotiable minimum, whatever the arithmetic said.
	if in.OfferTier == types.OfferComplete && composedRecommended < t.Rules.MinimumCompleteOffer {
		floor := t.Rules.MinimumCompleteOffer
		f.Minimum = maxInt(f.Minimum, floor)
		f.Ideal = maxInt(f.Ideal, floor)
		f.Recommended = maxInt(f.Recommended, floor)
		f.Dream = maxInt(f.Dream, f.Recommended)
		f.Overridden = true
	}

	return f
}

func mul(d decimal.Decimal, factor float64) decimal.Decimal {
	return d.Mul(decimal.NewFromFloat(factor))
}

func maxInt(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
