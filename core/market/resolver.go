// Package market resolves an offer to its reference price band.
package market

import (
	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

// Resolver selects the market band for an offer. It is pure and total:
// every input combination yields exactly one band.
type Resolver struct {
	tables *refdata.Tables
}

// NewResolver creates a resolver over the given reference tables.
func NewResolver(tables *refdata.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Resolve maps (offer tier, experience, transformation) to a band.
//
// Specific and partial offers are priced outside the standard band system
// and may legitimately fall below the complete-offer minimum, so they get
// fixed bands regardless of experience or transformation. Complete offers
// escalate through the ascending bands on the more favorable of the two
// signals: expert experience or high transformation reaches the premium
// band, an intermediate value on either reaches the mid band.
func (r *Resolver) Resolve(tier types.OfferTier, exp types.ExperienceTier, transfo types.TransformationTier) types.MarketBand {
	switch tier {
	case types.OfferSpecific:
		return r.tables.SpecificBand
	case types.OfferPartial:
		return r.tables.PartialBand
	}

	if exp == types.ExperienceExpert || transfo == types.TransformationHigh {
		return r.tables.PremiumBand
	}
	if exp == types.ExperienceIntermediate || transfo == types.TransformationMedium {
		return r.tables.MidBand
	}
	return r.tables.EntryBand
}
