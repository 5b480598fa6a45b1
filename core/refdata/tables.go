// Package refdata holds the engine's reference data: multiplier tables,
// market bands, hard rules, and advisory templates. Everything here is
// data, not behavior; tuning a revision of the pricing method means
// changing these values, never the composition algorithm.
//
// Tables are constructed once via Defaults (optionally retuned through
// adapters/tuning) and must never be mutated afterward. Lookup methods
// fall back to the neutral element (1.0 for multiplicative tables, 0 for
// additive weights) on a miss.
package refdata

import "freelance-pricing/core/types"

// Rules groups the hard constants of the pricing method.
type Rules struct {
	// MinimumCompleteOffer is the non-negotiable floor for complete offers
	MinimumCompleteOffer int `json:"minimum_complete_offer"`

	// GenericFloor is the floor applied to non-complete offers
	GenericFloor int `json:"generic_floor"`

	// MaxPrice is the absolute ceiling for every price figure
	MaxPrice int `json:"max_price"`

	// SocialChargeRate grosses net income targets up to billed revenue
	SocialChargeRate float64 `json:"social_charge_rate"`

	// MinimumHourlyRate values the time-based floor price
	MinimumHourlyRate float64 `json:"minimum_hourly_rate"`

	// StretchFactor derives the dream price from the running price
	StretchFactor float64 `json:"stretch_factor"`

	// ServiceBonusRate converts the service value score into euros
	ServiceBonusRate float64 `json:"service_bonus_rate"`

	// ComboBonus is the super-linear factor applied when expert
	// experience and strong proof co-occur
	ComboBonus float64 `json:"combo_bonus"`

	// ObjectiveFloorRate scales the objective price into a floor
	ObjectiveFloorRate float64 `json:"objective_floor_rate"`

	// PostureCeiling triggers the posture-mismatch alert for beginners
	PostureCeiling int `json:"posture_ceiling"`

	// OverloadClients and OverloadHours gate the overload-risk alert
	OverloadClients int     `json:"overload_clients"`
	OverloadHours   float64 `json:"overload_hours"`

	// AnnouncementMinChars is the minimum trimmed length for a custom
	// transformation description to drive the announcement phrase
	AnnouncementMinChars int `json:"announcement_min_chars"`

	// DefaultObjective replaces a missing or malformed income target
	DefaultObjective int `json:"default_objective"`

	// DefaultHours replaces an unknown hours-per-client bucket
	DefaultHours float64 `json:"default_hours"`
}

// Strategy describes one of the three reference pricing postures.
type Strategy struct {
	Label string   `json:"label"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
}

// AlertTemplates are the fixed advisory messages, emitted verbatim.
type AlertTemplates struct {
	UnderValuation     types.Alert
	ObjectiveConfusion types.Alert
	PostureMismatch    types.Alert
	Overload           types.Alert
	CompleteBelowFloor types.Alert
}

// Tables is the complete reference data set. Treat as read-only after
// construction; safe for unsynchronized concurrent reads.
type Tables struct {
	Rules Rules

	// BasePrices is the tier-indexed starting price
	BasePrices map[types.OfferTier]int

	// Experience is the primary multiplier (largest spread)
	Experience map[types.ExperienceTier]float64

	// Transformation is the secondary multiplier
	Transformation map[types.TransformationTier]float64

	// PastClients is keyed by the client-count bucket code
	PastClients map[string]float64

	// SocialProof is keyed by the derived proof tier
	SocialProof map[types.ProofTier]float64

	// Zone is keyed by the geographic zone code
	Zone map[string]float64

	// Audience is keyed by the target client segment code
	Audience map[string]float64

	// ServiceValue is the additive per-service weight
	ServiceValue map[string]float64

	// CoreServices defines the subset that qualifies a complete offer
	CoreServices []string

	// HoursMidpoint maps an hours bucket code to its representative value
	HoursMidpoint map[string]float64

	// Bands are the market reference ranges
	EntryBand    types.MarketBand
	MidBand      types.MarketBand
	PremiumBand  types.MarketBand
	SpecificBand types.MarketBand
	PartialBand  types.MarketBand

	// AllowedExceptions lists missions that may legitimately price below
	// the complete-offer minimum
	AllowedExceptions []string

	Alerts AlertTemplates

	// AnnouncementLeadIn wraps a custom transformation description
	AnnouncementLeadIn string

	// AnnouncementByTier are the canned phrases per transformation tier
	AnnouncementByTier map[types.TransformationTier]string

	// Strategies are the three reference pricing postures
	Strategies []Strategy

	// Philosophy quotes, only ever served by the quote source
	Philosophy []string

	// Display labels used in justification sentences
	ExperienceLabels     map[types.ExperienceTier]string
	OfferTierLabels      map[types.OfferTier]string
	TransformationLabels map[types.TransformationTier]string
}

// ExperienceMultiplier looks up an experience tier, neutral on miss.
func (t *Tables) ExperienceMultiplier(tier types.ExperienceTier) float64 {
	if m, ok := t.Experience[tier]; ok {
		return m
	}
	return 1.0
}

// TransformationMultiplier looks up a transformation tier, neutral on miss.
func (t *Tables) TransformationMultiplier(tier types.TransformationTier) float64 {
	if m, ok := t.Transformation[tier]; ok {
		return m
	}
	return 1.0
}

// PastClientsMultiplier looks up a client-count bucket, neutral on miss.
func (t *Tables) PastClientsMultiplier(bucket string) float64 {
	if m, ok := t.PastClients[bucket]; ok {
		return m
	}
	return 1.0
}

// SocialProofMultiplier looks up a proof tier, neutral on miss.
func (t *Tables) SocialProofMultiplier(tier types.ProofTier) float64 {
	if m, ok := t.SocialProof[tier]; ok {
		return m
	}
	return 1.0
}

// ZoneMultiplier looks up a geographic zone, neutral on miss.
func (t *Tables) ZoneMultiplier(zone string) float64 {
	if m, ok := t.Zone[zone]; ok {
		return m
	}
	return 1.0
}

// AudienceMultiplier looks up a client segment, neutral on miss.
func (t *Tables) AudienceMultiplier(segment string) float64 {
	if m, ok := t.Audience[segment]; ok {
		return m
	}
	return 1.0
}

// ServiceWeight looks up a service code; unknown services weigh 0.
func (t *Tables) ServiceWeight(service string) float64 {
	return t.ServiceValue[service]
}

// BasePrice returns the tier-indexed base, defaulting to the complete base.
func (t *Tables) BasePrice(tier types.OfferTier) int {
	if b, ok := t.BasePrices[tier]; ok {
		return b
	}
	return t.BasePrices[types.OfferComplete]
}

// Hours returns the representative hour count for a bucket code.
func (t *Tables) Hours(bucket string) float64 {
	if h, ok := t.HoursMidpoint[bucket]; ok {
		return h
	}
	return t.Rules.DefaultHours
}
