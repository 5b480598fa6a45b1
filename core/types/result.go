// Package types - Pricing result types
package types

// OfferTier classifies the breadth of a service bundle.
type OfferTier string

const (
	// OfferComplete is a broad, multi-service monthly engagement
	OfferComplete OfferTier = "complete"

	// OfferPartial covers several core services
	OfferPartial OfferTier = "partial"

	// OfferSpecific is a narrow, single-mission engagement
	OfferSpecific OfferTier = "specific"
)

// String returns the string representation
func (t OfferTier) String() string { return string(t) }

// ExperienceTier is the freelancer's experience level. Values double as
// the stable option codes of the catalog's experience question.
type ExperienceTier string

const (
	ExperienceBeginner     ExperienceTier = "debutante"
	ExperienceIntermediate ExperienceTier = "intermediaire"
	ExperienceExpert       ExperienceTier = "experte"
)

// TransformationTier is the self-assessed depth of client impact.
type TransformationTier string

const (
	TransformationLow    TransformationTier = "faible"
	TransformationMedium TransformationTier = "moyenne"
	TransformationHigh   TransformationTier = "forte"
)

// ProofTier grades the strength of demonstrated past results.
type ProofTier string

const (
	ProofNone   ProofTier = "none"
	ProofWeak   ProofTier = "weak"
	ProofMedium ProofTier = "medium"
	ProofStrong ProofTier = "strong"
)

// AlertKind is the severity of an advisory alert.
type AlertKind string

const (
	AlertInfo    AlertKind = "info"
	AlertWarning AlertKind = "warning"
	AlertDanger  AlertKind = "danger"
	AlertError   AlertKind = "error"
)

// Alert is a pedagogical advisory attached to a result. Content comes
// verbatim from the reference data.
type Alert struct {
	// Kind is the alert severity
	Kind AlertKind `json:"kind"`

	// Title is the short headline
	Title string `json:"title"`

	// Message is the full advisory text
	Message string `json:"message"`
}

// MarketBand is a labeled min-max reference price range.
type MarketBand struct {
	// Label names the band
	Label string `json:"label"`

	// Min is the band floor in whole euros
	Min int `json:"min"`

	// Max is the band ceiling in whole euros
	Max int `json:"max"`
}

// PricingResult is the engine's sole output. It is created fresh on every
// invocation and never mutated after return.
//
// Invariant after composition:
//
//	0 <= Minimum <= Ideal <= Dream <= MaxPrice
//	Minimum <= Recommended <= Dream
type PricingResult struct {
	// Floor is the time-based floor price (hours x minimum hourly rate)
	Floor int `json:"floor_price"`

	// Objective is the per-client price implied by the net income goal
	Objective int `json:"objective_price"`

	// Minimum is the lowest defensible monthly price
	Minimum int `json:"minimum_price"`

	// Ideal is the composed monthly price
	Ideal int `json:"ideal_price"`

	// Dream is the aspirational monthly price
	Dream int `json:"dream_price"`

	// Recommended is the single headline figure
	Recommended int `json:"recommended_price"`

	// Band is the market band the offer falls in
	Band MarketBand `json:"market_band"`

	// OfferTier is the classification derived from selected services
	OfferTier OfferTier `json:"offer_tier"`

	// Alerts lists advisories in rule-check order
	Alerts []Alert `json:"alerts"`

	// Justifications are the four fixed pricing arguments
	Justifications []string `json:"justifications"`

	// Announcement is the suggested price-announcement phrase
	Announcement string `json:"announcement"`
}

// HasAlert reports whether an alert with the given title is present.
func (r *PricingResult) HasAlert(title string) bool {
	for _, a := range r.Alerts {
		if a.Title == title {
			return true
		}
	}
	return false
}
