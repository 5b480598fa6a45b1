// Package tuning loads HCL override files that retune the reference
// data: rule constants, multiplier table entries, base prices, and market
// bands. The composition algorithm itself is never configurable; every
// knob the pricing method's revisions have ever turned lives here.
//
// Example:
//
//	rules {
//	  minimum_complete_offer = 800
//	  stretch_factor         = 1.2
//	}
//
//	multiplier "experience" {
//	  values = { experte = 1.35 }
//	}
//
//	band "premium" {
//	  min = 1300
//	  max = 1600
//	}
package tuning

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
	"freelance-pricing/internal/errors"
)

type tuningFile struct {
	Rules       *rulesBlock       `hcl:"rules,block"`
	BasePrices  *basePricesBlock  `hcl:"base_prices,block"`
	Multipliers []multiplierBlock `hcl:"multiplier,block"`
	Bands       []bandBlock       `hcl:"band,block"`
}

type rulesBlock struct {
	MinimumCompleteOffer *int     `hcl:"minimum_complete_offer,optional"`
	GenericFloor         *int     `hcl:"generic_floor,optional"`
	MaxPrice             *int     `hcl:"max_price,optional"`
	SocialChargeRate     *float64 `hcl:"social_charge_rate,optional"`
	MinimumHourlyRate    *float64 `hcl:"minimum_hourly_rate,optional"`
	StretchFactor        *float64 `hcl:"stretch_factor,optional"`
	ServiceBonusRate     *float64 `hcl:"service_bonus_rate,optional"`
	ComboBonus           *float64 `hcl:"combo_bonus,optional"`
	ObjectiveFloorRate   *float64 `hcl:"objective_floor_rate,optional"`
	PostureCeiling       *int     `hcl:"posture_ceiling,optional"`
	OverloadClients      *int     `hcl:"overload_clients,optional"`
	OverloadHours        *float64 `hcl:"overload_hours,optional"`
}

type basePricesBlock struct {
	Complete *int `hcl:"complete,optional"`
	Partial  *int `hcl:"partial,optional"`
	Specific *int `hcl:"specific,optional"`
}

type multiplierBlock struct {
	Name   string             `hcl:"name,label"`
	Values map[string]float64 `hcl:"values"`
}

type bandBlock struct {
	Name  string  `hcl:"name,label"`
	Min   *int    `hcl:"min,optional"`
	Max   *int    `hcl:"max,optional"`
	Label *string `hcl:"label,optional"`
}

// Load parses path and returns a retuned copy of base. The base tables
// are never touched, so the defaults stay safe to share.
func Load(base *refdata.Tables, path string) (*refdata.Tables, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Tuning("parsing tuning file", diags)
	}
	return apply(base, file.Body)
}

func apply(base *refdata.Tables, body hcl.Body) (*refdata.Tables, error) {
	var tf tuningFile
	if diags := gohcl.DecodeBody(body, nil, &tf); diags.HasErrors() {
		return nil, errors.Tuning("decoding tuning file", diags)
	}

	t := base.Clone()

	if tf.Rules != nil {
		applyRules(&t.Rules, tf.Rules)
	}
	if tf.BasePrices != nil {
		setIfPresent(t.BasePrices, types.OfferComplete, tf.BasePrices.Complete)
		setIfPresent(t.BasePrices, types.OfferPartial, tf.BasePrices.Partial)
		setIfPresent(t.BasePrices, types.OfferSpecific, tf.BasePrices.Specific)
	}

	for _, m := range tf.Multipliers {
		if err := applyMultiplier(t, m); err != nil {
			return nil, err
		}
	}
	for _, b := range tf.Bands {
		if err := applyBand(t, b); err != nil {
			return nil, err
		}
	}

	if err := validate(t); err != nil {
		return nil, err
	}
	return t, nil
}

func applyRules(r *refdata.Rules, b *rulesBlock) {
	setScalar(&r.MinimumCompleteOffer, b.MinimumCompleteOffer)
	setScalar(&r.GenericFloor, b.GenericFloor)
	setScalar(&r.MaxPrice, b.MaxPrice)
	setScalar(&r.SocialChargeRate, b.SocialChargeRate)
	setScalar(&r.MinimumHourlyRate, b.MinimumHourlyRate)
	setScalar(&r.StretchFactor, b.StretchFactor)
	setScalar(&r.ServiceBonusRate, b.ServiceBonusRate)
	setScalar(&r.ComboBonus, b.ComboBonus)
	setScalar(&r.ObjectiveFloorRate, b.ObjectiveFloorRate)
	setScalar(&r.PostureCeiling, b.PostureCeiling)
	setScalar(&r.OverloadClients, b.OverloadClients)
	setScalar(&r.OverloadHours, b.OverloadHours)
}

func applyMultiplier(t *refdata.Tables, m multiplierBlock) error {
	switch m.Name {
	case "experience":
		for k, v := range m.Values {
			t.Experience[types.ExperienceTier(k)] = v
		}
	case "transformation":
		for k, v := range m.Values {
			t.Transformation[types.TransformationTier(k)] = v
		}
	case "past_clients":
		mergeMap(t.PastClients, m.Values)
	case "social_proof":
		for k, v := range m.Values {
			t.SocialProof[types.ProofTier(k)] = v
		}
	case "zone":
		mergeMap(t.Zone, m.Values)
	case "audience":
		mergeMap(t.Audience, m.Values)
	case "service_value":
		mergeMap(t.ServiceValue, m.Values)
	case "hours":
		mergeMap(t.HoursMidpoint, m.Values)
	default:
		return errors.Newf(errors.TypeTuning, "unknown multiplier table %q", m.Name)
	}
	return nil
}

func applyBand(t *refdata.Tables, b bandBlock) error {
	var band *types.MarketBand
	switch b.Name {
	case "entry":
		band = &t.EntryBand
	case "mid":
		band = &t.MidBand
	case "premium":
		band = &t.PremiumBand
	case "specific":
		band = &t.SpecificBand
	case "partial":
		band = &t.PartialBand
	default:
		return errors.Newf(errors.TypeTuning, "unknown market band %q", b.Name)
	}
	setScalar(&band.Min, b.Min)
	setScalar(&band.Max, b.Max)
	if b.Label != nil {
		band.Label = *b.Label
	}
	return nil
}

// validate enforces the reference data invariants: multiplicative tables
// strictly positive, additive weights non-negative, bands ordered.
func validate(t *refdata.Tables) error {
	for name, m := range map[string]map[string]float64{
		"past_clients": t.PastClients,
		"zone":         t.Zone,
		"audience":     t.Audience,
	} {
		for k, v := range m {
			if v <= 0 {
				return errors.Newf(errors.TypeTuning, "multiplier %s.%s must be strictly positive, got %v", name, k, v)
			}
		}
	}
	for k, v := range t.Experience {
		if v <= 0 {
			return errors.Newf(errors.TypeTuning, "multiplier experience.%s must be strictly positive, got %v", k, v)
		}
	}
	for k, v := range t.Transformation {
		if v <= 0 {
			return errors.Newf(errors.TypeTuning, "multiplier transformation.%s must be strictly positive, got %v", k, v)
		}
	}
	for k, v := range t.SocialProof {
		if v <= 0 {
			return errors.Newf(errors.TypeTuning, "multiplier social_proof.%s must be strictly positive, got %v", k, v)
		}
	}
	for k, v := range t.ServiceValue {
		if v < 0 {
			return errors.Newf(errors.TypeTuning, "service weight %s must be non-negative, got %v", k, v)
		}
	}
	if t.Rules.SocialChargeRate < 0 || t.Rules.SocialChargeRate >= 1 {
		return errors.Newf(errors.TypeTuning, "social_charge_rate must be in [0, 1), got %v", t.Rules.SocialChargeRate)
	}
	for _, band := range []types.MarketBand{t.EntryBand, t.MidBand, t.PremiumBand, t.SpecificBand, t.PartialBand} {
		if band.Min < 0 || band.Min > band.Max {
			return errors.Newf(errors.TypeTuning, "band %q must satisfy 0 <= min <= max", band.Label)
		}
	}
	return nil
}

func setScalar[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setIfPresent[K comparable](m map[K]int, key K, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func mergeMap(dst map[string]float64, src map[string]float64) {
	for k, v := range src {
		dst[k] = v
	}
}
