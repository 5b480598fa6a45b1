// Package engine wires the pricing derivation together: derived metrics,
// market band resolution, price composition, and advisory generation
// behind a single entry point.
//
// The engine is pure and synchronous. Identical answer sets always yield
// identical results; reference tables are published at construction and
// never mutated, so one Engine is safe for unsynchronized concurrent use.
package engine

import (
	"strconv"
	"strings"

	"freelance-pricing/core/advisory"
	"freelance-pricing/core/composer"
	"freelance-pricing/core/market"
	"freelance-pricing/core/metrics"
	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

// Engine computes pricing results from answer sets.
type Engine struct {
	tables   *refdata.Tables
	resolver *market.Resolver
	composer *composer.Composer
	advisor  *advisory.Generator
}

// New creates an engine over the given reference tables. The tables must
// not be mutated after this call.
func New(tables *refdata.Tables) *Engine {
	return &Engine{
		tables:   tables,
		resolver: market.NewResolver(tables),
		composer: composer.New(tables),
		advisor:  advisory.NewGenerator(tables),
	}
}

// Tables exposes the reference data the engine was built on, for
// presentation layers that render bands or strategy context.
func (e *Engine) Tables() *refdata.Tables { return e.tables }

// ComputePricing derives the full pricing result from an answer set. It
// is total over well-formed input: missing or malformed answers fall back
// to documented defaults and never produce an error.
func (e *Engine) ComputePricing(answers types.AnswerSet) *types.PricingResult {
	t := e.tables

	// Raw answers with defaulting policy applied.
	experience := types.ExperienceTier(answers.Single(types.QExperienceLevel))
	if experience == "" {
		experience = types.ExperienceBeginner
	}
	transformation := types.TransformationTier(answers.Single(types.QTransformationLevel))
	if transformation == "" {
		transformation = types.TransformationMedium
	}
	pastClients := answers.Single(types.QPastClients)
	if pastClients == "" {
		pastClients = "aucun"
	}
	zone := answers.Single(types.QGeographicZone)
	if zone == "" {
		zone = "remote"
	}
	maxClients := answers.Single(types.QMaxClients)
	if maxClients == "" {
		maxClients = "3"
	}
	hoursBucket := answers.Single(types.QHoursPerClient)
	services := answers.Codes(types.QIncludedServices)
	results := answers.Codes(types.QMeasurableResults)
	audiences := answers.Codes(types.QTargetClients)

	netTarget := parseTarget(answers.NumericRaw(types.QMonthlyNetTarget), t.Rules.DefaultObjective)

	// Derived metrics. The offer tier derived here is the single source
	// of truth; it is never taken from the answers.
	offerTier := metrics.ClassifyOfferTier(t, services)
	proof := metrics.SocialProofTier(results)
	avgHours := metrics.AverageHours(t, hoursBucket)
	clientCap := metrics.ClientCap(maxClients)
	objective := metrics.ObjectivePrice(t, netTarget, maxClients)
	floor := metrics.FloorPrice(t, hoursBucket)

	band := e.resolver.Resolve(offerTier, experience, transformation)

	figures := e.composer.Compose(composer.Input{
		OfferTier:          offerTier,
		Experience:         experience,
		Transformation:     transformation,
		PastClientsBucket:  pastClients,
		Proof:              proof,
		Zone:               zone,
		AudienceMultiplier: metrics.TargetAudienceMultiplier(t, audiences),
		ServiceValue:       metrics.ServiceValueSum(t, services),
		Floor:              floor,
		Objective:          objective,
	})

	advCtx := advisory.Context{
		Answers:        answers,
		OfferTier:      offerTier,
		Experience:     experience,
		Transformation: transformation,
		Band:           band,
		Figures:        figures,
		Floor:          floor,
		Objective:      objective,
		AvgHours:       avgHours,
		ClientCap:      clientCap,
	}

	return &types.PricingResult{
		Floor:          floor,
		Objective:      objective,
		Minimum:        figures.Minimum,
		Ideal:          figures.Ideal,
		Dream:          figures.Dream,
		Recommended:    figures.Recommended,
		Band:           band,
		OfferTier:      offerTier,
		Alerts:         e.advisor.Alerts(advCtx),
		Justifications: e.advisor.Justifications(advCtx),
		Announcement:   e.advisor.Announcement(transformation, answers.TextRaw(types.QTransformationDesc)),
	}
}

// parseTarget parses the net income target, falling back to the default
// on anything that is not a positive integer.
func parseTarget(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
