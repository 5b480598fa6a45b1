// Package advisory turns a composed pricing result into pedagogical
// output: rule-violation alerts, justification sentences, and the
// price-announcement phrase. It is a pure function of the composed
// figures and the original answers; all wording comes verbatim from the
// reference data.
package advisory

import (
	"fmt"
	"strings"

	"freelance-pricing/core/composer"
	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

// Context gathers everything the generator reads. The rule checks never
// recompute figures; they only inspect.
type Context struct {
	Answers        types.AnswerSet
	OfferTier      types.OfferTier
	Experience     types.ExperienceTier
	Transformation types.TransformationTier
	Band           types.MarketBand
	Figures        composer.Figures

	// Floor is the time-based floor price, 0 when not computed
	Floor int

	// Objective is the income-goal-derived per-client price
	Objective int

	// AvgHours and ClientCap feed the overload check
	AvgHours  float64
	ClientCap int
}

// Generator produces advisory output from reference templates.
type Generator struct {
	tables *refdata.Tables
}

// NewGenerator creates a generator over the given reference tables.
func NewGenerator(tables *refdata.Tables) *Generator {
	return &Generator{tables: tables}
}

// Alerts evaluates the advisory rules in their fixed order. Rules are
// independent; several alerts may co-occur.
func (g *Generator) Alerts(ctx Context) []types.Alert {
	t := g.tables
	alerts := make([]types.Alert, 0, 4)

	// A complete offer whose composed price fell below the hard floor was
	// already forced up by the composer; here we surface the rule.
	if ctx.Figures.Overridden {
		alerts = append(alerts, t.Alerts.CompleteBelowFloor)
	}

	if ctx.Floor > 0 && ctx.Figures.Recommended < ctx.Floor {
		alerts = append(alerts, t.Alerts.UnderValuation)
	}

	if ctx.ClientCap >= t.Rules.OverloadClients && ctx.AvgHours >= t.Rules.OverloadHours {
		alerts = append(alerts, t.Alerts.Overload)
	}

	if ctx.Experience == types.ExperienceBeginner && ctx.Figures.Recommended > t.Rules.PostureCeiling {
		alerts = append(alerts, t.Alerts.PostureMismatch)
	}

	// Income goal unreachable at the recommended price: the freelancer is
	// likely confusing revenue objective with offer price.
	if ctx.Objective > ctx.Figures.Recommended {
		alerts = append(alerts, t.Alerts.ObjectiveConfusion)
	}

	return alerts
}

// Justifications builds the four fixed pricing arguments in order:
// experience framing, offer and transformation framing, market framing,
// and the value-over-hours philosophy. None is conditionally omitted.
func (g *Generator) Justifications(ctx Context) []string {
	t := g.tables

	expLabel := t.ExperienceLabels[ctx.Experience]
	if expLabel == "" {
		expLabel = "non précisé"
	}
	offerLabel := t.OfferTierLabels[ctx.OfferTier]
	if offerLabel == "" {
		offerLabel = "non précisée"
	}
	transfoLabel := t.TransformationLabels[ctx.Transformation]
	if transfoLabel == "" {
		transfoLabel = "non précisée"
	}

	return []string{
		fmt.Sprintf("Ton niveau d'expérience (%s) justifie ce positionnement.", expLabel),
		fmt.Sprintf("Ton offre est qualifiée comme %s avec une transformation %s.", offerLabel, transfoLabel),
		fmt.Sprintf("Le marché français pratique cette fourchette (%s: %d€ - %d€).", ctx.Band.Label, ctx.Band.Min, ctx.Band.Max),
		"Ce prix reflète la valeur de ta transformation, pas le nombre d'heures passées.",
	}
}

// Announcement picks the price-announcement phrase. A substantial custom
// transformation description wins; otherwise a canned phrase keyed by
// transformation tier, medium when the tier is unrecognized.
func (g *Generator) Announcement(transfo types.TransformationTier, customDescription string) string {
	t := g.tables

	desc := strings.TrimSpace(customDescription)
	if len([]rune(desc)) > t.Rules.AnnouncementMinChars {
		return fmt.Sprintf(t.AnnouncementLeadIn, desc)
	}

	if phrase, ok := t.AnnouncementByTier[transfo]; ok {
		return phrase
	}
	return t.AnnouncementByTier[types.TransformationMedium]
}
