// Package metrics computes intermediate signals from raw answers. Every
// function is pure and total: unknown codes fall back to documented
// defaults instead of failing.
package metrics

import (
	"math"
	"strconv"

	"freelance-pricing/core/refdata"
	"freelance-pricing/core/types"
)

// AverageHours maps an hours-per-client bucket code to its representative
// midpoint. Unknown buckets fall back to the default hour count.
func AverageHours(t *refdata.Tables, bucket string) float64 {
	return t.Hours(bucket)
}

// ClassifyOfferTier derives the offer tier from the selected services by
// counting how many core services are present. This is the single source
// of truth for the offer tier; it is never read back from the answers.
func ClassifyOfferTier(t *refdata.Tables, services []string) types.OfferTier {
	if len(services) == 0 {
		return types.OfferSpecific
	}

	selected := make(map[string]bool, len(services))
	for _, s := range services {
		selected[s] = true
	}

	core := 0
	for _, s := range t.CoreServices {
		if selected[s] {
			core++
		}
	}

	switch {
	case core >= 4:
		return types.OfferComplete
	case core >= 2:
		return types.OfferPartial
	default:
		return types.OfferSpecific
	}
}

// SocialProofTier grades demonstrated results by counting result types.
// An empty selection or the "aucun" sentinel means no proof at all.
func SocialProofTier(results []string) types.ProofTier {
	if len(results) == 0 {
		return types.ProofNone
	}
	for _, r := range results {
		if r == "aucun" {
			return types.ProofNone
		}
	}

	switch n := len(results); {
	case n >= 5:
		return types.ProofStrong
	case n >= 3:
		return types.ProofMedium
	default:
		return types.ProofWeak
	}
}

// TargetAudienceMultiplier returns the best multiplier among the selected
// client segments: the single best-paying segment dominates. An empty
// selection is neutral.
func TargetAudienceMultiplier(t *refdata.Tables, audiences []string) float64 {
	if len(audiences) == 0 {
		return 1.0
	}
	best := 0.0
	for _, a := range audiences {
		if m := t.AudienceMultiplier(a); m > best {
			best = m
		}
	}
	return best
}

// ServiceValueSum totals the per-service weights of the selection.
// Unknown service codes contribute 0.
func ServiceValueSum(t *refdata.Tables, services []string) float64 {
	sum := 0.0
	for _, s := range services {
		sum += t.ServiceWeight(s)
	}
	return sum
}

// ClientCap resolves the max-clients answer code to a client count. The
// "6+" sentinel resolves to 6; a missing or malformed code resolves to 3.
// The result is always >= 1.
func ClientCap(code string) int {
	if code == "6+" {
		return 6
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 1 {
		return 3
	}
	return n
}

// ObjectivePrice back-calculates the per-client monthly price needed to
// reach a net income target: the target is grossed up by the social
// charge rate, then split across the client cap.
func ObjectivePrice(t *refdata.Tables, monthlyNetTarget int, maxClientsCode string) int {
	gross := float64(monthlyNetTarget) / (1 - t.Rules.SocialChargeRate)
	return int(math.Round(gross / float64(ClientCap(maxClientsCode))))
}

// FloorPrice values the time invested at the minimum hourly rate.
func FloorPrice(t *refdata.Tables, hoursBucket string) int {
	return int(math.Round(AverageHours(t, hoursBucket) * t.Rules.MinimumHourlyRate))
}
