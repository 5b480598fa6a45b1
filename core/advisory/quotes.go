package advisory

import "math/rand"

// QuoteSource serves random philosophy quotes. It lives outside the
// engine: the price path is deterministic and must never read from this.
type QuoteSource struct {
	quotes []string
	rng    *rand.Rand
}

// NewQuoteSource creates a source over the reference quotes, seeded so
// callers that need reproducible output (tests) can pin the sequence.
func NewQuoteSource(quotes []string, seed int64) *QuoteSource {
	return &QuoteSource{
		quotes: append([]string(nil), quotes...),
		rng:    rand.New(rand.NewSource(seed)),
	}
}

// Quote returns one quote at random, or "" when none are configured.
func (s *QuoteSource) Quote() string {
	if len(s.quotes) == 0 {
		return ""
	}
	return s.quotes[s.rng.Intn(len(s.quotes))]
}
