package curator

import (
	"strings"
	"time"

	"github.com/startupwire/startupwire/pkg/lexicon"
)

// saturation counts normalizing raw occurrence sums: two startup keyword
// occurrences clear the 0.3 admission threshold, one does not
const (
	startupSaturation  = 3.0
	locationSaturation = 2.0
)

// relevance mixing weights: topical fit dominates, location confirms
const (
	startupWeight  = 0.7
	locationWeight = 0.3
)

// Scorer computes the two independent article scores: relevance (admission
// gate, [0,1]) and importance (ranking, unbounded).
type Scorer struct {
	lex *lexicon.Lexicon
	now func() time.Time
}

// NewScorer creates a scorer over the given lexicon.
func NewScorer(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex, now: time.Now}
}

// Relevance scores topical fit from lowercased title+body. Occurrences are
// counted with repeats, each normalized sum is capped at 1.
func (s *Scorer) Relevance(title, body string) float64 {
	text := strings.ToLower(title + " " + body)

	startupHits := 0
	for _, kw := range s.lex.StartupTerms {
		startupHits += strings.Count(text, kw)
	}
	locationHits := 0
	for _, kw := range s.lex.LocationTerms {
		locationHits += strings.Count(text, kw)
	}

	startupNorm := min(float64(startupHits)/startupSaturation, 1.0)
	locationNorm := min(float64(locationHits)/locationSaturation, 1.0)

	return startupWeight*startupNorm + locationWeight*locationNorm
}

// Importance sums the weight of every keyword present in the text, once per
// keyword regardless of repeats, over the five weighted tables, then adds
// the external base score and the recency bonus.
func (s *Scorer) Importance(title, body string, base float64, published time.Time) float64 {
	text := strings.ToLower(title + " " + body)

	score := base
	for _, table := range s.lex.Importance.Tables() {
		for kw, weight := range table {
			if strings.Contains(text, kw) {
				score += weight
			}
		}
	}
	return score + s.recencyBonus(published)
}

// recencyBonus rewards fresh articles. A zero publication time means the
// boost can't be computed and contributes nothing.
func (s *Scorer) recencyBonus(published time.Time) float64 {
	if published.IsZero() {
		return 0
	}
	age := s.now().Sub(published)
	switch {
	case age < 6*time.Hour:
		return 5
	case age < 12*time.Hour:
		return 3
	case age < 24*time.Hour:
		return 1
	}
	return 0
}
