package curator

import (
	"sort"
	"strings"

	"github.com/startupwire/startupwire/pkg/lexicon"
)

const (
	summarySentences  = 3
	summaryFallbackLen = 200
)

// Summarizer produces short extractive summaries by sentence scoring.
type Summarizer struct {
	lex *lexicon.Lexicon
}

// NewSummarizer creates a summarizer over the given lexicon.
func NewSummarizer(lex *lexicon.Lexicon) *Summarizer {
	return &Summarizer{lex: lex}
}

// Summarize returns an extractive summary of body and whether the truncation
// fallback was used. Bodies of three sentences or fewer are returned whole.
func (s *Summarizer) Summarize(body string) (summary string, degraded bool) {
	body = strings.TrimSpace(body)
	sentences := splitSentences(body)
	if len(sentences) <= summarySentences {
		return body, false
	}

	type scored struct {
		index int
		text  string
		score int
	}
	candidates := make([]scored, 0, len(sentences))
	for i, sent := range sentences {
		lower := strings.ToLower(sent)
		score := 0
		for _, kw := range s.lex.StartupTerms {
			if strings.Contains(lower, kw) {
				score += 2
			}
		}
		for _, kw := range s.lex.LocationTerms {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		// lead sentences get a positional bonus
		if i < summarySentences {
			score += summarySentences - i
		}
		candidates = append(candidates, scored{index: i, text: sent, score: score})
	}

	// stable sort keeps document order among equal scores
	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })
	selected := candidates[:summarySentences]

	// restore document order before joining
	sort.Slice(selected, func(i, j int) bool { return selected[i].index < selected[j].index })
	parts := make([]string, 0, len(selected))
	for _, c := range selected {
		parts = append(parts, c.text)
	}
	if summary = strings.Join(parts, " "); summary == "" {
		return truncate(body, summaryFallbackLen), true
	}
	return summary, false
}

// splitSentences breaks text on sentence boundaries, dropping empties.
func splitSentences(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

func truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
