package curator

import (
	"strings"

	"github.com/startupwire/startupwire/pkg/lexicon"
)

// minimum repeat-counted matches for a category to be assigned
const categoryThreshold = 2

// FallbackCategory is assigned when no category clears the threshold, so
// classified articles always carry at least one tag.
const FallbackCategory = "general"

// Categorizer assigns category tags and extracts flat keyword lists.
type Categorizer struct {
	lex *lexicon.Lexicon
}

// NewCategorizer creates a categorizer over the given lexicon.
func NewCategorizer(lex *lexicon.Lexicon) *Categorizer {
	return &Categorizer{lex: lex}
}

// Categories returns the category tags for the text, in lexicon declaration
// order. Matches are counted with repeats; never returns an empty list.
func (c *Categorizer) Categories(title, body string) []string {
	text := strings.ToLower(title + " " + body)

	var tags []string
	for _, cat := range c.lex.Categories {
		count := 0
		for _, term := range cat.Terms {
			count += strings.Count(text, term)
		}
		if count >= categoryThreshold {
			tags = append(tags, cat.Name)
		}
	}
	if len(tags) == 0 {
		tags = []string{FallbackCategory}
	}
	return tags
}

// Keywords returns every startup and location term present in the text at
// least once. No repeat counting, no threshold; duplicates across the two
// tables are collapsed.
func (c *Categorizer) Keywords(title, body string) []string {
	text := strings.ToLower(title + " " + body)

	seen := map[string]struct{}{}
	var keywords []string
	add := func(terms []string) {
		for _, term := range terms {
			if !strings.Contains(text, term) {
				continue
			}
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			keywords = append(keywords, term)
		}
	}
	add(c.lex.StartupTerms)
	add(c.lex.LocationTerms)
	return keywords
}
