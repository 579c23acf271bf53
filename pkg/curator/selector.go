package curator

import (
	"regexp"
	"sort"
	"strings"

	"github.com/startupwire/startupwire/pkg/domain"
)

const (
	// maximum articles per source accepted by the greedy pass
	perSourceCap = 3
	// maximum title word-set overlap with already accepted titles
	overlapCap = 2
)

var wordRe = regexp.MustCompile(`\S+`)

// SelectTop picks up to n articles, balancing importance against source and
// topic diversity. The greedy pass enforces the per-source and title-overlap
// caps; the backfill pass tops the list up from the best remaining articles
// without re-checking the caps, so a shortfall never occurs while enough
// candidates exist. The input slice is not modified.
func SelectTop(articles []domain.Article, n int) []domain.Article {
	if n <= 0 || len(articles) == 0 {
		return nil
	}

	// stable sort preserves original relative order among equal scores
	ordered := make([]domain.Article, len(articles))
	copy(ordered, articles)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Importance > ordered[j].Importance })

	selected := make([]domain.Article, 0, n)
	picked := make([]bool, len(ordered))
	sourceCount := map[string]int{}
	usedWords := map[string]struct{}{}

	// greedy pass: high scores first, subject to diversity caps
	for i, a := range ordered {
		if len(selected) >= n {
			break
		}
		words := titleWords(a.Title)
		if sourceCount[a.Source] >= perSourceCap || overlap(words, usedWords) > overlapCap {
			continue
		}
		selected = append(selected, a)
		picked[i] = true
		sourceCount[a.Source]++
		for w := range words {
			usedWords[w] = struct{}{}
		}
	}

	// backfill pass: fill remaining slots with best remaining articles
	for i, a := range ordered {
		if len(selected) >= n {
			break
		}
		if picked[i] {
			continue
		}
		selected = append(selected, a)
		picked[i] = true
	}

	return selected
}

func titleWords(title string) map[string]struct{} {
	words := map[string]struct{}{}
	for _, w := range wordRe.FindAllString(strings.ToLower(title), -1) {
		words[w] = struct{}{}
	}
	return words
}

func overlap(words map[string]struct{}, used map[string]struct{}) int {
	count := 0
	for w := range words {
		if _, ok := used[w]; ok {
			count++
		}
	}
	return count
}
