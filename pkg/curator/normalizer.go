// Package curator implements the content curation pipeline: normalizing raw
// records into articles, scoring relevance and importance, classifying into
// categories, extracting summaries and selecting a diverse top-N list.
package curator

import (
	"regexp"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/startupwire/startupwire/pkg/domain"
)

// date layouts tried in fixed priority order, first successful parse wins
var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

var (
	nonWordRe    = regexp.MustCompile(`[^\w\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// DedupIndex tracks URLs and normalized titles seen within (or across) runs.
// It is an explicit object handed to the normalizer, never package state, so
// the caller controls its lifecycle: fresh per run, or seeded from storage
// for idempotent incremental ingestion.
type DedupIndex struct {
	urls   map[string]struct{}
	titles map[string]struct{}
}

// NewDedupIndex creates an empty index.
func NewDedupIndex() *DedupIndex {
	return &DedupIndex{urls: map[string]struct{}{}, titles: map[string]struct{}{}}
}

// SeedURLs marks URLs as already seen, typically loaded from storage.
func (d *DedupIndex) SeedURLs(urls []string) {
	for _, u := range urls {
		d.urls[u] = struct{}{}
	}
}

// SeenURL reports whether url was seen before and marks it as seen.
func (d *DedupIndex) SeenURL(url string) bool {
	if _, ok := d.urls[url]; ok {
		return true
	}
	d.urls[url] = struct{}{}
	return false
}

// SeenTitle reports whether the normalized form of title was seen before and
// marks it. Titles whose normalized form is too short to be a meaningful
// dedup key are never considered duplicates.
func (d *DedupIndex) SeenTitle(title string) bool {
	norm := normalizeTitle(title)
	if len(norm) <= 10 {
		return false
	}
	if _, ok := d.titles[norm]; ok {
		return true
	}
	d.titles[norm] = struct{}{}
	return false
}

// URLs returns all URLs recorded in the index.
func (d *DedupIndex) URLs() []string {
	res := make([]string, 0, len(d.urls))
	for u := range d.urls {
		res = append(res, u)
	}
	return res
}

func normalizeTitle(title string) string {
	norm := nonWordRe.ReplaceAllString(strings.ToLower(title), "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(norm, " "))
}

// Normalizer turns raw records into canonical articles, rejecting invalid
// or duplicate records.
type Normalizer struct {
	dedup *DedupIndex
	now   func() time.Time
}

// NewNormalizer creates a normalizer using the given dedup index.
func NewNormalizer(dedup *DedupIndex) *Normalizer {
	if dedup == nil {
		dedup = NewDedupIndex()
	}
	return &Normalizer{dedup: dedup, now: time.Now}
}

// Normalize validates and converts a raw record. On rejection the returned
// article is nil and the outcome carries a typed reason; a date parse
// failure is a degradation, not a rejection.
func (n *Normalizer) Normalize(rec domain.RawRecord) (*domain.Article, domain.Outcome) {
	outcome := domain.Outcome{URL: rec.URL}

	body := rec.Body()
	if strings.TrimSpace(rec.Title) == "" || strings.TrimSpace(body) == "" || strings.TrimSpace(rec.URL) == "" {
		outcome.Reject = domain.RejectMissingField
		return nil, outcome
	}

	if n.dedup.SeenURL(rec.URL) {
		outcome.Reject = domain.RejectDuplicateURL
		return nil, outcome
	}
	if n.dedup.SeenTitle(rec.Title) {
		outcome.Reject = domain.RejectDuplicateTitle
		return nil, outcome
	}

	published, parsed := n.published(rec)
	if !parsed {
		outcome.Degradations = append(outcome.Degradations, domain.DegradedDate)
	}

	outcome.Accepted = true
	return &domain.Article{
		Title:     strings.TrimSpace(rec.Title),
		Body:      strings.TrimSpace(body),
		URL:       rec.URL,
		Source:    rec.Source,
		Published: published,
	}, outcome
}

// published resolves the publication time: pre-parsed timestamp wins, then
// the known layouts in priority order, then a lenient parse, then "now".
func (n *Normalizer) published(rec domain.RawRecord) (ts time.Time, parsed bool) {
	if !rec.PublishedAt.IsZero() {
		return rec.PublishedAt, true
	}
	s := strings.TrimSpace(rec.Published)
	if s == "" {
		return n.now(), false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	if t, err := dateparse.ParseAny(s); err == nil {
		return t, true
	}
	return n.now(), false
}
