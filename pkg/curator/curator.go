package curator

import (
	"log"

	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/pkg/lexicon"
)

// pipeline defaults
const (
	DefaultThreshold   = 0.3
	DefaultTargetCount = 10
)

// Params configures a Curator. Zero values fall back to defaults; a nil
// Dedup gets a fresh per-run index.
type Params struct {
	Lexicon     *lexicon.Lexicon
	Threshold   float64 // minimum relevance for admission
	TargetCount int     // top-N list size
	Dedup       *DedupIndex
}

// Result is the outcome of curating one batch.
type Result struct {
	Selected []domain.Article // ranked top-N, rank 1 first
	Admitted []domain.Article // every article that passed admission
	Outcomes []domain.Outcome // per-record accounting
	Stats    domain.Stats
}

// Curator runs the full curation pipeline over batches of raw records.
// Single-threaded and synchronous; per-article failures degrade or skip,
// they never abort the batch.
type Curator struct {
	lex         *lexicon.Lexicon
	normalizer  *Normalizer
	scorer      *Scorer
	categorizer *Categorizer
	summarizer  *Summarizer
	threshold   float64
	target      int
}

// New creates a curation pipeline.
func New(p Params) *Curator {
	if p.Lexicon == nil {
		p.Lexicon = lexicon.Default()
	}
	if p.Threshold == 0 {
		p.Threshold = DefaultThreshold
	}
	if p.TargetCount == 0 {
		p.TargetCount = DefaultTargetCount
	}
	if p.Dedup == nil {
		p.Dedup = NewDedupIndex()
	}
	return &Curator{
		lex:         p.Lexicon,
		normalizer:  NewNormalizer(p.Dedup),
		scorer:      NewScorer(p.Lexicon),
		categorizer: NewCategorizer(p.Lexicon),
		summarizer:  NewSummarizer(p.Lexicon),
		threshold:   p.Threshold,
		target:      p.TargetCount,
	}
}

// Curate processes a batch of raw records into a ranked, diverse top-N
// selection. An empty input yields an empty result, never an error.
func (c *Curator) Curate(records []domain.RawRecord) Result {
	result := Result{Outcomes: make([]domain.Outcome, 0, len(records))}

	for _, rec := range records {
		article, outcome := c.normalizer.Normalize(rec)
		if article == nil {
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		// relevance is fixed before classification and never touched again
		article.Relevance = c.scorer.Relevance(article.Title, article.Body)
		if article.Relevance < c.threshold {
			outcome.Accepted = false
			outcome.Reject = domain.RejectLowRelevance
			result.Outcomes = append(result.Outcomes, outcome)
			continue
		}

		article.Importance = c.scorer.Importance(article.Title, article.Body, rec.BaseScore, article.Published)
		article.Categories = c.categorizer.Categories(article.Title, article.Body)
		article.Keywords = c.categorizer.Keywords(article.Title, article.Body)

		summary, degraded := c.summarizer.Summarize(article.Body)
		if degraded {
			outcome.Degradations = append(outcome.Degradations, domain.DegradedSummary)
		}
		article.Summary = summary

		result.Admitted = append(result.Admitted, *article)
		result.Outcomes = append(result.Outcomes, outcome)
	}

	result.Selected = SelectTop(result.Admitted, c.target)
	result.Stats = domain.CollectStats(result.Outcomes)

	log.Printf("[INFO] curated %d records: %d admitted, %d selected, %d rejected",
		result.Stats.Processed, result.Stats.Accepted, len(result.Selected),
		result.Stats.Processed-result.Stats.Accepted)
	return result
}
