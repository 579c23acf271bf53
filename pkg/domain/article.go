package domain

import "time"

// RawRecord is the ingestion-boundary schema for a single collected article.
// Title, URL and one of Content/Summary are required; everything else is
// optional. PublishedAt wins over the Published string when set.
type RawRecord struct {
	Title       string
	Content     string
	Summary     string
	URL         string
	Source      string
	Published   string    // date string in one of the known formats
	PublishedAt time.Time // pre-parsed timestamp, used as-is when non-zero
	BaseScore   float64   // external collector score, merged into importance
}

// Body returns the record text used as article body, preferring Content.
func (r RawRecord) Body() string {
	if r.Content != "" {
		return r.Content
	}
	return r.Summary
}

// Article is the canonical entity owned by the curation pipeline.
type Article struct {
	Title      string
	Body       string
	URL        string
	Source     string
	Published  time.Time
	Relevance  float64 // [0,1], set once by the scorer
	Importance float64 // unbounded, keyword weights + recency bonus
	Categories []string
	Keywords   []string
	Summary    string
}

// RejectReason classifies why a record was dropped at admission.
type RejectReason string

// admission rejection reasons, expected filtering rather than errors
const (
	RejectMissingField   RejectReason = "missing_field"
	RejectDuplicateURL   RejectReason = "duplicate_url"
	RejectDuplicateTitle RejectReason = "duplicate_title"
	RejectLowRelevance   RejectReason = "low_relevance"
)

// Degradation marks a non-fatal fallback applied while processing a record.
type Degradation string

// degradations, article still proceeds through the pipeline
const (
	DegradedDate    Degradation = "date_fallback"
	DegradedSummary Degradation = "summary_fallback"
)

// Outcome records what happened to a single raw record in a batch.
type Outcome struct {
	URL          string
	Accepted     bool
	Reject       RejectReason
	Degradations []Degradation
}

// Stats aggregates per-record outcomes for a processed batch.
type Stats struct {
	Processed int
	Accepted  int
	Rejected  map[RejectReason]int
	Degraded  map[Degradation]int
}

// CollectStats summarizes outcomes into Stats.
func CollectStats(outcomes []Outcome) Stats {
	s := Stats{
		Processed: len(outcomes),
		Rejected:  map[RejectReason]int{},
		Degraded:  map[Degradation]int{},
	}
	for _, o := range outcomes {
		if o.Accepted {
			s.Accepted++
		} else {
			s.Rejected[o.Reject]++
		}
		for _, d := range o.Degradations {
			s.Degraded[d]++
		}
	}
	return s
}
