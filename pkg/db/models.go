package db

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/startupwire/startupwire/pkg/domain"
)

// Batch represents a stored curation batch
type Batch struct {
	ID            int64     `db:"id"`
	CreatedAt     time.Time `db:"created_at"`
	Total         int       `db:"total"`
	MeanRelevance float64   `db:"mean_relevance"`
	Report        string    `db:"report"` // JSON-encoded domain.Report
}

// Article represents a stored curated article. Categories and keywords are
// JSON-encoded lists.
type Article struct {
	ID         int64     `db:"id"`
	BatchID    int64     `db:"batch_id"`
	Position   int       `db:"position"` // 1-based rank within the batch
	URL        string    `db:"url"`
	Source     string    `db:"source"`
	Title      string    `db:"title"`
	Body       string    `db:"body"`
	Summary    string    `db:"summary"`
	Relevance  float64   `db:"relevance"`
	Importance float64   `db:"importance"`
	Categories string    `db:"categories"`
	Keywords   string    `db:"keywords"`
	Published  time.Time `db:"published"`
}

// ToDomain converts a stored article back to the domain entity.
func (a *Article) ToDomain() (domain.Article, error) {
	res := domain.Article{
		Title:      a.Title,
		Body:       a.Body,
		URL:        a.URL,
		Source:     a.Source,
		Published:  a.Published,
		Relevance:  a.Relevance,
		Importance: a.Importance,
		Summary:    a.Summary,
	}
	if err := json.Unmarshal([]byte(a.Categories), &res.Categories); err != nil {
		return res, fmt.Errorf("decode categories for %s: %w", a.URL, err)
	}
	if err := json.Unmarshal([]byte(a.Keywords), &res.Keywords); err != nil {
		return res, fmt.Errorf("decode keywords for %s: %w", a.URL, err)
	}
	return res, nil
}

// articleFromDomain converts a domain article into its storage shape.
func articleFromDomain(batchID int64, position int, a domain.Article) (Article, error) {
	categories, err := json.Marshal(emptyAsList(a.Categories))
	if err != nil {
		return Article{}, fmt.Errorf("encode categories for %s: %w", a.URL, err)
	}
	keywords, err := json.Marshal(emptyAsList(a.Keywords))
	if err != nil {
		return Article{}, fmt.Errorf("encode keywords for %s: %w", a.URL, err)
	}
	return Article{
		BatchID:    batchID,
		Position:   position,
		URL:        a.URL,
		Source:     a.Source,
		Title:      a.Title,
		Body:       a.Body,
		Summary:    a.Summary,
		Relevance:  a.Relevance,
		Importance: a.Importance,
		Categories: string(categories),
		Keywords:   string(keywords),
		Published:  a.Published,
	}, nil
}

// emptyAsList keeps nil slices as empty JSON arrays rather than null
func emptyAsList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
