// Package export persists curated batches as list-of-records JSON with
// ISO-8601 timestamps. Load reconstructs equivalent articles: scores,
// categories and keywords survive the round trip exactly.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/startupwire/startupwire/pkg/domain"
)

// record is the on-disk article shape
type record struct {
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	URL        string    `json:"url"`
	Source     string    `json:"source"`
	Published  time.Time `json:"published"` // RFC3339
	Relevance  float64   `json:"relevance_score"`
	Importance float64   `json:"importance_score"`
	Categories []string  `json:"categories"`
	Keywords   []string  `json:"keywords"`
	Summary    string    `json:"summary"`
}

// Save writes articles to path as a JSON array.
func Save(path string, articles []domain.Article) error {
	records := make([]record, 0, len(articles))
	for _, a := range articles {
		records = append(records, record{
			Title:      a.Title,
			Body:       a.Body,
			URL:        a.URL,
			Source:     a.Source,
			Published:  a.Published,
			Relevance:  a.Relevance,
			Importance: a.Importance,
			Categories: a.Categories,
			Keywords:   a.Keywords,
			Summary:    a.Summary,
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal articles: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads articles back from a file written by Save.
func Load(path string) ([]domain.Article, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from config or CLI
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	articles := make([]domain.Article, 0, len(records))
	for _, r := range records {
		articles = append(articles, domain.Article{
			Title:      r.Title,
			Body:       r.Body,
			URL:        r.URL,
			Source:     r.Source,
			Published:  r.Published,
			Relevance:  r.Relevance,
			Importance: r.Importance,
			Categories: r.Categories,
			Keywords:   r.Keywords,
			Summary:    r.Summary,
		})
	}
	return articles, nil
}

// SaveReport writes a batch report to path as JSON.
func SaveReport(path string, report domain.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
