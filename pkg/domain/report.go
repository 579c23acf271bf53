package domain

import "time"

// KeywordCount is a keyword with its frequency across a batch.
type KeywordCount struct {
	Keyword string `json:"keyword"`
	Count   int    `json:"count"`
}

// RankedArticle is a report entry for a top article by combined score.
type RankedArticle struct {
	Title  string  `json:"title"`
	Source string  `json:"source"`
	URL    string  `json:"url"`
	Score  float64 `json:"score"`
}

// Report aggregates statistics over a processed batch. Pure data, suitable
// for JSON persistence.
type Report struct {
	Total           int            `json:"total"`
	MeanRelevance   float64        `json:"mean_relevance"`
	Categories      map[string]int `json:"categories"`
	Sources         map[string]int `json:"sources"`
	TopKeywords     []KeywordCount `json:"top_keywords"`
	OldestPublished time.Time      `json:"oldest_published"`
	NewestPublished time.Time      `json:"newest_published"`
	TopArticles     []RankedArticle `json:"top_articles"`
	GeneratedAt     time.Time      `json:"generated_at"`
}
