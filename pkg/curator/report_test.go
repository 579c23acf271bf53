package curator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/domain"
)

func TestBuildReport(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		{
			Title: "first", Source: "ET", Relevance: 0.8,
			Categories: []string{"fintech"},
			Keywords:   []string{"funding", "startup"},
			Published:  now.Add(-2 * time.Hour),
		},
		{
			Title: "second", Source: "Inc42", Relevance: 0.4,
			Categories: []string{"fintech", "enterprise"},
			Keywords:   []string{"funding", "saas"},
			Published:  now.Add(-40 * 24 * time.Hour),
		},
		{
			Title: "third", Source: "ET", Relevance: 0.6,
			Categories: []string{"general"},
			Keywords:   []string{"startup"},
			Published:  now.Add(-26 * time.Hour),
		},
	}

	report := buildReportAt(articles, 10, now)

	assert.Equal(t, 3, report.Total)
	assert.InDelta(t, 0.6, report.MeanRelevance, 0.0001)
	assert.Equal(t, map[string]int{"fintech": 2, "enterprise": 1, "general": 1}, report.Categories)
	assert.Equal(t, map[string]int{"ET": 2, "Inc42": 1}, report.Sources)

	assert.True(t, report.OldestPublished.Equal(now.Add(-40*24*time.Hour)))
	assert.True(t, report.NewestPublished.Equal(now.Add(-2*time.Hour)))

	// keyword histogram: "funding" and "startup" tie at 2, first-seen wins
	require.GreaterOrEqual(t, len(report.TopKeywords), 3)
	assert.Equal(t, domain.KeywordCount{Keyword: "funding", Count: 2}, report.TopKeywords[0])
	assert.Equal(t, domain.KeywordCount{Keyword: "startup", Count: 2}, report.TopKeywords[1])
	assert.Equal(t, domain.KeywordCount{Keyword: "saas", Count: 1}, report.TopKeywords[2])

	// combined rank: fresh high-relevance article first, stale one decays to
	// pure relevance
	require.Len(t, report.TopArticles, 3)
	assert.Equal(t, "first", report.TopArticles[0].Title)
	expectedFirst := 0.7*0.8 + 0.3*(1-2.0/24/30)
	assert.InDelta(t, expectedFirst, report.TopArticles[0].Score, 0.0001)

	var second domain.RankedArticle
	for _, ra := range report.TopArticles {
		if ra.Title == "second" {
			second = ra
		}
	}
	assert.InDelta(t, 0.7*0.4, second.Score, 0.0001, "recency decay floors at zero past 30 days")
}

func TestBuildReport_TopKLimit(t *testing.T) {
	now := time.Now()
	articles := []domain.Article{{
		Source:     "A",
		Categories: []string{"general"},
		Keywords:   []string{"k1", "k2", "k3", "k4"},
		Published:  now,
	}}
	report := buildReportAt(articles, 2, now)
	assert.Len(t, report.TopKeywords, 2)
}

func TestBuildReport_TopArticlesCapped(t *testing.T) {
	now := time.Now()
	articles := make([]domain.Article, 8)
	for i := range articles {
		articles[i] = domain.Article{Source: "A", Categories: []string{"general"}, Published: now}
	}
	report := buildReportAt(articles, 10, now)
	assert.Len(t, report.TopArticles, 5)
}

func TestBuildReport_Empty(t *testing.T) {
	report := BuildReport(nil, 10)
	assert.Equal(t, 0, report.Total)
	assert.InDelta(t, 0.0, report.MeanRelevance, 0.0001)
	assert.Empty(t, report.TopKeywords)
	assert.Empty(t, report.TopArticles)
}
