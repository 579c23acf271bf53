package curator

import (
	"sort"
	"time"

	"github.com/startupwire/startupwire/pkg/domain"
)

const reportTopArticles = 5

// combined rank score mixing for report top articles
const (
	rankRelevanceWeight = 0.7
	rankRecencyWeight   = 0.3
	recencyDecayDays    = 30.0
)

// BuildReport aggregates statistics over a processed batch: histograms,
// trending keywords and the top articles by combined relevance/recency
// score. topKeywords limits the keyword histogram size.
func BuildReport(articles []domain.Article, topKeywords int) domain.Report {
	return buildReportAt(articles, topKeywords, time.Now())
}

func buildReportAt(articles []domain.Article, topKeywords int, now time.Time) domain.Report {
	report := domain.Report{
		Total:       len(articles),
		Categories:  map[string]int{},
		Sources:     map[string]int{},
		GeneratedAt: now,
	}
	if len(articles) == 0 {
		return report
	}

	keywordCounts := map[string]int{}
	var keywordOrder []string // first-seen order breaks frequency ties
	relevanceSum := 0.0

	for _, a := range articles {
		relevanceSum += a.Relevance
		for _, c := range a.Categories {
			report.Categories[c]++
		}
		report.Sources[a.Source]++
		for _, kw := range a.Keywords {
			if _, ok := keywordCounts[kw]; !ok {
				keywordOrder = append(keywordOrder, kw)
			}
			keywordCounts[kw]++
		}
		if report.OldestPublished.IsZero() || a.Published.Before(report.OldestPublished) {
			report.OldestPublished = a.Published
		}
		if a.Published.After(report.NewestPublished) {
			report.NewestPublished = a.Published
		}
	}
	report.MeanRelevance = relevanceSum / float64(len(articles))

	counts := make([]domain.KeywordCount, 0, len(keywordOrder))
	for _, kw := range keywordOrder {
		counts = append(counts, domain.KeywordCount{Keyword: kw, Count: keywordCounts[kw]})
	}
	sort.SliceStable(counts, func(i, j int) bool { return counts[i].Count > counts[j].Count })
	if topKeywords > 0 && len(counts) > topKeywords {
		counts = counts[:topKeywords]
	}
	report.TopKeywords = counts

	report.TopArticles = topByCombinedScore(articles, now)
	return report
}

// topByCombinedScore ranks articles by relevance blended with a linear
// 30-day recency decay and returns the best five.
func topByCombinedScore(articles []domain.Article, now time.Time) []domain.RankedArticle {
	ranked := make([]domain.RankedArticle, 0, len(articles))
	for _, a := range articles {
		daysOld := now.Sub(a.Published).Hours() / 24
		decay := 1 - daysOld/recencyDecayDays
		if decay < 0 {
			decay = 0
		}
		ranked = append(ranked, domain.RankedArticle{
			Title:  a.Title,
			Source: a.Source,
			URL:    a.URL,
			Score:  rankRelevanceWeight*a.Relevance + rankRecencyWeight*decay,
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Score > ranked[j].Score })
	if len(ranked) > reportTopArticles {
		ranked = ranked[:reportTopArticles]
	}
	return ranked
}
