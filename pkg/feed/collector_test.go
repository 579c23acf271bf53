package feed

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/pkg/feed/mocks"
)

func collectConfig(sources ...config.Source) config.CollectConfig {
	return config.CollectConfig{
		Sources:        sources,
		PerSourceLimit: 30,
		Window:         24 * time.Hour,
		Timeout:        5 * time.Second,
		MaxWorkers:     3,
		UserAgent:      "Startupwire/1.0",
	}
}

func TestCollector_Collect(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	fetcher := &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
			switch sourceName {
			case "alpha":
				return []domain.RawRecord{
					{Title: "older story", URL: "http://a.example.com/1", Source: sourceName, PublishedAt: now.Add(-3 * time.Hour)},
					{Title: "newest story", URL: "http://a.example.com/2", Source: sourceName, PublishedAt: now.Add(-time.Hour)},
				}, nil
			case "beta":
				return []domain.RawRecord{
					{Title: "middle story", URL: "http://b.example.com/1", Source: sourceName, PublishedAt: now.Add(-2 * time.Hour)},
				}, nil
			}
			return nil, fmt.Errorf("unexpected source %q", sourceName)
		},
	}

	collector := NewCollector(fetcher, collectConfig(
		config.Source{Name: "alpha", URL: "http://a.example.com/feed"},
		config.Source{Name: "beta", URL: "http://b.example.com/feed"},
	))
	collector.now = func() time.Time { return now }

	records, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)

	// sorted newest first
	assert.Equal(t, "newest story", records[0].Title)
	assert.Equal(t, "middle story", records[1].Title)
	assert.Equal(t, "older story", records[2].Title)

	assert.Len(t, fetcher.FetchCalls(), 2)
}

func TestCollector_Collect_PerSourceLimit(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	fetcher := &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
			recs := make([]domain.RawRecord, 10)
			for i := range recs {
				recs[i] = domain.RawRecord{
					Title:       fmt.Sprintf("story %d", i),
					URL:         fmt.Sprintf("http://example.com/%d", i),
					Source:      sourceName,
					PublishedAt: now.Add(-time.Duration(i) * time.Minute),
				}
			}
			return recs, nil
		},
	}

	cfg := collectConfig(config.Source{Name: "alpha", URL: "http://a.example.com/feed"})
	cfg.PerSourceLimit = 3

	collector := NewCollector(fetcher, cfg)
	collector.now = func() time.Time { return now }

	records, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestCollector_Collect_WindowFilter(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	fetcher := &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
			return []domain.RawRecord{
				{Title: "fresh", URL: "http://example.com/1", PublishedAt: now.Add(-time.Hour)},
				{Title: "stale", URL: "http://example.com/2", PublishedAt: now.Add(-48 * time.Hour)},
				{Title: "undated", URL: "http://example.com/3", Published: "15 Jan 2024"},
			}, nil
		},
	}

	collector := NewCollector(fetcher, collectConfig(config.Source{Name: "alpha", URL: "http://a.example.com/feed"}))
	collector.now = func() time.Time { return now }

	records, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	// undated records survive the window, the normalizer decides their fate
	assert.Equal(t, "fresh", records[0].Title)
	assert.Equal(t, "undated", records[1].Title)
}

func TestCollector_Collect_PartialFailure(t *testing.T) {
	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	fetcher := &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
			if sourceName == "broken" {
				return nil, fmt.Errorf("connection refused")
			}
			return []domain.RawRecord{
				{Title: "survivor", URL: "http://example.com/1", PublishedAt: now.Add(-time.Hour)},
			}, nil
		},
	}

	cfg := collectConfig(
		config.Source{Name: "alpha", URL: "http://a.example.com/feed"},
		config.Source{Name: "broken", URL: "http://b.example.com/feed"},
	)

	collector := NewCollector(fetcher, cfg)
	collector.now = func() time.Time { return now }

	records, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "survivor", records[0].Title)

	// the failed source is retried before giving up
	calls := 0
	for _, call := range fetcher.FetchCalls() {
		if call.SourceName == "broken" {
			calls++
		}
	}
	assert.Equal(t, 3, calls)
}

func TestCollector_Collect_AllSourcesFailed(t *testing.T) {
	fetcher := &mocks.FeedFetcherMock{
		FetchFunc: func(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}

	collector := NewCollector(fetcher, collectConfig(
		config.Source{Name: "alpha", URL: "http://a.example.com/feed"},
		config.Source{Name: "beta", URL: "http://b.example.com/feed"},
	))

	_, err := collector.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 2 sources failed")
}

func TestCollector_Collect_NoSources(t *testing.T) {
	collector := NewCollector(&mocks.FeedFetcherMock{}, config.CollectConfig{})
	_, err := collector.Collect(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no sources configured")
}
