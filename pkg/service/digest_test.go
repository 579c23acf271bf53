package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/pkg/export"
	"github.com/startupwire/startupwire/pkg/service/mocks"
)

func relevantRecord(i int) domain.RawRecord {
	return domain.RawRecord{
		Title:       fmt.Sprintf("Bengaluru startup raises funding %d", i),
		Content:     "The startup raised fresh funding led by existing investors to expand across India.",
		URL:         fmt.Sprintf("http://example.com/story%d", i),
		Source:      "StartupDesk",
		PublishedAt: time.Now().Add(-time.Hour),
	}
}

func irrelevantRecord() domain.RawRecord {
	return domain.RawRecord{
		Title:       "Weather update for the weekend",
		Content:     "Rain is expected across the coast with mild temperatures.",
		URL:         "http://example.com/weather",
		Source:      "StartupDesk",
		PublishedAt: time.Now().Add(-time.Hour),
	}
}

func testStore() *mocks.StoreMock {
	return &mocks.StoreMock{
		SeenURLsFunc:    func(ctx context.Context) ([]string, error) { return nil, nil },
		AddSeenURLsFunc: func(ctx context.Context, urls []string) error { return nil },
		SaveBatchFunc: func(ctx context.Context, articles []domain.Article, report domain.Report) (int64, error) {
			return 1, nil
		},
		DeleteOldSeenURLsFunc: func(ctx context.Context, days int) (int64, error) { return 0, nil },
	}
}

func TestDigest_Run(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1), relevantRecord(2), irrelevantRecord()}, nil
		},
	}
	store := testStore()
	renderer := &mocks.RendererMock{
		RenderCarouselFunc: func(articles []domain.Article) ([]string, error) {
			return []string{"slides/slide_00_title.png"}, nil
		},
	}
	mailer := &mocks.MailerMock{
		SendDigestFunc: func(ctx context.Context, articles []domain.Article, slides []string) error { return nil },
	}

	exportFile := filepath.Join(t.TempDir(), "digest.json")
	d := NewDigest(Params{
		Collector:  collector,
		Store:      store,
		Renderer:   renderer,
		Mailer:     mailer,
		Curation:   config.CurationConfig{Threshold: 0.3, TargetCount: 10, TopKeywords: 5},
		ExportFile: exportFile,
	})

	report, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total, "weather story rejected by relevance")
	assert.Greater(t, report.MeanRelevance, 0.0)

	require.Len(t, store.SaveBatchCalls(), 1)
	assert.Len(t, store.SaveBatchCalls()[0].Articles, 2)

	require.Len(t, store.AddSeenURLsCalls(), 1)
	assert.Contains(t, store.AddSeenURLsCalls()[0].Urls, "http://example.com/story1")

	require.Len(t, mailer.SendDigestCalls(), 1)
	assert.Equal(t, []string{"slides/slide_00_title.png"}, mailer.SendDigestCalls()[0].Slides)
	assert.Empty(t, mailer.SendErrorNotificationCalls())

	exported, err := export.Load(exportFile)
	require.NoError(t, err)
	assert.Len(t, exported, 2)
}

func TestDigest_Run_CollectError(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return nil, fmt.Errorf("all 3 sources failed")
		},
	}
	store := testStore()
	mailer := &mocks.MailerMock{
		SendErrorNotificationFunc: func(ctx context.Context, runErr error) error { return nil },
	}

	d := NewDigest(Params{Collector: collector, Store: store, Mailer: mailer})
	_, err := d.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "collect")

	require.Len(t, mailer.SendErrorNotificationCalls(), 1)
	assert.Contains(t, mailer.SendErrorNotificationCalls()[0].RunErr.Error(), "sources failed")
	assert.Empty(t, store.SaveBatchCalls())
}

func TestDigest_Run_SaveError(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1)}, nil
		},
	}
	store := testStore()
	store.SaveBatchFunc = func(ctx context.Context, articles []domain.Article, report domain.Report) (int64, error) {
		return 0, fmt.Errorf("disk full")
	}
	mailer := &mocks.MailerMock{
		SendErrorNotificationFunc: func(ctx context.Context, runErr error) error { return nil },
	}

	d := NewDigest(Params{Collector: collector, Store: store, Mailer: mailer})
	_, err := d.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save batch")
	assert.Len(t, mailer.SendErrorNotificationCalls(), 1)
}

func TestDigest_Run_SeenURLsSkipDuplicates(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1)}, nil
		},
	}
	store := testStore()
	store.SeenURLsFunc = func(ctx context.Context) ([]string, error) {
		return []string{"http://example.com/story1"}, nil
	}

	d := NewDigest(Params{Collector: collector, Store: store})
	report, err := d.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, report.Total, "already-seen URL is not re-ingested")
	require.Len(t, store.SaveBatchCalls(), 1)
	assert.Empty(t, store.SaveBatchCalls()[0].Articles)
}

func TestDigest_Run_RenderFailureDegrades(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1)}, nil
		},
	}
	renderer := &mocks.RendererMock{
		RenderCarouselFunc: func(articles []domain.Article) ([]string, error) {
			return nil, fmt.Errorf("font missing")
		},
	}
	mailer := &mocks.MailerMock{
		SendDigestFunc: func(ctx context.Context, articles []domain.Article, slides []string) error { return nil },
	}

	d := NewDigest(Params{Collector: collector, Store: testStore(), Renderer: renderer, Mailer: mailer})
	_, err := d.Run(context.Background())
	require.NoError(t, err, "render failure should not fail the run")

	require.Len(t, mailer.SendDigestCalls(), 1)
	assert.Nil(t, mailer.SendDigestCalls()[0].Slides, "digest sent without slides")
}

func TestDigest_Run_Retention(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1)}, nil
		},
	}
	store := testStore()
	store.DeleteOldSeenURLsFunc = func(ctx context.Context, days int) (int64, error) { return 5, nil }

	d := NewDigest(Params{Collector: collector, Store: store, RetentionDays: 30})
	_, err := d.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, store.DeleteOldSeenURLsCalls(), 1)
	assert.Equal(t, 30, store.DeleteOldSeenURLsCalls()[0].Days)
}

func TestDigest_StartStop(t *testing.T) {
	collector := &mocks.CollectorMock{
		CollectFunc: func(ctx context.Context) ([]domain.RawRecord, error) {
			return []domain.RawRecord{relevantRecord(1)}, nil
		},
	}
	store := testStore()

	d := NewDigest(Params{Collector: collector, Store: store, Interval: 30 * time.Millisecond})
	d.Start(context.Background())
	time.Sleep(100 * time.Millisecond)
	d.Stop()

	// immediate run plus at least two ticks
	assert.GreaterOrEqual(t, len(collector.CollectCalls()), 3)
}
