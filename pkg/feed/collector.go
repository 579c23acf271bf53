package feed

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"golang.org/x/sync/errgroup"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/domain"
)

//go:generate moq -out mocks/feed_fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher

// FeedFetcher retrieves raw records from a single feed URL
type FeedFetcher interface {
	Fetch(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error)
}

// Collector fetches all configured sources concurrently and returns raw
// records for the curation pipeline. A failed source is logged and skipped,
// collection fails only when every source fails.
type Collector struct {
	fetcher FeedFetcher
	cfg     config.CollectConfig
	now     func() time.Time
}

// NewCollector creates a collector over the given fetcher and settings
func NewCollector(fetcher FeedFetcher, cfg config.CollectConfig) *Collector {
	return &Collector{fetcher: fetcher, cfg: cfg, now: time.Now}
}

// Collect fetches every configured source, applies the per-source limit and
// the recency window, and returns records sorted newest first. Records whose
// timestamp could not be parsed by the feed library are kept, the normalizer
// makes the final call on their dates.
func (c *Collector) Collect(ctx context.Context) ([]domain.RawRecord, error) {
	if len(c.cfg.Sources) == 0 {
		return nil, fmt.Errorf("no sources configured")
	}

	var (
		mu      sync.Mutex
		records []domain.RawRecord
		failed  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.MaxWorkers)

	for _, src := range c.cfg.Sources {
		g.Go(func() error {
			recs, err := c.fetchSource(gctx, src)
			if err != nil {
				lgr.Printf("[WARN] source %q failed: %v", src.Name, err)
				mu.Lock()
				failed++
				mu.Unlock()
				return nil // keep collecting from the other sources
			}
			lgr.Printf("[INFO] collected %d records from %q", len(recs), src.Name)
			mu.Lock()
			records = append(records, recs...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("collect sources: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if failed == len(c.cfg.Sources) {
		return nil, fmt.Errorf("all %d sources failed", failed)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PublishedAt.After(records[j].PublishedAt)
	})
	return records, nil
}

// fetchSource retrieves one source with retries and applies limit and window
func (c *Collector) fetchSource(ctx context.Context, src config.Source) ([]domain.RawRecord, error) {
	var recs []domain.RawRecord
	retrier := repeater.NewBackoff(3, 50*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		var ferr error
		recs, ferr = c.fetcher.Fetch(ctx, src.URL, src.Name)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	if c.cfg.PerSourceLimit > 0 && len(recs) > c.cfg.PerSourceLimit {
		recs = recs[:c.cfg.PerSourceLimit]
	}

	if c.cfg.Window <= 0 {
		return recs, nil
	}
	cutoff := c.now().Add(-c.cfg.Window)
	kept := recs[:0]
	for _, rec := range recs {
		// zero timestamp means the feed date did not parse, let it through
		if rec.PublishedAt.IsZero() || rec.PublishedAt.After(cutoff) {
			kept = append(kept, rec)
		}
	}
	return kept, nil
}
