// Package service orchestrates the daily digest: collect, curate, persist,
// render and send. It also runs the digest on an interval in daemon mode.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/startupwire/startupwire/pkg/config"
	"github.com/startupwire/startupwire/pkg/curator"
	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/pkg/export"
	"github.com/startupwire/startupwire/pkg/lexicon"
)

//go:generate moq -out mocks/collector.go -pkg mocks -skip-ensure -fmt goimports . Collector
//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer
//go:generate moq -out mocks/mailer.go -pkg mocks -skip-ensure -fmt goimports . Mailer

// Collector gathers raw records from all configured sources
type Collector interface {
	Collect(ctx context.Context) ([]domain.RawRecord, error)
}

// Store persists curated batches and the seen-URL set
type Store interface {
	SeenURLs(ctx context.Context) ([]string, error)
	AddSeenURLs(ctx context.Context, urls []string) error
	DeleteOldSeenURLs(ctx context.Context, days int) (int64, error)
	SaveBatch(ctx context.Context, articles []domain.Article, report domain.Report) (int64, error)
}

// Renderer draws carousel slides for the selected stories
type Renderer interface {
	RenderCarousel(articles []domain.Article) ([]string, error)
}

// Mailer sends the digest and failure notifications
type Mailer interface {
	SendDigest(ctx context.Context, articles []domain.Article, slides []string) error
	SendErrorNotification(ctx context.Context, runErr error) error
}

// Params configures the digest service. Renderer and Mailer are optional,
// nil disables the corresponding stage.
type Params struct {
	Collector     Collector
	Store         Store
	Renderer      Renderer
	Mailer        Mailer
	Lexicon       *lexicon.Lexicon
	Curation      config.CurationConfig
	Interval      time.Duration // daemon mode period
	ExportFile    string        // optional JSON export of the selected stories
	RetentionDays int           // seen-URL retention, 0 keeps forever
}

// Digest runs the collect-curate-deliver cycle
type Digest struct {
	Params

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

// NewDigest creates the digest service
func NewDigest(p Params) *Digest {
	if p.Interval == 0 {
		p.Interval = 24 * time.Hour
	}
	return &Digest{Params: p}
}

// Run executes one full digest cycle and returns the batch report.
// Persistence of the batch is fatal, failures in the delivery stages
// (slides, email) degrade the run but still produce a saved batch.
func (d *Digest) Run(ctx context.Context) (domain.Report, error) {
	started := time.Now()

	records, err := d.Collector.Collect(ctx)
	if err != nil {
		d.notifyFailure(ctx, err)
		return domain.Report{}, fmt.Errorf("collect: %w", err)
	}

	dedup := curator.NewDedupIndex()
	seen, err := d.Store.SeenURLs(ctx)
	if err != nil {
		lgr.Printf("[WARN] can't load seen URLs, continuing without history: %v", err)
	}
	dedup.SeedURLs(seen)

	cur := curator.New(curator.Params{
		Lexicon:     d.Lexicon,
		Threshold:   d.Curation.Threshold,
		TargetCount: d.Curation.TargetCount,
		Dedup:       dedup,
	})
	res := cur.Curate(records)
	report := curator.BuildReport(res.Admitted, d.Curation.TopKeywords)

	batchID, err := d.Store.SaveBatch(ctx, res.Selected, report)
	if err != nil {
		d.notifyFailure(ctx, err)
		return domain.Report{}, fmt.Errorf("save batch: %w", err)
	}

	if err := d.Store.AddSeenURLs(ctx, dedup.URLs()); err != nil {
		lgr.Printf("[WARN] can't persist seen URLs: %v", err)
	}
	if d.RetentionDays > 0 {
		if deleted, err := d.Store.DeleteOldSeenURLs(ctx, d.RetentionDays); err != nil {
			lgr.Printf("[WARN] can't prune seen URLs: %v", err)
		} else if deleted > 0 {
			lgr.Printf("[DEBUG] pruned %d seen URLs older than %d days", deleted, d.RetentionDays)
		}
	}

	if d.ExportFile != "" {
		if err := export.Save(d.ExportFile, res.Selected); err != nil {
			lgr.Printf("[WARN] can't export batch to %s: %v", d.ExportFile, err)
		}
	}

	var slides []string
	if d.Renderer != nil {
		if slides, err = d.Renderer.RenderCarousel(res.Selected); err != nil {
			lgr.Printf("[WARN] carousel rendering failed, sending digest without slides: %v", err)
			slides = nil
		}
	}

	if d.Mailer != nil {
		if err := d.Mailer.SendDigest(ctx, res.Selected, slides); err != nil {
			return report, fmt.Errorf("send digest: %w", err)
		}
	}

	lgr.Printf("[INFO] digest batch %d done in %v, %d collected, %d admitted, %d selected",
		batchID, time.Since(started).Round(time.Millisecond), len(records), len(res.Admitted), len(res.Selected))
	return report, nil
}

// Start begins the daemon loop, running one cycle immediately
func (d *Digest) Start(ctx context.Context) {
	ctx, d.cancel = context.WithCancel(ctx)
	d.wg.Add(1)
	go d.loop(ctx)
	lgr.Printf("[INFO] digest daemon started, interval %v", d.Interval)
}

// Stop gracefully stops the daemon loop
func (d *Digest) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
	lgr.Printf("[INFO] digest daemon stopped")
}

func (d *Digest) loop(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.Interval)
	defer ticker.Stop()

	if _, err := d.Run(ctx); err != nil {
		lgr.Printf("[ERROR] digest run failed: %v", err)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := d.Run(ctx); err != nil {
				lgr.Printf("[ERROR] digest run failed: %v", err)
			}
		}
	}
}

// notifyFailure emails the failure when a mailer is configured
func (d *Digest) notifyFailure(ctx context.Context, runErr error) {
	if d.Mailer == nil {
		return
	}
	if err := d.Mailer.SendErrorNotification(ctx, runErr); err != nil {
		lgr.Printf("[WARN] can't send error notification: %v", err)
	}
}
