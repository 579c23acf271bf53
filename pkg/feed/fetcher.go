package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/startupwire/startupwire/pkg/domain"
)

// Fetcher retrieves a single RSS/Atom feed and converts its entries
// into raw records ready for curation.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a feed fetcher with the given timeout and user agent
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves and parses a feed, returning one raw record per entry.
// Field text is cleaned of HTML. Entries without a parseable timestamp keep
// the raw date string so the normalizer can try its own layouts.
func (f *Fetcher) Fetch(ctx context.Context, feedURL, sourceName string) ([]domain.RawRecord, error) {
	body, err := f.fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", feedURL, err)
	}

	records := make([]domain.RawRecord, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		rec := domain.RawRecord{
			Title:     CleanText(item.Title),
			Content:   CleanText(item.Content),
			Summary:   CleanText(item.Description),
			URL:       item.Link,
			Source:    sourceName,
			Published: item.Published,
		}

		if item.PublishedParsed != nil {
			rec.PublishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			rec.PublishedAt = *item.UpdatedParsed
		}

		records = append(records, rec)
	}

	return records, nil
}

// fetch retrieves content from a URL
func (f *Fetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
