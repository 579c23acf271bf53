package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SeenURLs returns every URL recorded across previous runs, used to seed
// the dedup index for idempotent incremental ingestion.
func (db *DB) SeenURLs(ctx context.Context) ([]string, error) {
	var urls []string
	if err := db.conn.SelectContext(ctx, &urls, `SELECT url FROM seen_urls ORDER BY url`); err != nil {
		return nil, fmt.Errorf("get seen urls: %w", err)
	}
	return urls, nil
}

// AddSeenURLs records URLs as seen; already-known URLs are ignored.
func (db *DB) AddSeenURLs(ctx context.Context, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	return db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		for _, u := range urls {
			if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO seen_urls (url) VALUES (?)`, u); err != nil {
				return fmt.Errorf("insert seen url %s: %w", u, err)
			}
		}
		return nil
	})
}

// DeleteOldSeenURLs drops seen-URL rows older than the given number of days,
// keeping the dedup table from growing without bound.
func (db *DB) DeleteOldSeenURLs(ctx context.Context, days int) (int64, error) {
	res, err := db.conn.ExecContext(ctx,
		`DELETE FROM seen_urls WHERE first_seen < datetime('now', ?)`,
		fmt.Sprintf("-%d days", days))
	if err != nil {
		return 0, fmt.Errorf("delete old seen urls: %w", err)
	}
	return res.RowsAffected()
}
