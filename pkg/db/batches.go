package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/startupwire/startupwire/pkg/domain"
)

// ErrNotFound is returned when a requested batch does not exist.
var ErrNotFound = errors.New("not found")

// SaveBatch stores a curated batch with its report in a single transaction
// and returns the batch ID. Article order is preserved as 1-based positions.
func (db *DB) SaveBatch(ctx context.Context, articles []domain.Article, report domain.Report) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("encode report: %w", err)
	}

	var batchID int64
	err = db.InTransaction(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO batches (total, mean_relevance, report) VALUES (?, ?, ?)`,
			report.Total, report.MeanRelevance, string(reportJSON))
		if err != nil {
			return fmt.Errorf("insert batch: %w", err)
		}
		batchID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get batch id: %w", err)
		}

		query := `
			INSERT INTO articles (
				batch_id, position, url, source, title, body, summary,
				relevance, importance, categories, keywords, published
			) VALUES (
				:batch_id, :position, :url, :source, :title, :body, :summary,
				:relevance, :importance, :categories, :keywords, :published
			)
		`
		for i, a := range articles {
			rec, err := articleFromDomain(batchID, i+1, a)
			if err != nil {
				return err
			}
			if _, err := tx.NamedExecContext(ctx, query, rec); err != nil {
				return fmt.Errorf("insert article %s: %w", a.URL, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return batchID, nil
}

// GetBatchArticles retrieves the articles of a batch in rank order.
func (db *DB) GetBatchArticles(ctx context.Context, batchID int64) ([]domain.Article, error) {
	var stored []Article
	query := `SELECT * FROM articles WHERE batch_id = ? ORDER BY position`
	if err := db.conn.SelectContext(ctx, &stored, query, batchID); err != nil {
		return nil, fmt.Errorf("get batch articles: %w", err)
	}

	articles := make([]domain.Article, 0, len(stored))
	for i := range stored {
		a, err := stored[i].ToDomain()
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// LatestBatchID returns the ID of the most recent batch.
func (db *DB) LatestBatchID(ctx context.Context) (int64, error) {
	var id int64
	err := db.conn.GetContext(ctx, &id, `SELECT id FROM batches ORDER BY id DESC LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("get latest batch id: %w", err)
	}
	return id, nil
}

// GetReport retrieves the stored report of a batch.
func (db *DB) GetReport(ctx context.Context, batchID int64) (domain.Report, error) {
	var raw string
	err := db.conn.GetContext(ctx, &raw, `SELECT report FROM batches WHERE id = ?`, batchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Report{}, ErrNotFound
		}
		return domain.Report{}, fmt.Errorf("get report: %w", err)
	}

	var report domain.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return domain.Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}

// CountBatches returns the total number of stored batches.
func (db *DB) CountBatches(ctx context.Context) (int64, error) {
	var count int64
	if err := db.conn.GetContext(ctx, &count, `SELECT COUNT(*) FROM batches`); err != nil {
		return 0, fmt.Errorf("count batches: %w", err)
	}
	return count, nil
}
