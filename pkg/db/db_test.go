package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/domain"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "test.db") + "?cache=shared&mode=rwc"
	database, err := New(Config{DSN: dsn})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func TestNew(t *testing.T) {
	database := setupTestDB(t)
	require.NoError(t, database.Ping(context.Background()))
}

func TestBatchOperations(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	articles := []domain.Article{
		{
			Title:      "Flipkart raises $1 billion",
			Body:       "Body text here.",
			URL:        "https://example.com/1",
			Source:     "Economic Times",
			Published:  time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Relevance:  0.85,
			Importance: 42.5,
			Categories: []string{"ecommerce"},
			Keywords:   []string{"funding", "india"},
			Summary:    "Short summary.",
		},
		{
			Title:      "Second story",
			Body:       "Another body.",
			URL:        "https://example.com/2",
			Source:     "Inc42",
			Published:  time.Date(2024, 1, 14, 8, 0, 0, 0, time.UTC),
			Relevance:  0.4,
			Importance: 7,
			Categories: []string{"general"},
			Summary:    "Another body.",
		},
	}
	report := domain.Report{Total: 2, MeanRelevance: 0.625, Categories: map[string]int{"ecommerce": 1, "general": 1}}

	t.Run("save and load batch", func(t *testing.T) {
		batchID, err := database.SaveBatch(ctx, articles, report)
		require.NoError(t, err)
		assert.NotZero(t, batchID)

		loaded, err := database.GetBatchArticles(ctx, batchID)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		// rank order and exact score/category/keyword round-trip
		assert.Equal(t, "Flipkart raises $1 billion", loaded[0].Title)
		assert.InDelta(t, 0.85, loaded[0].Relevance, 0)
		assert.InDelta(t, 42.5, loaded[0].Importance, 0)
		assert.Equal(t, []string{"ecommerce"}, loaded[0].Categories)
		assert.Equal(t, []string{"funding", "india"}, loaded[0].Keywords)
		assert.True(t, loaded[0].Published.Equal(articles[0].Published))

		// nil keywords come back as an empty list, not null
		assert.Empty(t, loaded[1].Keywords)
	})

	t.Run("latest batch and report", func(t *testing.T) {
		secondID, err := database.SaveBatch(ctx, articles[:1], domain.Report{Total: 1, MeanRelevance: 0.85})
		require.NoError(t, err)

		latest, err := database.LatestBatchID(ctx)
		require.NoError(t, err)
		assert.Equal(t, secondID, latest)

		loadedReport, err := database.GetReport(ctx, secondID)
		require.NoError(t, err)
		assert.Equal(t, 1, loadedReport.Total)
		assert.InDelta(t, 0.85, loadedReport.MeanRelevance, 0)
	})

	t.Run("count batches", func(t *testing.T) {
		count, err := database.CountBatches(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("missing batch report", func(t *testing.T) {
		_, err := database.GetReport(ctx, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestLatestBatchID_Empty(t *testing.T) {
	database := setupTestDB(t)
	_, err := database.LatestBatchID(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSeenURLs(t *testing.T) {
	database := setupTestDB(t)
	ctx := context.Background()

	urls, err := database.SeenURLs(ctx)
	require.NoError(t, err)
	assert.Empty(t, urls)

	require.NoError(t, database.AddSeenURLs(ctx, []string{"https://a.example.com", "https://b.example.com"}))
	// duplicates are ignored
	require.NoError(t, database.AddSeenURLs(ctx, []string{"https://a.example.com"}))

	urls, err = database.SeenURLs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, urls)

	// nothing recent to delete
	deleted, err := database.DeleteOldSeenURLs(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
