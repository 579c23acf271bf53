package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/db"
	"github.com/startupwire/startupwire/pkg/domain"
	"github.com/startupwire/startupwire/server/mocks"
)

func testServer(t *testing.T, database Database) *httptest.Server {
	t.Helper()
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return ":0", 30 * time.Second },
	}
	srv := New(cfg, database, "test", false)
	ts := httptest.NewServer(srv.router)
	t.Cleanup(ts.Close)
	return ts
}

func TestServer_StatusHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		CountBatchesFunc: func(ctx context.Context) (int64, error) { return 7, nil },
	}
	ts := testServer(t, database)

	resp, err := http.Get(ts.URL + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var status map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "test", status["version"])
	assert.Equal(t, float64(7), status["batches"])
}

func TestServer_DigestHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		LatestBatchIDFunc: func(ctx context.Context) (int64, error) { return 42, nil },
		GetBatchArticlesFunc: func(ctx context.Context, batchID int64) ([]domain.Article, error) {
			assert.Equal(t, int64(42), batchID)
			return []domain.Article{
				{Title: "Bengaluru startup raises funding", URL: "http://example.com/1", Source: "StartupDesk"},
			}, nil
		},
	}
	ts := testServer(t, database)

	resp, err := http.Get(ts.URL + "/api/v1/digest")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		BatchID  int64            `json:"batch_id"`
		Articles []domain.Article `json:"articles"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(42), body.BatchID)
	require.Len(t, body.Articles, 1)
	assert.Equal(t, "Bengaluru startup raises funding", body.Articles[0].Title)
}

func TestServer_DigestHandler_NoBatches(t *testing.T) {
	database := &mocks.DatabaseMock{
		LatestBatchIDFunc: func(ctx context.Context) (int64, error) { return 0, db.ErrNotFound },
	}
	ts := testServer(t, database)

	resp, err := http.Get(ts.URL + "/api/v1/digest")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ReportHandler(t *testing.T) {
	database := &mocks.DatabaseMock{
		LatestBatchIDFunc: func(ctx context.Context) (int64, error) { return 3, nil },
		GetReportFunc: func(ctx context.Context, batchID int64) (domain.Report, error) {
			return domain.Report{Total: 10, MeanRelevance: 0.55}, nil
		},
	}
	ts := testServer(t, database)

	resp, err := http.Get(ts.URL + "/api/v1/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report domain.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, 10, report.Total)
	assert.InDelta(t, 0.55, report.MeanRelevance, 0.0001)
}

func TestServer_ReportHandler_DBError(t *testing.T) {
	database := &mocks.DatabaseMock{
		LatestBatchIDFunc: func(ctx context.Context) (int64, error) { return 3, nil },
		GetReportFunc: func(ctx context.Context, batchID int64) (domain.Report, error) {
			return domain.Report{}, fmt.Errorf("db gone")
		},
	}
	ts := testServer(t, database)

	resp, err := http.Get(ts.URL + "/api/v1/report")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "db gone", body["error"])
}

func TestServer_Ping(t *testing.T) {
	ts := testServer(t, &mocks.DatabaseMock{})

	resp, err := http.Get(ts.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) { return "127.0.0.1:0", 30 * time.Second },
	}
	srv := New(cfg, &mocks.DatabaseMock{}, "test", false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not shut down")
	}
}
