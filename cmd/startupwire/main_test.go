package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/startupwire/startupwire/pkg/domain"
)

func TestSetupLog(t *testing.T) {
	assert.NotPanics(t, func() { setupLog(false, false) })
	assert.NotPanics(t, func() { setupLog(true, true) })
	assert.NotPanics(t, func() { setupLog(true, false, "secret", "") })
}

func TestDryRunStore(t *testing.T) {
	ctx := context.Background()
	store := dryRunStore{}

	require.NoError(t, store.AddSeenURLs(ctx, []string{"http://example.com/1"}))

	deleted, err := store.DeleteOldSeenURLs(ctx, 30)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	id, err := store.SaveBatch(ctx, []domain.Article{{Title: "t"}}, domain.Report{})
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestRun_BadConfig(t *testing.T) {
	err := run(context.Background(), Opts{Config: "/nonexistent/config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}
