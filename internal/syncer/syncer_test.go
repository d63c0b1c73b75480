package syncer

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/fetcher"
	"github.com/modelsync-hq/modelsync/internal/history"
	"github.com/modelsync-hq/modelsync/internal/logger"
)

type fakeFetcher struct {
	id      string
	name    string
	records []catalog.ModelRecord
	err     error
	noCreds bool
}

func (f *fakeFetcher) ProviderID() string {
	return f.id
}

func (f *fakeFetcher) ProviderName() string {
	return f.name
}

func (f *fakeFetcher) HasCredentials() bool {
	return !f.noCreds
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]catalog.ModelRecord, error) {
	if f.noCreds {
		return nil, fetcher.ErrNoCredentials
	}
	return f.records, f.err
}

type fakeProber struct {
	supports map[string]bool
	calls    []string
}

func (p *fakeProber) SupportsImageInput(ctx context.Context, modelID string) bool {
	p.calls = append(p.calls, modelID)
	return p.supports[modelID]
}

func record(providerID, id string, multiModal bool) catalog.ModelRecord {
	return catalog.ModelRecord{
		ID:                 id,
		Provider:           providerID,
		ProviderID:         providerID,
		Name:               id,
		MultiModal:         catalog.Bool(multiModal),
		CanSearch:          catalog.Bool(false),
		CanGenerateImages:  catalog.Bool(false),
		IsAdvancedReasoner: catalog.Bool(false),
		CanAccessInternet:  catalog.Bool(false),
		SupportsReasoning:  catalog.Bool(true),
	}
}

func testCatalogStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore(filepath.Join(t.TempDir(), "models.json"), logger.Discard)
}

func TestRunMergesFetchesAndSaves(t *testing.T) {
	store := testCatalogStore(t)
	prior := catalog.Catalog{
		Managed: []catalog.ModelRecord{
			{ID: "gpt-4o", ProviderID: "openai", Provider: "OpenAI", Name: "GPT-4o", MultiModal: catalog.Bool(false)},
			{ID: "text-davinci-003", ProviderID: "openai", Provider: "OpenAI", Name: "Davinci"},
		},
		Other: []catalog.RawRecord{
			{ProviderID: "mistral", ID: "mistral-large", Raw: []byte(`{"id":"mistral-large","providerId":"mistral","name":"Mistral Large"}`)},
		},
	}
	require.NoError(t, store.Save(prior))

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "google", name: "Google Generative AI", records: []catalog.ModelRecord{record("google", "models/gemini-2.5-pro", true)}},
		&fakeFetcher{id: "openai", name: "OpenAI", records: []catalog.ModelRecord{record("openai", "gpt-4o", true)}},
	}, nil, nil, logger.Discard)

	report, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Managed)
	assert.Equal(t, 1, report.Other)
	assert.Equal(t, 1, report.Dropped)
	assert.Equal(t, 1, report.Preserved)
	assert.Equal(t, 3, report.Total())
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.FinishedAt.Before(report.StartedAt))

	saved := store.Load()
	require.Len(t, saved.Managed, 2)
	require.Len(t, saved.Other, 1)

	var gpt4o catalog.ModelRecord
	for _, rec := range saved.Managed {
		require.NotEqual(t, "text-davinci-003", rec.ID, "stale record must not be written")
		if rec.ID == "gpt-4o" {
			gpt4o = rec
		}
	}
	assert.False(t, catalog.BoolValue(gpt4o.MultiModal), "stored flag must survive the sync")
}

func TestRunReportsProviderOutcomes(t *testing.T) {
	store := testCatalogStore(t)
	boom := errors.New("listing API error (status 500)")

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "google", name: "Google Generative AI", records: []catalog.ModelRecord{record("google", "models/gemini-2.5-pro", true)}},
		&fakeFetcher{id: "openai", name: "OpenAI", err: boom},
		&fakeFetcher{id: "anthropic", name: "Anthropic", noCreds: true},
	}, nil, nil, logger.Discard)

	report, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err, "provider failures must not abort the run")
	require.Len(t, report.Providers, 3)

	assert.True(t, report.Providers[0].Success())
	assert.Equal(t, history.StatusOK, report.Providers[0].Status())

	assert.False(t, report.Providers[1].Success())
	assert.False(t, report.Providers[1].Skipped())
	assert.Equal(t, history.StatusFailed, report.Providers[1].Status())
	assert.ErrorIs(t, report.Providers[1].Err, boom)

	assert.True(t, report.Providers[2].Skipped())
	assert.Equal(t, history.StatusSkipped, report.Providers[2].Status())
}

func TestRunDropsRecordsOfFailedProvider(t *testing.T) {
	store := testCatalogStore(t)
	require.NoError(t, store.Save(catalog.Catalog{
		Managed: []catalog.ModelRecord{
			{ID: "claude-3-opus-20240229", ProviderID: "anthropic", Provider: "Anthropic", Name: "Claude 3 Opus"},
		},
	}))

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "anthropic", name: "Anthropic", err: errors.New("boom")},
	}, nil, nil, logger.Discard)

	report, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Dropped)
	assert.Empty(t, store.Load().Managed)
}

func TestRunProbesEligibleModels(t *testing.T) {
	store := testCatalogStore(t)
	prober := &fakeProber{supports: map[string]bool{"gpt-4o": true, "o1-mini": false}}

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "openai", name: "OpenAI", records: []catalog.ModelRecord{
			record("openai", "gpt-4o", false),
			record("openai", "o1-mini", false),
			record("openai", "dall-e-3", true),
		}},
		&fakeFetcher{id: "google", name: "Google Generative AI", records: []catalog.ModelRecord{
			record("google", "models/gemini-2.5-pro", true),
		}},
	}, prober, nil, logger.Discard)

	report, err := svc.Run(context.Background(), Options{EnableProbes: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"gpt-4o", "o1-mini"}, prober.calls, "only eligible openai models are probed")
	assert.Equal(t, 2, report.Probed)
	assert.Equal(t, 1, report.Upgraded)

	saved := store.Load()
	flags := map[string]bool{}
	for _, rec := range saved.Managed {
		flags[rec.ID] = catalog.BoolValue(rec.MultiModal)
	}
	assert.True(t, flags["gpt-4o"], "positive probe upgrades the record")
	assert.False(t, flags["o1-mini"], "negative probe changes nothing")
}

func TestRunWithoutProbesNeverCallsProber(t *testing.T) {
	store := testCatalogStore(t)
	prober := &fakeProber{supports: map[string]bool{"gpt-4o": true}}

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "openai", name: "OpenAI", records: []catalog.ModelRecord{record("openai", "gpt-4o", false)}},
	}, prober, nil, logger.Discard)

	_, err := svc.Run(context.Background(), Options{})
	require.NoError(t, err)
	assert.Empty(t, prober.calls)
}

func TestRunRecordsHistory(t *testing.T) {
	store := testCatalogStore(t)
	hist, err := history.NewStore(filepath.Join(t.TempDir(), "sync_history.db"), logger.Discard)
	require.NoError(t, err)
	defer hist.Close()

	svc := NewService(store, []fetcher.Fetcher{
		&fakeFetcher{id: "openai", name: "OpenAI", records: []catalog.ModelRecord{record("openai", "gpt-4o", true)}},
		&fakeFetcher{id: "anthropic", name: "Anthropic", noCreds: true},
	}, nil, hist, logger.Discard)

	report, err := svc.Run(context.Background(), Options{RefreshCaps: true})
	require.NoError(t, err)

	runs, err := hist.RecentRuns(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, report.RunID, run.ID)
	assert.True(t, run.RefreshCaps)
	assert.False(t, run.ProbesEnabled)
	assert.Equal(t, 1, run.TotalModels)
	require.Len(t, run.Providers, 2)
	assert.Equal(t, "anthropic", run.Providers[0].ProviderID)
	assert.Equal(t, history.StatusSkipped, run.Providers[0].Status)
	assert.Equal(t, history.StatusOK, run.Providers[1].Status)
	assert.Equal(t, 1, run.Providers[1].Models)
}

func TestRunReturnsSaveError(t *testing.T) {
	// Pointing the store at a directory makes the write fail.
	store := catalog.NewStore(t.TempDir(), logger.Discard)
	svc := NewService(store, nil, nil, nil, logger.Discard)

	_, err := svc.Run(context.Background(), Options{})
	assert.Error(t, err)
}
