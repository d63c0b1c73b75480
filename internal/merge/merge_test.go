package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelsync-hq/modelsync/internal/catalog"
)

func fetchedRecord(providerID, id string, multiModal bool) catalog.ModelRecord {
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

func TestMergePreservesStoredFlags(t *testing.T) {
	stored := []catalog.ModelRecord{
		{
			ID:         "gpt-4o",
			ProviderID: "openai",
			Name:       "Old Name",
			MultiModal: catalog.Bool(false),
			CanSearch:  catalog.Bool(true),
		},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("openai", "gpt-4o", true)}

	res := Merge(stored, fetched, Options{})
	require.Len(t, res.Records, 1)

	rec := res.Records[0]
	assert.False(t, catalog.BoolValue(rec.MultiModal), "stored false must beat classifier true")
	assert.True(t, catalog.BoolValue(rec.CanSearch), "stored true must beat classifier false")
	assert.Equal(t, "gpt-4o", rec.Name, "identity fields come from the fresh candidate")
	assert.Equal(t, 1, res.Preserved)
	assert.Empty(t, res.Dropped)
}

func TestMergeKeepsCandidateFlagsWhenStoredUndefined(t *testing.T) {
	stored := []catalog.ModelRecord{
		{
			ID:         "gpt-4o",
			ProviderID: "openai",
			CanSearch:  catalog.Bool(true),
		},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("openai", "gpt-4o", true)}

	res := Merge(stored, fetched, Options{})
	rec := res.Records[0]

	assert.True(t, catalog.BoolValue(rec.CanSearch))
	assert.True(t, catalog.BoolValue(rec.MultiModal), "flag undefined in store keeps classifier verdict")
	assert.True(t, catalog.BoolValue(rec.SupportsReasoning))
}

func TestMergeRefreshModeDiscardsStoredFlags(t *testing.T) {
	stored := []catalog.ModelRecord{
		{
			ID:         "gpt-4o",
			ProviderID: "openai",
			MultiModal: catalog.Bool(false),
			CanSearch:  catalog.Bool(true),
		},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("openai", "gpt-4o", true)}

	res := Merge(stored, fetched, Options{RefreshCaps: true})
	rec := res.Records[0]

	assert.True(t, catalog.BoolValue(rec.MultiModal))
	assert.False(t, catalog.BoolValue(rec.CanSearch))
	assert.Zero(t, res.Preserved)
}

func TestMergeDropsStaleRecords(t *testing.T) {
	stored := []catalog.ModelRecord{
		{ID: "gpt-4o", ProviderID: "openai"},
		{ID: "gpt-4-32k", ProviderID: "openai"},
		{ID: "text-davinci-003", ProviderID: "openai"},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("openai", "gpt-4o", true)}

	res := Merge(stored, fetched, Options{})
	require.Len(t, res.Records, 1)
	require.Len(t, res.Dropped, 2)
	assert.Equal(t, "gpt-4-32k", res.Dropped[0].ID)
	assert.Equal(t, "text-davinci-003", res.Dropped[1].ID)
}

func TestMergeDropsRecordsOfFailedProvider(t *testing.T) {
	// A provider whose fetch failed contributes nothing, so its stored
	// records fall out of the membership list.
	stored := []catalog.ModelRecord{
		{ID: "claude-3-opus-20240229", ProviderID: "anthropic"},
		{ID: "gpt-4o", ProviderID: "openai"},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("openai", "gpt-4o", true)}

	res := Merge(stored, fetched, Options{})
	require.Len(t, res.Records, 1)
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, "anthropic", res.Dropped[0].ProviderID)
}

func TestMergeNewModelPassesThrough(t *testing.T) {
	fetched := []catalog.ModelRecord{fetchedRecord("google", "models/gemini-2.5-pro", true)}

	res := Merge(nil, fetched, Options{})
	require.Len(t, res.Records, 1)
	assert.Equal(t, fetched[0], res.Records[0])
	assert.Zero(t, res.Preserved)
}

func TestMergeDistinguishesProvidersWithSameModelID(t *testing.T) {
	stored := []catalog.ModelRecord{
		{ID: "shared-id", ProviderID: "openai", MultiModal: catalog.Bool(false)},
	}
	fetched := []catalog.ModelRecord{fetchedRecord("google", "shared-id", true)}

	res := Merge(stored, fetched, Options{})
	require.Len(t, res.Records, 1)
	assert.True(t, catalog.BoolValue(res.Records[0].MultiModal), "records of different providers must not merge")
	require.Len(t, res.Dropped, 1)
	assert.Equal(t, "openai", res.Dropped[0].ProviderID)
}

func TestMergeIsIdempotent(t *testing.T) {
	stored := []catalog.ModelRecord{
		{
			ID:         "gpt-4o",
			ProviderID: "openai",
			MultiModal: catalog.Bool(false),
		},
		{
			ID:         "stale-model",
			ProviderID: "openai",
		},
	}
	fetched := []catalog.ModelRecord{
		fetchedRecord("openai", "gpt-4o", true),
		fetchedRecord("openai", "o1", true),
	}

	first := Merge(stored, fetched, Options{})
	second := Merge(first.Records, fetched, Options{})

	assert.Equal(t, first.Records, second.Records)
	assert.Empty(t, second.Dropped)
}

func TestMergeKeepsFetchOrder(t *testing.T) {
	fetched := []catalog.ModelRecord{
		fetchedRecord("google", "models/gemini-2.5-pro", true),
		fetchedRecord("openai", "gpt-4o", true),
		fetchedRecord("openai", "dall-e-3", true),
		fetchedRecord("anthropic", "claude-3-5-sonnet-latest", true),
	}

	res := Merge(nil, fetched, Options{})
	var ids []string
	for _, rec := range res.Records {
		ids = append(ids, rec.ID)
	}
	assert.Equal(t, []string{"models/gemini-2.5-pro", "gpt-4o", "dall-e-3", "claude-3-5-sonnet-latest"}, ids)
}
