package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelsync-hq/modelsync/internal/logger"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "models.json"), logger.Discard)
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)

	cat := s.Load()
	assert.Empty(t, cat.Managed)
	assert.Empty(t, cat.Other)
}

func TestLoadDegradesOnBadInput(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "whitespace only", content: "  \n\t"},
		{name: "invalid json", content: `{"models": [`},
		{name: "wrong top-level type", content: `["not", "a", "document"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0644))

			cat := s.Load()
			assert.Zero(t, cat.Total())
		})
	}
}

func TestLoadPartitionsManagedAndOther(t *testing.T) {
	s := testStore(t)
	content := `{
  "models": [
    {"id": "gpt-4o", "provider": "OpenAI", "providerId": "openai", "name": "GPT-4o", "multiModal": true},
    {"id": "mistral-large", "providerId": "mistral", "name": "Mistral Large", "contextWindow": 128000},
    {"id": "claude-3-5-sonnet-latest", "provider": "Anthropic", "providerId": "anthropic", "name": "Claude 3.5 Sonnet"},
    {"name": "no identity here"}
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	cat := s.Load()
	require.Len(t, cat.Managed, 2)
	require.Len(t, cat.Other, 2)

	assert.Equal(t, "gpt-4o", cat.Managed[0].ID)
	assert.Equal(t, "openai", cat.Managed[0].ProviderID)
	require.NotNil(t, cat.Managed[0].MultiModal)
	assert.True(t, *cat.Managed[0].MultiModal)
	assert.Nil(t, cat.Managed[0].CanSearch, "absent flags should stay undefined")

	assert.Equal(t, "anthropic", cat.Managed[1].ProviderID)

	assert.Equal(t, "mistral", cat.Other[0].ProviderID)
	assert.Contains(t, string(cat.Other[0].Raw), "contextWindow", "unknown fields must survive")
	assert.Empty(t, cat.Other[1].ProviderID)
}

func TestLoadKeepsMalformedManagedRecord(t *testing.T) {
	s := testStore(t)
	content := `{"models": [{"id": "gpt-4o", "providerId": "openai", "multiModal": "yes"}]}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	cat := s.Load()
	assert.Empty(t, cat.Managed)
	require.Len(t, cat.Other, 1)
	assert.Equal(t, "openai", cat.Other[0].ProviderID)
}

func TestSaveSortsByProviderThenID(t *testing.T) {
	s := testStore(t)
	cat := Catalog{
		Managed: []ModelRecord{
			{ID: "gpt-4o-mini", Provider: "OpenAI", ProviderID: "openai", Name: "GPT 4O Mini"},
			{ID: "claude-3-opus-latest", Provider: "Anthropic", ProviderID: "anthropic", Name: "Claude 3 Opus"},
			{ID: "gpt-4o", Provider: "OpenAI", ProviderID: "openai", Name: "GPT 4O"},
		},
		Other: []RawRecord{
			{ProviderID: "mistral", ID: "mistral-large", Raw: json.RawMessage(`{"id":"mistral-large","providerId":"mistral"}`)},
		},
	}
	require.NoError(t, s.Save(cat))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var doc struct {
		Models []struct {
			ID         string `json:"id"`
			ProviderID string `json:"providerId"`
		} `json:"models"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc.Models, 4)

	var keys []string
	for _, m := range doc.Models {
		keys = append(keys, m.ProviderID+"/"+m.ID)
	}
	assert.Equal(t, []string{
		"anthropic/claude-3-opus-latest",
		"mistral/mistral-large",
		"openai/gpt-4o",
		"openai/gpt-4o-mini",
	}, keys)
}

func TestSaveFormat(t *testing.T) {
	s := testStore(t)
	cat := Catalog{
		Managed: []ModelRecord{
			{
				ID:                 "gpt-4o",
				Provider:           "OpenAI",
				ProviderID:         "openai",
				Name:               "GPT 4O",
				MultiModal:         Bool(true),
				CanSearch:          Bool(false),
				CanGenerateImages:  Bool(false),
				IsAdvancedReasoner: Bool(true),
				CanAccessInternet:  Bool(false),
				SupportsReasoning:  Bool(true),
			},
		},
	}
	require.NoError(t, s.Save(cat))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	text := string(data)

	assert.True(t, strings.HasPrefix(text, "{\n  \"models\": ["), "expected two-space indentation")
	assert.Contains(t, text, `"multiModal": true`)
	assert.Contains(t, text, `"isAdvancedReasoner": true`)

	// Field order should match the stored schema.
	idIdx := strings.Index(text, `"id"`)
	providerIdx := strings.Index(text, `"provider"`)
	nameIdx := strings.Index(text, `"name"`)
	assert.Less(t, idIdx, providerIdx)
	assert.Less(t, providerIdx, nameIdx)
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "models.json")
	s := NewStore(path, logger.Discard)

	require.NoError(t, s.Save(Catalog{}))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestRoundTripPreservesOtherProviders(t *testing.T) {
	s := testStore(t)
	content := `{
  "models": [
    {"id": "command-r", "provider": "Cohere", "providerId": "cohere", "name": "Command R", "custom": {"tier": "pro"}},
    {"id": "gpt-4o", "provider": "OpenAI", "providerId": "openai", "name": "GPT 4O", "supportsReasoning": true}
  ]
}`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0644))

	first := s.Load()
	require.NoError(t, s.Save(first))
	second := s.Load()

	require.Len(t, second.Other, 1)
	assert.JSONEq(t, string(first.Other[0].Raw), string(second.Other[0].Raw))
	assert.Contains(t, string(second.Other[0].Raw), `"tier"`)

	require.Len(t, second.Managed, 1)
	assert.Equal(t, first.Managed[0], second.Managed[0])
}

func TestKeyAndBoolHelpers(t *testing.T) {
	rec := ModelRecord{ID: "gemini-2.5-pro", ProviderID: "google"}
	assert.Equal(t, Key{ProviderID: "google", ID: "gemini-2.5-pro"}, rec.Key())

	assert.True(t, BoolValue(Bool(true)))
	assert.False(t, BoolValue(Bool(false)))
	assert.False(t, BoolValue(nil))
}

func TestFilterProvider(t *testing.T) {
	cat := Catalog{
		Managed: []ModelRecord{
			{ID: "gpt-4o", ProviderID: "openai"},
			{ID: "claude-3-opus-latest", ProviderID: "anthropic"},
		},
		Other: []RawRecord{
			{ProviderID: "mistral", ID: "mistral-large"},
			{ProviderID: "openai", ID: "legacy-raw"},
		},
	}

	openai := cat.FilterProvider("openai")
	require.Len(t, openai.Managed, 1)
	require.Len(t, openai.Other, 1)
	assert.Equal(t, "gpt-4o", openai.Managed[0].ID)
	assert.Equal(t, "legacy-raw", openai.Other[0].ID)

	assert.Zero(t, cat.FilterProvider("cohere").Total())
}
