package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelsync-hq/modelsync/internal/provider"
)

func TestClassifyGoogle(t *testing.T) {
	chat := Hints{SupportedActions: []string{"generateContent"}}

	tests := []struct {
		name    string
		id      string
		display string
		hints   Hints
		want    Capabilities
	}{
		{
			name:    "gemini 1.5 pro",
			id:      "models/gemini-1.5-pro",
			display: "Gemini 1.5 Pro",
			hints:   chat,
			want: Capabilities{
				MultiModal:         true,
				CanSearch:          true,
				CanGenerateImages:  true,
				IsAdvancedReasoner: true,
				CanAccessInternet:  true,
				SupportsReasoning:  true,
			},
		},
		{
			name:    "gemini 2.0 flash stays fast not deep",
			id:      "models/gemini-2.0-flash",
			display: "Gemini 2.0 Flash",
			hints:   chat,
			want: Capabilities{
				MultiModal:        true,
				CanSearch:         true,
				CanAccessInternet: true,
				SupportsReasoning: true,
			},
		},
		{
			name:    "gemini 2.5 flash keeps reasoning tier",
			id:      "models/gemini-2.5-flash",
			display: "Gemini 2.5 Flash",
			hints:   chat,
			want: Capabilities{
				MultiModal:         true,
				CanSearch:          true,
				CanGenerateImages:  true,
				IsAdvancedReasoner: true,
				CanAccessInternet:  true,
				SupportsReasoning:  true,
			},
		},
		{
			name:    "imagen generates images and does not chat",
			id:      "models/imagen-3.0-generate-002",
			display: "Imagen 3",
			hints:   Hints{SupportedActions: []string{"predict"}},
			want: Capabilities{
				MultiModal:        true,
				CanGenerateImages: true,
			},
		},
		{
			name:    "embedding model without actions",
			id:      "models/text-embedding-004",
			display: "Text Embedding 004",
			want:    Capabilities{},
		},
		{
			name:    "auxiliary model with actions keeps baseline",
			id:      "models/aqa",
			display: "Model that performs Attributed Question Answering",
			hints:   Hints{SupportedActions: []string{"generateAnswer"}},
			want:    Capabilities{SupportsReasoning: true},
		},
		{
			name:    "gemini in display name only",
			id:      "models/experimental-001",
			display: "Gemini Experimental",
			hints:   chat,
			want: Capabilities{
				MultiModal:        true,
				SupportsReasoning: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(provider.Google, tt.id, tt.display, tt.hints)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyOpenAI(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want Capabilities
	}{
		{
			name: "gpt-3.5 is plain text",
			id:   "gpt-3.5-turbo",
			want: Capabilities{SupportsReasoning: true},
		},
		{
			name: "gpt-4o is the multimodal flagship",
			id:   "gpt-4o",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "gpt-4o-mini loses the reasoning tier",
			id:   "gpt-4o-mini",
			want: Capabilities{
				MultiModal:        true,
				SupportsReasoning: true,
			},
		},
		{
			name: "gpt-4 turbo reasons over text only",
			id:   "gpt-4-turbo",
			want: Capabilities{
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "gpt-4.1 counts as multimodal",
			id:   "gpt-4.1",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "gpt-5 stays conservative until probed",
			id:   "gpt-5",
			want: Capabilities{
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "o1 reasons over images",
			id:   "o1",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "o1-mini loses the reasoning tier",
			id:   "o1-mini",
			want: Capabilities{
				MultiModal:        true,
				SupportsReasoning: true,
			},
		},
		{
			name: "dall-e generates images and does not chat",
			id:   "dall-e-3",
			want: Capabilities{
				MultiModal:        true,
				CanGenerateImages: true,
			},
		},
		{
			name: "gpt-image generates images and does not chat",
			id:   "gpt-image-1",
			want: Capabilities{
				MultiModal:        true,
				CanGenerateImages: true,
			},
		},
		{
			name: "omni-moderation is caught by the o prefix",
			id:   "omni-moderation-latest",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "embedding model keeps baseline",
			id:   "text-embedding-3-small",
			want: Capabilities{SupportsReasoning: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(provider.OpenAI, tt.id, tt.id, Hints{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyAnthropic(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want Capabilities
	}{
		{
			name: "claude 3 opus",
			id:   "claude-3-opus-20240229",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "claude 3.5 sonnet gets tool capabilities",
			id:   "claude-3-5-sonnet-latest",
			want: Capabilities{
				MultiModal:         true,
				CanSearch:          true,
				CanGenerateImages:  true,
				IsAdvancedReasoner: true,
				CanAccessInternet:  true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "claude 3 sonnet",
			id:   "claude-3-sonnet-20240229",
			want: Capabilities{
				MultiModal:         true,
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
		{
			name: "claude 3.5 haiku",
			id:   "claude-3-5-haiku-latest",
			want: Capabilities{
				MultiModal:        true,
				SupportsReasoning: true,
			},
		},
		{
			name: "claude instant",
			id:   "claude-instant-1.2",
			want: Capabilities{SupportsReasoning: true},
		},
		{
			name: "claude sonnet 4 naming evades the claude-3 rules",
			id:   "claude-sonnet-4-20250514",
			want: Capabilities{SupportsReasoning: true},
		},
		{
			name: "claude opus 4 still reads as advanced",
			id:   "claude-opus-4-1",
			want: Capabilities{
				IsAdvancedReasoner: true,
				SupportsReasoning:  true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(provider.Anthropic, tt.id, "", Hints{})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyUnknownProvider(t *testing.T) {
	got := Classify("mistral", "mistral-large", "Mistral Large", Hints{})
	assert.Equal(t, Capabilities{SupportsReasoning: true}, got)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	got := Classify(provider.OpenAI, "GPT-4O", "GPT-4O", Hints{})
	assert.True(t, got.MultiModal)
	assert.True(t, got.IsAdvancedReasoner)
}

func TestClassifyNonReasonerIsNeverAdvanced(t *testing.T) {
	// An id matching both an advanced-reasoner rule and a no-reasoning
	// rule must come out demoted.
	got := Classify(provider.Google, "models/gemini-pro-imagen", "", Hints{SupportedActions: []string{"predict"}})
	assert.False(t, got.SupportsReasoning)
	assert.False(t, got.IsAdvancedReasoner)
	assert.True(t, got.CanGenerateImages)
}
