// Package provider defines the managed model providers the catalog is
// reconciled against.
package provider

import (
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/openai/openai-go"
)

// Managed provider ids. Catalog records under any other providerId are
// treated as opaque and passed through untouched.
const (
	Google    = "google"
	OpenAI    = "openai"
	Anthropic = "anthropic"
)

// Provider describes a managed model provider
type Provider struct {
	ID          string
	Name        string
	Description string

	// EnvVar is the environment variable carrying the provider's API key
	EnvVar string

	// FeaturedModels is a curated selection shown in the providers command
	FeaturedModels []Model
}

// Model is a curated model reference
type Model struct {
	Name        string
	Description string
	ModelID     string
}

// Managed returns the managed provider registry
func Managed() []Provider {
	return []Provider{
		{
			ID:          Google,
			Name:        "Google Generative AI",
			Description: "Google Generative Language models",
			EnvVar:      "GOOGLE_API_KEY",
			FeaturedModels: []Model{
				{
					Name:        "Gemini 2.5 Pro",
					Description: "Google's most capable reasoning model",
					ModelID:     "gemini-2.5-pro",
				},
				{
					Name:        "Gemini 2.0 Flash",
					Description: "High-performance and ultra-fast model",
					ModelID:     "gemini-2.0-flash",
				},
				{
					Name:        "Gemini 1.5 Pro",
					Description: "Professional-grade model for large-scale applications",
					ModelID:     "gemini-1.5-pro",
				},
				{
					Name:        "Imagen 3",
					Description: "Text-to-image generation model",
					ModelID:     "imagen-3.0-generate-002",
				},
			},
		},
		{
			ID:          OpenAI,
			Name:        "OpenAI",
			Description: "OpenAI model platform",
			EnvVar:      "OPENAI_API_KEY",
			FeaturedModels: []Model{
				{
					Name:        "GPT-4o",
					Description: "Flagship multimodal model",
					ModelID:     openai.ChatModelGPT4o,
				},
				{
					Name:        "GPT-4o Mini",
					Description: "Cost-efficient small multimodal model",
					ModelID:     openai.ChatModelGPT4oMini,
				},
				{
					Name:        "GPT-4 Turbo",
					Description: "Most capable GPT-4 generation model",
					ModelID:     openai.ChatModelGPT4Turbo,
				},
				{
					Name:        "o1",
					Description: "Reasoning model for hard problems",
					ModelID:     openai.ChatModelO1,
				},
				{
					Name:        "GPT-3.5 Turbo",
					Description: "Efficient model balancing performance and speed",
					ModelID:     openai.ChatModelGPT3_5Turbo,
				},
			},
		},
		{
			ID:          Anthropic,
			Name:        "Anthropic",
			Description: "Anthropic Claude models",
			EnvVar:      "CLAUDE_API_KEY",
			FeaturedModels: []Model{
				{
					Name:        "Claude 3.7 Sonnet",
					Description: "Most intelligent model from Anthropic",
					ModelID:     anthropic.ModelClaude3_7SonnetLatest,
				},
				{
					Name:        "Claude 3.5 Sonnet",
					Description: "Balanced intelligence and speed",
					ModelID:     anthropic.ModelClaude3_5SonnetLatest,
				},
				{
					Name:        "Claude 3.5 Haiku",
					Description: "Fast and cost-effective model",
					ModelID:     anthropic.ModelClaude3_5HaikuLatest,
				},
				{
					Name:        "Claude 3 Opus",
					Description: "Excels at writing and complex tasks",
					ModelID:     anthropic.ModelClaude3OpusLatest,
				},
			},
		},
	}
}

// IsManaged reports whether providerID belongs to the managed set
func IsManaged(providerID string) bool {
	switch providerID {
	case Google, OpenAI, Anthropic:
		return true
	default:
		return false
	}
}

// ManagedIDs returns the managed provider ids in registry order
func ManagedIDs() []string {
	return []string{Google, OpenAI, Anthropic}
}

// DisplayName returns the human-readable name for a managed provider id.
// Unknown ids are returned unchanged.
func DisplayName(providerID string) string {
	for _, p := range Managed() {
		if p.ID == providerID {
			return p.Name
		}
	}
	return providerID
}
