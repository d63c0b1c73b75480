package fetcher

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

const (
	anthropicBaseURL    = "https://api.anthropic.com/v1"
	anthropicAPIVersion = "2023-06-01"
	anthropicPageLimit  = "100"
)

// AnthropicFetcher lists models from the Anthropic API.
type AnthropicFetcher struct {
	apiKey string
	client *resty.Client
	log    logger.Logger
}

// NewAnthropicFetcher creates a fetcher for the Anthropic model listing.
func NewAnthropicFetcher(apiKey string, timeout time.Duration, log logger.Logger) *AnthropicFetcher {
	client := resty.New().
		SetBaseURL(anthropicBaseURL).
		SetHeader("User-Agent", userAgent).
		SetHeader("anthropic-version", anthropicAPIVersion).
		SetTimeout(timeout)
	return &AnthropicFetcher{
		apiKey: apiKey,
		client: client,
		log:    log,
	}
}

// WithBaseURL points the fetcher at a different API host. Tests use this
// to target a local server.
func (f *AnthropicFetcher) WithBaseURL(url string) *AnthropicFetcher {
	f.client.SetBaseURL(url)
	return f
}

func (f *AnthropicFetcher) ProviderID() string {
	return provider.Anthropic
}

func (f *AnthropicFetcher) ProviderName() string {
	return provider.DisplayName(provider.Anthropic)
}

func (f *AnthropicFetcher) HasCredentials() bool {
	return f.apiKey != ""
}

type anthropicModelsResponse struct {
	Data    []anthropicModel `json:"data"`
	HasMore bool             `json:"has_more"`
	LastID  string           `json:"last_id"`
}

type anthropicModel struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

// Fetch walks the paginated model listing using after_id cursors.
func (f *AnthropicFetcher) Fetch(ctx context.Context) ([]catalog.ModelRecord, error) {
	if !f.HasCredentials() {
		return nil, ErrNoCredentials
	}

	var descriptors []Descriptor
	afterID := ""
	for {
		var result anthropicModelsResponse
		req := f.client.R().
			SetContext(ctx).
			SetHeader("x-api-key", f.apiKey).
			SetQueryParam("limit", anthropicPageLimit).
			SetResult(&result)
		if afterID != "" {
			req.SetQueryParam("after_id", afterID)
		}

		resp, err := req.Get("/models")
		if err != nil {
			return nil, fmt.Errorf("failed to query Anthropic models API: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("Anthropic models API error (status %d): %s", resp.StatusCode(), resp.String())
		}

		for _, m := range result.Data {
			descriptors = append(descriptors, Descriptor{
				ID:          m.ID,
				DisplayName: m.DisplayName,
			})
		}
		if !result.HasMore || result.LastID == "" {
			break
		}
		afterID = result.LastID
	}

	f.log.Debugf("anthropic listing returned %d models", len(descriptors))
	return Transform(f.ProviderID(), f.ProviderName(), descriptors), nil
}
