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

const openaiBaseURL = "https://api.openai.com/v1"

// OpenAIFetcher lists models from the OpenAI API.
type OpenAIFetcher struct {
	apiKey string
	client *resty.Client
	log    logger.Logger
}

// NewOpenAIFetcher creates a fetcher for the OpenAI model listing.
func NewOpenAIFetcher(apiKey string, timeout time.Duration, log logger.Logger) *OpenAIFetcher {
	client := resty.New().
		SetBaseURL(openaiBaseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
	return &OpenAIFetcher{
		apiKey: apiKey,
		client: client,
		log:    log,
	}
}

// WithBaseURL points the fetcher at a different API host. Tests use this
// to target a local server.
func (f *OpenAIFetcher) WithBaseURL(url string) *OpenAIFetcher {
	f.client.SetBaseURL(url)
	return f
}

func (f *OpenAIFetcher) ProviderID() string {
	return provider.OpenAI
}

func (f *OpenAIFetcher) ProviderName() string {
	return provider.DisplayName(provider.OpenAI)
}

func (f *OpenAIFetcher) HasCredentials() bool {
	return f.apiKey != ""
}

type openaiModelsResponse struct {
	Object string        `json:"object"`
	Data   []openaiModel `json:"data"`
}

type openaiModel struct {
	ID      string `json:"id"`
	Object  string `json:"object"`
	Created int64  `json:"created"`
	OwnedBy string `json:"owned_by"`
}

// Fetch retrieves the model listing. The API reports bare ids only, so
// display names are derived during transformation.
func (f *OpenAIFetcher) Fetch(ctx context.Context) ([]catalog.ModelRecord, error) {
	if !f.HasCredentials() {
		return nil, ErrNoCredentials
	}

	var result openaiModelsResponse
	resp, err := f.client.R().
		SetContext(ctx).
		SetAuthToken(f.apiKey).
		SetResult(&result).
		Get("/models")
	if err != nil {
		return nil, fmt.Errorf("failed to query OpenAI models API: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("OpenAI models API error (status %d): %s", resp.StatusCode(), resp.String())
	}

	descriptors := make([]Descriptor, 0, len(result.Data))
	for _, m := range result.Data {
		descriptors = append(descriptors, Descriptor{
			ID:          m.ID,
			DisplayName: m.ID,
			OwnedBy:     m.OwnedBy,
		})
	}

	f.log.Debugf("openai listing returned %d models", len(descriptors))
	return Transform(f.ProviderID(), f.ProviderName(), descriptors), nil
}
