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

const googleBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GoogleFetcher lists models from the Generative Language API.
type GoogleFetcher struct {
	apiKey string
	client *resty.Client
	log    logger.Logger
}

// NewGoogleFetcher creates a fetcher for the Google Generative Language
// model listing.
func NewGoogleFetcher(apiKey string, timeout time.Duration, log logger.Logger) *GoogleFetcher {
	client := resty.New().
		SetBaseURL(googleBaseURL).
		SetHeader("User-Agent", userAgent).
		SetTimeout(timeout)
	return &GoogleFetcher{
		apiKey: apiKey,
		client: client,
		log:    log,
	}
}

// WithBaseURL points the fetcher at a different API host. Tests use this
// to target a local server.
func (f *GoogleFetcher) WithBaseURL(url string) *GoogleFetcher {
	f.client.SetBaseURL(url)
	return f
}

func (f *GoogleFetcher) ProviderID() string {
	return provider.Google
}

func (f *GoogleFetcher) ProviderName() string {
	return provider.DisplayName(provider.Google)
}

func (f *GoogleFetcher) HasCredentials() bool {
	return f.apiKey != ""
}

type googleModelsResponse struct {
	Models        []googleModel `json:"models"`
	NextPageToken string        `json:"nextPageToken"`
}

type googleModel struct {
	Name                       string   `json:"name"`
	DisplayName                string   `json:"displayName"`
	Description                string   `json:"description"`
	Version                    string   `json:"version"`
	SupportedGenerationMethods []string `json:"supportedGenerationMethods"`
}

// Fetch walks the paginated model listing. Record ids keep the models/
// resource prefix the API uses.
func (f *GoogleFetcher) Fetch(ctx context.Context) ([]catalog.ModelRecord, error) {
	if !f.HasCredentials() {
		return nil, ErrNoCredentials
	}

	var descriptors []Descriptor
	pageToken := ""
	for {
		var result googleModelsResponse
		req := f.client.R().
			SetContext(ctx).
			SetHeader("x-goog-api-key", f.apiKey).
			SetQueryParam("pageSize", "100").
			SetResult(&result)
		if pageToken != "" {
			req.SetQueryParam("pageToken", pageToken)
		}

		resp, err := req.Get("/models")
		if err != nil {
			return nil, fmt.Errorf("failed to query Google models API: %w", err)
		}
		if resp.IsError() {
			return nil, fmt.Errorf("Google models API error (status %d): %s", resp.StatusCode(), resp.String())
		}

		for _, m := range result.Models {
			descriptors = append(descriptors, Descriptor{
				ID:               m.Name,
				DisplayName:      m.DisplayName,
				Description:      m.Description,
				Version:          m.Version,
				SupportedActions: m.SupportedGenerationMethods,
			})
		}
		if result.NextPageToken == "" {
			break
		}
		pageToken = result.NextPageToken
	}

	f.log.Debugf("google listing returned %d models", len(descriptors))
	return Transform(f.ProviderID(), f.ProviderName(), descriptors), nil
}
