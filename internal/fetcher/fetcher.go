// Package fetcher retrieves live model listings from the managed providers
// and turns them into catalog records.
package fetcher

import (
	"context"
	"errors"

	"github.com/modelsync-hq/modelsync/internal/catalog"
)

// userAgent identifies this tool to provider APIs.
const userAgent = "ModelSync/1.0"

// ErrNoCredentials marks a provider skipped because no API key is
// configured for it.
var ErrNoCredentials = errors.New("no API credentials configured")

// Descriptor is one raw entry from a provider's model listing.
type Descriptor struct {
	ID               string
	DisplayName      string
	Description      string
	Version          string
	OwnedBy          string
	SupportedActions []string
}

// Fetcher lists the live models of one managed provider.
type Fetcher interface {
	// ProviderID is the stable provider identifier records carry.
	ProviderID() string
	// ProviderName is the human-readable provider name records carry.
	ProviderName() string
	// HasCredentials reports whether the fetcher can authenticate.
	HasCredentials() bool
	// Fetch retrieves and transforms the provider's current listing.
	// It returns ErrNoCredentials when no API key is configured.
	Fetch(ctx context.Context) ([]catalog.ModelRecord, error)
}
