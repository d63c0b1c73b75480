// Package probe verifies image input support with a minimal live API call.
//
// Listing endpoints do not say whether a chat model accepts images, so the
// only reliable signal is to send one and see if the API objects. The
// request is as small as it gets: a 1x1 transparent PNG and a five token
// completion budget.
package probe

import (
	"context"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/modelsync-hq/modelsync/internal/logger"
)

// transparentPixel is a 1x1 transparent PNG as a data URI.
const transparentPixel = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAQAAAC1HAwCAAAAC0lEQVR4nGNgYAAAAAMAASsJTYQAAAAASUVORK5CYII="

const (
	probePrompt    = "describe"
	probeMaxTokens = 5
)

// ImageProber checks whether a model accepts image input.
type ImageProber interface {
	SupportsImageInput(ctx context.Context, modelID string) bool
}

// ShouldProbe reports whether a model id belongs to the families worth
// probing: current and future chat models whose image support is unclear
// from the id alone.
func ShouldProbe(modelID string) bool {
	id := strings.ToLower(modelID)
	return strings.HasPrefix(id, "gpt-4o") || strings.HasPrefix(id, "o") || strings.HasPrefix(id, "gpt-5")
}

// OpenAIProber probes models through the OpenAI chat completions API.
type OpenAIProber struct {
	client *openai.Client
	log    logger.Logger
}

// NewOpenAIProber creates a prober authenticated with apiKey. Extra
// request options are applied after the defaults, so tests can redirect
// the prober at a local server.
func NewOpenAIProber(apiKey string, log logger.Logger, opts ...option.RequestOption) *OpenAIProber {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)
	return &OpenAIProber{
		client: openai.NewClient(options...),
		log:    log,
	}
}

// SupportsImageInput sends a tiny vision request to the model. Any error,
// from a rejected content type to a network failure, counts as "no".
func (p *OpenAIProber) SupportsImageInput(ctx context.Context, modelID string) bool {
	_, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:     openai.F(openai.ChatModel(modelID)),
		MaxTokens: openai.Int(probeMaxTokens),
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessageParts(
				openai.TextPart(probePrompt),
				openai.ImagePart(transparentPixel),
			),
		}),
	})
	if err != nil {
		p.log.Debugf("image probe for %s failed: %v", modelID, err)
		return false
	}
	return true
}

var _ ImageProber = (*OpenAIProber)(nil)
