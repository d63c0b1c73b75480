package classifier

import (
	"regexp"

	"github.com/modelsync-hq/modelsync/internal/provider"
)

// geminiExpAdvanced matches experimental Gemini ids carrying a pro or
// advanced tier marker, e.g. gemini-exp-1206-pro.
var geminiExpAdvanced = regexp.MustCompile(`exp.*(pro|advanced)`)

// rulesFor returns the ordered rule table for a provider. Unknown
// providers get no rules and keep the baseline verdict.
func rulesFor(providerID string) []rule {
	switch providerID {
	case provider.Google:
		return googleRules
	case provider.OpenAI:
		return openaiRules
	case provider.Anthropic:
		return anthropicRules
	}
	return nil
}

func isGemini(in input) bool {
	return in.anyHas("gemini")
}

// geminiRecent covers the 1.5 generation onward plus experimental and
// preview builds.
func geminiRecent(in input) bool {
	return in.idHas("gemini") &&
		(in.idHas("1.5") || in.idHas("2.0") || in.idHas("2.5") || in.idHas("exp") || in.idHas("preview"))
}

var googleRules = []rule{
	{
		when: isGemini,
		then: func(in input, c *Capabilities) { c.MultiModal = true },
	},
	{
		when: func(in input) bool {
			return isGemini(in) && (in.idHas("pro") || in.idHas("ultra") ||
				geminiExpAdvanced.MatchString(in.id) || in.idHas("gemini-1.5") || in.idHas("gemini-2.5"))
		},
		then: func(in input, c *Capabilities) { c.IsAdvancedReasoner = true },
	},
	{
		// Flash tiers trade reasoning depth for speed, except the 2.5
		// and experimental builds.
		when: func(in input) bool {
			return isGemini(in) && in.idHas("flash") && !(in.idHas("2.5") || in.idHas("exp"))
		},
		then: func(in input, c *Capabilities) { c.IsAdvancedReasoner = false },
	},
	{
		when: func(in input) bool { return in.idHas("imagen") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = true
			c.CanGenerateImages = true
			c.SupportsReasoning = false
		},
	},
	{
		// A listing with no supported actions that is neither Gemini nor
		// Imagen is some auxiliary model (embeddings, AQA) rather than a
		// reasoning one.
		when: func(in input) bool {
			return len(in.hints.SupportedActions) == 0 && !(in.idHas("gemini") || in.idHas("imagen"))
		},
		then: func(in input, c *Capabilities) { c.SupportsReasoning = false },
	},
	{
		when: geminiRecent,
		then: func(in input, c *Capabilities) {
			c.CanSearch = true
			c.CanAccessInternet = true
		},
	},
	{
		when: func(in input) bool {
			return geminiRecent(in) && (in.idHas("2.5") || in.idHas("pro"))
		},
		then: func(in input, c *Capabilities) { c.CanGenerateImages = true },
	},
}

var openaiRules = []rule{
	{
		when: func(in input) bool { return in.idHasPrefix("gpt-3.5") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = false
			c.IsAdvancedReasoner = false
		},
	},
	{
		// mini and nano tiers are less reasoning focused.
		when: func(in input) bool { return in.idHasPrefix("gpt-4o") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = true
			c.IsAdvancedReasoner = !(in.idHas("mini") || in.idHas("nano"))
		},
	},
	{
		// Plain gpt-4 entries are text-only unless a 4o or 4.1 variant.
		when: func(in input) bool { return in.idHasPrefix("gpt-4") && !in.idHasPrefix("gpt-4o") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = in.idHas("gpt-4o") || in.idHas("4.1") || in.idHas("4o")
			c.IsAdvancedReasoner = true
		},
	},
	{
		// Conservative default until probed.
		when: func(in input) bool { return in.idHasPrefix("gpt-5") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = false
			c.IsAdvancedReasoner = true
		},
	},
	{
		// o-series (o1, o3, o4) reasoning models.
		when: func(in input) bool { return in.idHasPrefix("o") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = true
			c.IsAdvancedReasoner = !in.idHas("mini")
		},
	},
	{
		when: func(in input) bool { return in.idHasPrefix("dall-e") || in.idHasPrefix("gpt-image") },
		then: func(in input, c *Capabilities) {
			c.MultiModal = true
			c.CanGenerateImages = true
			c.SupportsReasoning = false
		},
	},
}

func claudeAdvancedTier(in input) bool {
	return in.idHas("opus") || in.idHas("claude-3-5-sonnet") || in.idHas("claude-3.7-sonnet")
}

func claudeSonnet3(in input) bool {
	return in.idHas("sonnet") && in.idHas("claude-3")
}

var anthropicRules = []rule{
	{
		// The Claude 3 generation introduced image input.
		when: func(in input) bool { return in.idHas("claude-3") },
		then: func(in input, c *Capabilities) { c.MultiModal = true },
	},
	{
		when: claudeAdvancedTier,
		then: func(in input, c *Capabilities) { c.IsAdvancedReasoner = true },
	},
	{
		when: claudeSonnet3,
		then: func(in input, c *Capabilities) { c.IsAdvancedReasoner = true },
	},
	{
		when: func(in input) bool {
			return (in.idHas("haiku") || in.idHas("instant")) &&
				!claudeAdvancedTier(in) && !claudeSonnet3(in)
		},
		then: func(in input, c *Capabilities) { c.IsAdvancedReasoner = false },
	},
	{
		// Claude gains search and image output through tool use on the
		// newer Sonnet tiers.
		when: func(in input) bool {
			return in.idHas("claude-3-5-sonnet") || in.idHas("claude-3.7-sonnet")
		},
		then: func(in input, c *Capabilities) {
			c.CanSearch = true
			c.CanAccessInternet = true
			c.CanGenerateImages = true
		},
	},
}
