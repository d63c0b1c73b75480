// Package classifier derives capability flags for newly discovered models.
//
// The verdicts are best-effort approximations from model identifiers and
// listing metadata. They only seed records that have never been curated;
// the merger keeps hand-maintained flags over anything decided here.
package classifier

import "strings"

// Capabilities is the classifier's verdict for one model.
type Capabilities struct {
	MultiModal         bool
	CanSearch          bool
	CanGenerateImages  bool
	IsAdvancedReasoner bool
	CanAccessInternet  bool
	SupportsReasoning  bool
}

// Hints carries optional listing metadata some rules consult. Providers
// that do not report a field leave it zero.
type Hints struct {
	Description      string
	Version          string
	SupportedActions []string
}

// input is the normalized view rule predicates match against.
type input struct {
	id    string
	name  string
	hints Hints
}

func (in input) idHas(sub string) bool {
	return strings.Contains(in.id, sub)
}

func (in input) idHasPrefix(prefix string) bool {
	return strings.HasPrefix(in.id, prefix)
}

func (in input) anyHas(sub string) bool {
	return strings.Contains(in.id, sub) || strings.Contains(in.name, sub)
}

// rule pairs a predicate with the flag updates it applies.
type rule struct {
	when func(in input) bool
	then func(in input, c *Capabilities)
}

// Classify derives capability flags for a model. Every model starts out
// with SupportsReasoning set and everything else clear; the provider's
// rule table is then applied in order, so a later rule can refine what an
// earlier one decided. Models that end up unable to reason are never
// marked advanced reasoners.
func Classify(providerID, modelID, displayName string, hints Hints) Capabilities {
	in := input{
		id:    strings.ToLower(modelID),
		name:  strings.ToLower(displayName),
		hints: hints,
	}
	if in.name == "" {
		in.name = in.id
	}

	caps := Capabilities{SupportsReasoning: true}
	for _, r := range rulesFor(providerID) {
		if r.when(in) {
			r.then(in, &caps)
		}
	}

	if !caps.SupportsReasoning {
		caps.IsAdvancedReasoner = false
	}
	return caps
}
