package fetcher

import (
	"strings"
	"unicode"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/classifier"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// Transform converts raw listing descriptors into catalog records, deriving
// display names and seeding capability flags through the classifier.
func Transform(providerID, providerName string, descriptors []Descriptor) []catalog.ModelRecord {
	records := make([]catalog.ModelRecord, 0, len(descriptors))
	for _, d := range descriptors {
		name := displayName(providerID, d)
		caps := classifier.Classify(providerID, d.ID, name, classifier.Hints{
			Description:      d.Description,
			Version:          d.Version,
			SupportedActions: d.SupportedActions,
		})
		records = append(records, catalog.ModelRecord{
			ID:                 d.ID,
			Provider:           providerName,
			ProviderID:         providerID,
			Name:               name,
			MultiModal:         catalog.Bool(caps.MultiModal),
			CanSearch:          catalog.Bool(caps.CanSearch),
			CanGenerateImages:  catalog.Bool(caps.CanGenerateImages),
			IsAdvancedReasoner: catalog.Bool(caps.IsAdvancedReasoner),
			CanAccessInternet:  catalog.Bool(caps.CanAccessInternet),
			SupportsReasoning:  catalog.Bool(caps.SupportsReasoning),
		})
	}
	return records
}

// displayName picks the record's human-readable name. OpenAI listings only
// carry ids, so those are prettified (except DALL-E ids, which read fine
// as-is). Google resource names keep their models/ prefix in the record id
// but never in the name.
func displayName(providerID string, d Descriptor) string {
	name := d.DisplayName
	if name == "" {
		name = d.ID
	}
	switch providerID {
	case provider.OpenAI:
		if name == d.ID && !strings.HasPrefix(d.ID, "dall-e") {
			name = prettifyID(d.ID)
		}
	case provider.Google:
		if strings.HasPrefix(d.ID, "models/") {
			name = titleWords(strings.ReplaceAll(strings.ReplaceAll(name, "models/", ""), "-", " "))
		}
	}
	return name
}

// prettifyID turns a bare model id into a display name, e.g. "gpt-4o-mini"
// becomes "GPT 4O Mini".
func prettifyID(id string) string {
	name := titleWords(strings.NewReplacer("-", " ", "_", " ").Replace(id))
	name = strings.ReplaceAll(name, "Gpt", "GPT")
	name = strings.ReplaceAll(name, " Dall E", " DALL·E")
	return name
}

// titleWords uppercases the first letter of every run of letters and
// lowercases the rest. Digits and separators pass through, and a letter
// directly after a digit starts a new word, so "gpt 4o" becomes "Gpt 4O".
func titleWords(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
