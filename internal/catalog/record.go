// Package catalog defines the persisted model catalog and its JSON store.
//
// The catalog file holds a single "models" list mixing records this tool
// manages (Google, OpenAI, Anthropic) with records of other providers.
// Managed records are parsed into ModelRecord; everything else is carried
// as an opaque RawRecord so hand-maintained entries survive a sync
// byte-for-byte apart from re-indentation.
package catalog

import (
	"encoding/json"
	"sort"
)

// ModelRecord is one managed catalog entry. Capability flags are pointers
// so a flag that was never set on a stored record can be told apart from a
// flag explicitly set to false; the merger relies on that distinction.
type ModelRecord struct {
	ID         string `json:"id"`
	Provider   string `json:"provider"`
	ProviderID string `json:"providerId"`
	Name       string `json:"name"`

	MultiModal         *bool `json:"multiModal,omitempty"`
	CanSearch          *bool `json:"canSearch,omitempty"`
	CanGenerateImages  *bool `json:"canGenerateImages,omitempty"`
	IsAdvancedReasoner *bool `json:"isAdvancedReasoner,omitempty"`
	CanAccessInternet  *bool `json:"canAccessInternet,omitempty"`
	SupportsReasoning  *bool `json:"supportsReasoning,omitempty"`
}

// Key identifies a record within the catalog. Model ids are only unique
// per provider, so both parts are needed.
type Key struct {
	ProviderID string
	ID         string
}

// Key returns the record's catalog identity.
func (m ModelRecord) Key() Key {
	return Key{ProviderID: m.ProviderID, ID: m.ID}
}

// Bool returns a pointer to v for populating capability flags.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences a capability flag, treating an undefined flag
// as false.
func BoolValue(p *bool) bool {
	return p != nil && *p
}

// RawRecord is a catalog entry for a provider this tool does not manage.
// The original bytes are kept and written back verbatim, so fields the
// schema does not know about are never lost.
type RawRecord struct {
	ProviderID string
	ID         string
	Raw        json.RawMessage
}

// UnmarshalJSON keeps the raw bytes and peeks at the identifying fields.
// Entries that are not objects, or objects without id/providerId, still
// round-trip; they simply sort with empty keys.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	var peek struct {
		ID         string `json:"id"`
		ProviderID string `json:"providerId"`
	}
	// Best effort: a non-object entry is preserved without identity.
	if err := json.Unmarshal(data, &peek); err == nil {
		r.ID = peek.ID
		r.ProviderID = peek.ProviderID
	}
	r.Raw = append(r.Raw[:0], data...)
	return nil
}

// MarshalJSON writes the preserved bytes back unchanged.
func (r RawRecord) MarshalJSON() ([]byte, error) {
	if len(r.Raw) == 0 {
		return []byte("null"), nil
	}
	return r.Raw, nil
}

// Catalog is the in-memory form of the catalog file, split into records
// this tool manages and records it passes through untouched.
type Catalog struct {
	Managed []ModelRecord
	Other   []RawRecord
}

// Total is the number of records the catalog would write.
func (c Catalog) Total() int {
	return len(c.Managed) + len(c.Other)
}

// FilterProvider returns the catalog reduced to a single provider id.
func (c Catalog) FilterProvider(providerID string) Catalog {
	var out Catalog
	for _, m := range c.Managed {
		if m.ProviderID == providerID {
			out.Managed = append(out.Managed, m)
		}
	}
	for _, r := range c.Other {
		if r.ProviderID == providerID {
			out.Other = append(out.Other, r)
		}
	}
	return out
}

// Models returns every record, managed and pass-through combined, sorted
// by providerId then id. This is the serialization order of the catalog
// file and of API responses.
func (c Catalog) Models() []any {
	type entry struct {
		providerID string
		id         string
		value      any
	}
	entries := make([]entry, 0, c.Total())
	for _, m := range c.Managed {
		entries = append(entries, entry{providerID: m.ProviderID, id: m.ID, value: m})
	}
	for _, r := range c.Other {
		entries = append(entries, entry{providerID: r.ProviderID, id: r.ID, value: r})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].providerID != entries[j].providerID {
			return entries[i].providerID < entries[j].providerID
		}
		return entries[i].id < entries[j].id
	})

	models := make([]any, 0, len(entries))
	for _, e := range entries {
		models = append(models, e.value)
	}
	return models
}
