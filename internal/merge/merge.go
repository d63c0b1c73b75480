// Package merge reconciles freshly fetched model records with the records
// already stored in the catalog.
package merge

import (
	"sort"

	"github.com/modelsync-hq/modelsync/internal/catalog"
)

// Options control how fetched records are reconciled with stored ones.
type Options struct {
	// RefreshCaps discards stored capability flags in favor of the
	// classifier's fresh verdicts.
	RefreshCaps bool
}

// Result is the outcome of one reconciliation.
type Result struct {
	// Records is the merged managed set, in fetch order.
	Records []catalog.ModelRecord
	// Dropped holds stored records whose keys no longer appear in the
	// fetched listings, sorted by key for stable logging.
	Dropped []catalog.ModelRecord
	// Preserved counts merged records that kept at least one stored flag.
	Preserved int
}

// Merge reconciles fetched records with the stored managed set. The fetch
// result is the authoritative membership list: stored records absent from
// it are dropped, which includes every record of a provider whose fetch
// failed or was skipped. Identity and name always come from the fresh
// candidate; capability flags defined on the stored record win over the
// classifier's verdict unless opts.RefreshCaps is set.
func Merge(stored, fetched []catalog.ModelRecord, opts Options) Result {
	prior := make(map[catalog.Key]catalog.ModelRecord, len(stored))
	for _, rec := range stored {
		prior[rec.Key()] = rec
	}

	res := Result{Records: make([]catalog.ModelRecord, 0, len(fetched))}
	seen := make(map[catalog.Key]bool, len(fetched))
	for _, candidate := range fetched {
		seen[candidate.Key()] = true
		if existing, ok := prior[candidate.Key()]; ok && !opts.RefreshCaps {
			if preserveFlags(&candidate, existing) {
				res.Preserved++
			}
		}
		res.Records = append(res.Records, candidate)
	}

	for key, rec := range prior {
		if !seen[key] {
			res.Dropped = append(res.Dropped, rec)
		}
	}
	sort.Slice(res.Dropped, func(i, j int) bool {
		a, b := res.Dropped[i], res.Dropped[j]
		if a.ProviderID != b.ProviderID {
			return a.ProviderID < b.ProviderID
		}
		return a.ID < b.ID
	})
	return res
}

// preserveFlags copies every capability flag the stored record defines
// onto the candidate and reports whether any flag carried over. Flags the
// stored record never had keep the candidate's classifier verdict.
func preserveFlags(candidate *catalog.ModelRecord, stored catalog.ModelRecord) bool {
	carried := false
	if stored.MultiModal != nil {
		candidate.MultiModal = stored.MultiModal
		carried = true
	}
	if stored.CanSearch != nil {
		candidate.CanSearch = stored.CanSearch
		carried = true
	}
	if stored.CanGenerateImages != nil {
		candidate.CanGenerateImages = stored.CanGenerateImages
		carried = true
	}
	if stored.IsAdvancedReasoner != nil {
		candidate.IsAdvancedReasoner = stored.IsAdvancedReasoner
		carried = true
	}
	if stored.CanAccessInternet != nil {
		candidate.CanAccessInternet = stored.CanAccessInternet
		carried = true
	}
	if stored.SupportsReasoning != nil {
		candidate.SupportsReasoning = stored.SupportsReasoning
		carried = true
	}
	return carried
}
