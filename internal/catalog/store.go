package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// Store reads and writes the catalog file.
type Store struct {
	path string
	log  logger.Logger
}

// NewStore creates a store for the catalog file at path.
func NewStore(path string, log logger.Logger) *Store {
	return &Store{
		path: path,
		log:  log,
	}
}

// Path returns the catalog file location.
func (s *Store) Path() string {
	return s.path
}

// document is the top-level shape of the catalog file.
type document struct {
	Models []json.RawMessage `json:"models"`
}

// Load reads the catalog from disk. A missing, unreadable or malformed
// file yields an empty catalog with a warning; a sync run rebuilds the
// managed portion from provider listings either way.
func (s *Store) Load() Catalog {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.log.Debugf("no existing catalog at %s, starting fresh", s.path)
		} else {
			s.log.Warnf("could not read catalog %s: %v", s.path, err)
		}
		return Catalog{}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Warnf("catalog %s is empty, starting fresh", s.path)
		return Catalog{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.log.Warnf("could not parse catalog %s: %v, starting fresh", s.path, err)
		return Catalog{}
	}

	var cat Catalog
	for _, raw := range doc.Models {
		var peek struct {
			ProviderID string `json:"providerId"`
		}
		_ = json.Unmarshal(raw, &peek)

		if !provider.IsManaged(peek.ProviderID) {
			var rec RawRecord
			_ = rec.UnmarshalJSON(raw)
			cat.Other = append(cat.Other, rec)
			continue
		}

		var rec ModelRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Keep a record we cannot parse rather than lose it.
			s.log.Warnf("malformed %s record in catalog, passing through unchanged: %v", peek.ProviderID, err)
			var keep RawRecord
			_ = keep.UnmarshalJSON(raw)
			cat.Other = append(cat.Other, keep)
			continue
		}
		cat.Managed = append(cat.Managed, rec)
	}

	s.log.Debugf("loaded catalog %s: %d managed, %d other", s.path, len(cat.Managed), len(cat.Other))
	return cat
}

// Save writes the catalog back to disk, managed and pass-through records
// combined, sorted by providerId then id so output is deterministic.
func (s *Store) Save(c Catalog) error {
	models := c.Models()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory: %w", err)
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create catalog file: %w", err)
	}
	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(struct {
		Models []any `json:"models"`
	}{Models: models}); err != nil {
		f.Close()
		return fmt.Errorf("failed to write catalog: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog file: %w", err)
	}

	s.log.Infof("wrote %d models to %s", len(models), s.path)
	return nil
}
