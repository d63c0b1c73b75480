// Package syncer orchestrates a catalog sync run: load the stored
// catalog, fetch every provider's live listing, merge, optionally probe,
// write the result and record the run.
package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/fetcher"
	"github.com/modelsync-hq/modelsync/internal/history"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/merge"
	"github.com/modelsync-hq/modelsync/internal/probe"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// Options control a single sync run.
type Options struct {
	// RefreshCaps re-derives every capability flag instead of preserving
	// stored ones.
	RefreshCaps bool
	// EnableProbes verifies image support of eligible OpenAI models with
	// live API calls.
	EnableProbes bool
}

// ProviderOutcome is the result of one provider's fetch within a run.
type ProviderOutcome struct {
	ProviderID   string
	ProviderName string
	Records      []catalog.ModelRecord
	Err          error
}

// Success reports whether the fetch produced a listing.
func (o ProviderOutcome) Success() bool {
	return o.Err == nil
}

// Skipped reports whether the provider was skipped for lack of
// credentials.
func (o ProviderOutcome) Skipped() bool {
	return errors.Is(o.Err, fetcher.ErrNoCredentials)
}

// Status maps the outcome onto a history status.
func (o ProviderOutcome) Status() string {
	switch {
	case o.Err == nil:
		return history.StatusOK
	case o.Skipped():
		return history.StatusSkipped
	default:
		return history.StatusFailed
	}
}

// Report summarizes a completed sync run.
type Report struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Options    Options
	Providers  []ProviderOutcome
	Managed    int
	Other      int
	Dropped    int
	Preserved  int
	Probed     int
	Upgraded   int
}

// Total is the number of records written to the catalog.
func (r Report) Total() int {
	return r.Managed + r.Other
}

// Service runs catalog syncs.
type Service struct {
	store    *catalog.Store
	fetchers []fetcher.Fetcher
	prober   probe.ImageProber
	history  *history.Store
	log      logger.Logger
}

// NewService wires a sync service. prober and historyStore may be nil, in
// which case image probing is unavailable and runs are not recorded.
func NewService(store *catalog.Store, fetchers []fetcher.Fetcher, prober probe.ImageProber, historyStore *history.Store, log logger.Logger) *Service {
	return &Service{
		store:    store,
		fetchers: fetchers,
		prober:   prober,
		history:  historyStore,
		log:      log,
	}
}

// Run performs one sync. Provider failures degrade to empty listings and
// are reported per provider in the returned Report; only a failed catalog
// write makes Run return an error.
func (s *Service) Run(ctx context.Context, opts Options) (Report, error) {
	report := Report{
		RunID:     uuid.New().String(),
		StartedAt: time.Now().UTC(),
		Options:   opts,
	}

	stored := s.store.Load()
	s.log.Infof("loaded %d models from %s (%d managed, %d other)",
		stored.Total(), s.store.Path(), len(stored.Managed), len(stored.Other))

	var fetched []catalog.ModelRecord
	for _, f := range s.fetchers {
		outcome := s.fetchProvider(ctx, f)
		report.Providers = append(report.Providers, outcome)
		fetched = append(fetched, outcome.Records...)
	}

	res := merge.Merge(stored.Managed, fetched, merge.Options{RefreshCaps: opts.RefreshCaps})
	for _, dropped := range res.Dropped {
		s.log.Warnf("dropping stale model %s/%s: no longer listed by its provider", dropped.ProviderID, dropped.ID)
	}

	if opts.EnableProbes {
		s.probeImageSupport(ctx, res.Records, &report)
	}

	if err := s.store.Save(catalog.Catalog{Managed: res.Records, Other: stored.Other}); err != nil {
		report.FinishedAt = time.Now().UTC()
		return report, err
	}

	report.Managed = len(res.Records)
	report.Other = len(stored.Other)
	report.Dropped = len(res.Dropped)
	report.Preserved = res.Preserved
	report.FinishedAt = time.Now().UTC()

	s.recordRun(report)
	return report, nil
}

func (s *Service) fetchProvider(ctx context.Context, f fetcher.Fetcher) ProviderOutcome {
	outcome := ProviderOutcome{
		ProviderID:   f.ProviderID(),
		ProviderName: f.ProviderName(),
	}
	if !f.HasCredentials() {
		outcome.Err = fetcher.ErrNoCredentials
		s.log.Infof("skipping %s: %v", f.ProviderName(), outcome.Err)
		return outcome
	}

	s.log.Infof("fetching %s models", f.ProviderName())
	records, err := f.Fetch(ctx)
	if err != nil {
		outcome.Err = err
		s.log.Warnf("failed to fetch %s models: %v", f.ProviderName(), err)
		return outcome
	}
	outcome.Records = records
	s.log.Infof("fetched %d %s models", len(records), f.ProviderName())
	return outcome
}

// probeImageSupport upgrades merged OpenAI records whose live probe shows
// image input works. A positive probe beats a stored flag; a negative or
// failed probe changes nothing.
func (s *Service) probeImageSupport(ctx context.Context, records []catalog.ModelRecord, report *Report) {
	if s.prober == nil {
		s.log.Warnf("image probes requested but no prober is configured")
		return
	}
	for i := range records {
		rec := &records[i]
		if rec.ProviderID != provider.OpenAI || !probe.ShouldProbe(rec.ID) {
			continue
		}
		report.Probed++
		if s.prober.SupportsImageInput(ctx, rec.ID) {
			if !catalog.BoolValue(rec.MultiModal) {
				report.Upgraded++
				s.log.Infof("image probe upgraded %s to multiModal", rec.ID)
			}
			rec.MultiModal = catalog.Bool(true)
		}
	}
}

func (s *Service) recordRun(report Report) {
	if s.history == nil {
		return
	}
	run := history.Run{
		ID:            report.RunID,
		StartedAt:     report.StartedAt,
		FinishedAt:    report.FinishedAt,
		RefreshCaps:   report.Options.RefreshCaps,
		ProbesEnabled: report.Options.EnableProbes,
		TotalModels:   report.Total(),
		ManagedModels: report.Managed,
		OtherModels:   report.Other,
		DroppedModels: report.Dropped,
	}
	for _, outcome := range report.Providers {
		p := history.ProviderRun{
			ProviderID: outcome.ProviderID,
			Status:     outcome.Status(),
			Models:     len(outcome.Records),
		}
		if outcome.Err != nil {
			p.Detail = outcome.Err.Error()
		}
		run.Providers = append(run.Providers, p)
	}
	if err := s.history.RecordRun(run); err != nil {
		s.log.Warnf("could not record sync run: %v", err)
	}
}
