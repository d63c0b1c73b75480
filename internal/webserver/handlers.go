package webserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/history"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/provider"
	"github.com/modelsync-hq/modelsync/internal/syncer"
)

// Handler implements the API endpoints.
type Handler struct {
	store   *catalog.Store
	syncer  *syncer.Service
	history *history.Store
	cfg     *config.Config
	opts    syncer.Options
	log     logger.Logger

	// syncMu serializes sync runs triggered over the API so two requests
	// cannot write the catalog at the same time.
	syncMu sync.Mutex
}

// NewHandler wires the API endpoints. historyStore may be nil when the
// history database could not be opened; opts are the sync defaults a
// trigger request can override.
func NewHandler(store *catalog.Store, syncService *syncer.Service, historyStore *history.Store, cfg *config.Config, opts syncer.Options, log logger.Logger) *Handler {
	// Seed the catalog gauge so /metrics reflects the stored catalog
	// before the first sync runs through the API.
	updateCatalogMetrics(store.Load())

	return &Handler{
		store:   store,
		syncer:  syncService,
		history: historyStore,
		cfg:     cfg,
		opts:    opts,
		log:     log,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// ListModels returns the catalog, optionally filtered to one provider.
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Load()
	if providerID := r.URL.Query().Get("provider"); providerID != "" {
		cat = cat.FilterProvider(providerID)
	}
	writeJSON(w, http.StatusOK, map[string]any{"models": cat.Models()})
}

type providerStatus struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EnvVar     string `json:"envVar"`
	Configured bool   `json:"configured"`
	Models     int    `json:"models"`
}

// ListProviders returns the managed providers and whether each has a
// usable API key.
func (h *Handler) ListProviders(w http.ResponseWriter, r *http.Request) {
	cat := h.store.Load()
	counts := make(map[string]int)
	for _, rec := range cat.Managed {
		counts[rec.ProviderID]++
	}

	statuses := make([]providerStatus, 0, len(provider.Managed()))
	for _, p := range provider.Managed() {
		statuses = append(statuses, providerStatus{
			ID:         p.ID,
			Name:       p.Name,
			EnvVar:     p.EnvVar,
			Configured: h.cfg.ProviderAPIKey(p.ID) != "",
			Models:     counts[p.ID],
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"providers": statuses})
}

type providerRunResponse struct {
	ProviderID string `json:"providerId"`
	Status     string `json:"status"`
	Models     int    `json:"models"`
	Detail     string `json:"detail,omitempty"`
}

type runResponse struct {
	ID            string                `json:"id"`
	StartedAt     time.Time             `json:"startedAt"`
	FinishedAt    time.Time             `json:"finishedAt"`
	RefreshCaps   bool                  `json:"refreshCaps"`
	ProbesEnabled bool                  `json:"probesEnabled"`
	TotalModels   int                   `json:"totalModels"`
	ManagedModels int                   `json:"managedModels"`
	OtherModels   int                   `json:"otherModels"`
	DroppedModels int                   `json:"droppedModels"`
	Providers     []providerRunResponse `json:"providers"`
}

// ListHistory returns recent sync runs, newest first.
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	if h.history == nil {
		writeError(w, http.StatusServiceUnavailable, "sync history is unavailable")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		limit = parsed
	}

	runs, err := h.history.RecentRuns(limit)
	if err != nil {
		h.log.Errorf("failed to list sync history: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to list sync history")
		return
	}

	out := make([]runResponse, 0, len(runs))
	for _, run := range runs {
		resp := runResponse{
			ID:            run.ID,
			StartedAt:     run.StartedAt,
			FinishedAt:    run.FinishedAt,
			RefreshCaps:   run.RefreshCaps,
			ProbesEnabled: run.ProbesEnabled,
			TotalModels:   run.TotalModels,
			ManagedModels: run.ManagedModels,
			OtherModels:   run.OtherModels,
			DroppedModels: run.DroppedModels,
		}
		for _, p := range run.Providers {
			resp.Providers = append(resp.Providers, providerRunResponse{
				ProviderID: p.ProviderID,
				Status:     p.Status,
				Models:     p.Models,
				Detail:     p.Detail,
			})
		}
		out = append(out, resp)
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": out})
}

type syncRequest struct {
	RefreshCaps  *bool `json:"refreshCaps"`
	EnableProbes *bool `json:"enableProbes"`
}

type syncResponse struct {
	RunID     string                `json:"runId"`
	StartedAt time.Time             `json:"startedAt"`
	Finished  time.Time             `json:"finishedAt"`
	Managed   int                   `json:"managedModels"`
	Other     int                   `json:"otherModels"`
	Dropped   int                   `json:"droppedModels"`
	Preserved int                   `json:"preservedModels"`
	Probed    int                   `json:"probedModels"`
	Upgraded  int                   `json:"upgradedModels"`
	Providers []providerRunResponse `json:"providers"`
}

// TriggerSync runs a sync now. The request body may override the
// configured refresh and probe defaults.
func (h *Handler) TriggerSync(w http.ResponseWriter, r *http.Request) {
	opts := h.opts
	var req syncRequest
	// An empty body means "use the configured defaults".
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.RefreshCaps != nil {
		opts.RefreshCaps = *req.RefreshCaps
	}
	if req.EnableProbes != nil {
		opts.EnableProbes = *req.EnableProbes
	}

	h.syncMu.Lock()
	report, err := h.syncer.Run(r.Context(), opts)
	h.syncMu.Unlock()
	if err != nil {
		syncRunsTotal.WithLabelValues("error").Inc()
		h.log.Errorf("sync run failed: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	syncRunsTotal.WithLabelValues("ok").Inc()
	updateCatalogMetrics(h.store.Load())

	resp := syncResponse{
		RunID:     report.RunID,
		StartedAt: report.StartedAt,
		Finished:  report.FinishedAt,
		Managed:   report.Managed,
		Other:     report.Other,
		Dropped:   report.Dropped,
		Preserved: report.Preserved,
		Probed:    report.Probed,
		Upgraded:  report.Upgraded,
	}
	for _, outcome := range report.Providers {
		p := providerRunResponse{
			ProviderID: outcome.ProviderID,
			Status:     outcome.Status(),
			Models:     len(outcome.Records),
		}
		if outcome.Err != nil {
			p.Detail = outcome.Err.Error()
		}
		resp.Providers = append(resp.Providers, p)
	}
	writeJSON(w, http.StatusOK, resp)
}
