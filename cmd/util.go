package cmd

import (
	"os"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/fetcher"
	"github.com/modelsync-hq/modelsync/internal/filesystem"
	"github.com/modelsync-hq/modelsync/internal/history"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/probe"
	"github.com/modelsync-hq/modelsync/internal/syncer"
)

// newTable creates a tablewriter with the shared look of all commands.
func newTable(headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(headers)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	alignments := make([]int, len(headers))
	colors := make([]tablewriter.Colors, len(headers))
	for i := range headers {
		alignments[i] = tablewriter.ALIGN_LEFT
		colors[i] = tablewriter.Colors{tablewriter.Bold, tablewriter.FgCyanColor}
	}
	table.SetColumnAlignment(alignments)
	table.SetHeaderColor(colors...)

	return table
}

// flagMark renders a capability flag: yes, no, or "-" when the flag was
// never set on the record.
func flagMark(v *bool) string {
	switch {
	case v == nil:
		return "-"
	case *v:
		return "yes"
	default:
		return "no"
	}
}

// syncDeps bundles the stores and the sync service a command needs.
type syncDeps struct {
	store   *catalog.Store
	history *history.Store
	service *syncer.Service
}

// buildFetchers creates one fetcher per managed provider with the
// configured request timeout.
func buildFetchers(cfg config.Config, log logger.Logger) []fetcher.Fetcher {
	timeoutSeconds := cfg.Sync.TimeoutSeconds
	if timeoutSeconds <= 0 {
		timeoutSeconds = config.DefaultTimeoutSeconds
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	return []fetcher.Fetcher{
		fetcher.NewGoogleFetcher(cfg.Providers.Google.APIKey, timeout, log),
		fetcher.NewOpenAIFetcher(cfg.Providers.OpenAI.APIKey, timeout, log),
		fetcher.NewAnthropicFetcher(cfg.Providers.Anthropic.APIKey, timeout, log),
	}
}

// buildSyncDeps wires the catalog store, history store and sync service.
// A failed history store degrades to no run recording.
func buildSyncDeps(c *cli.Container, cfg config.Config) syncDeps {
	log := c.Logger
	store := catalog.NewStore(c.CatalogPath(cfg), log)

	historyStore, err := history.NewStore(c.Paths[filesystem.SyncHistoryDB], log)
	if err != nil {
		log.Warnf("sync history unavailable: %v", err)
		historyStore = nil
	}

	var prober probe.ImageProber
	if key := cfg.Providers.OpenAI.APIKey; key != "" {
		prober = probe.NewOpenAIProber(key, log)
	}

	service := syncer.NewService(store, buildFetchers(cfg, log), prober, historyStore, log)

	return syncDeps{store: store, history: historyStore, service: service}
}
