package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/shaharia-lab/telemetry-collector"
	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/syncer"
	telemetryEvent "github.com/modelsync-hq/modelsync/internal/telemetry"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

// NewSyncCmd creates the sync command
func NewSyncCmd(c *cli.Container) *cobra.Command {
	var refreshCaps bool
	var enableProbes bool
	var catalogPath string

	cmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "sync",
		Short:   "Reconcile the model catalog with the provider listings",
		Long: `Fetch the current model listings from every configured provider, merge
them into the local catalog, and write the result back. Hand-curated
capability flags on existing records are preserved unless --refresh-caps
is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.Logger.Sync()

			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}

			if catalogPath != "" {
				cfg.Catalog.Path = catalogPath
			}

			opts := syncer.Options{
				RefreshCaps:  cfg.Sync.RefreshCaps,
				EnableProbes: cfg.Sync.EnableProbes,
			}
			if cmd.Flags().Changed("refresh-caps") {
				opts.RefreshCaps = refreshCaps
			}
			if cmd.Flags().Changed("enable-probes") {
				opts.EnableProbes = enableProbes
			}

			if cfg.UsageTracking.Enabled {
				telemetryEvent.SendTelemetryEvent(
					context.Background(),
					c.Config,
					"cmd.sync",
					telemetry.SeverityInfo, "Starting catalog sync",
					nil,
				)
			}

			deps := buildSyncDeps(c, cfg)
			if deps.history != nil {
				defer deps.history.Close()
			}

			currentTheme := c.ThemeMgr.GetCurrentTheme()
			currentTheme.Info().Println("Syncing model catalog...")

			report, err := deps.service.Run(cmd.Context(), opts)
			renderProviderOutcomes(currentTheme, report)
			if err != nil {
				currentTheme.Error().Println(fmt.Sprintf("Sync failed: %v", err))
				return err
			}

			renderSyncSummary(report)
			currentTheme.Success().Println(fmt.Sprintf("\n✅ Catalog written to %s", deps.store.Path()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&refreshCaps, "refresh-caps", false, "re-derive capability flags instead of preserving stored ones")
	cmd.Flags().BoolVar(&enableProbes, "enable-probes", false, "verify image support of eligible OpenAI models with live probes")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the catalog file (defaults to the configured location)")

	return cmd
}

func renderProviderOutcomes(currentTheme theme.Theme, report syncer.Report) {
	for _, outcome := range report.Providers {
		switch {
		case outcome.Skipped():
			currentTheme.Warning().Println(fmt.Sprintf("- %s: skipped, no API key configured", outcome.ProviderName))
		case outcome.Success():
			currentTheme.Success().Println(fmt.Sprintf("✓ %s: %d models", outcome.ProviderName, len(outcome.Records)))
		default:
			currentTheme.Error().Println(fmt.Sprintf("✗ %s: %v", outcome.ProviderName, outcome.Err))
		}
	}
}

func renderSyncSummary(report syncer.Report) {
	fmt.Println()
	table := newTable("Metric", "Count")
	table.Append([]string{"Total models", strconv.Itoa(report.Total())})
	table.Append([]string{"Managed models", strconv.Itoa(report.Managed)})
	table.Append([]string{"Other providers", strconv.Itoa(report.Other)})
	table.Append([]string{"Dropped stale", strconv.Itoa(report.Dropped)})
	table.Append([]string{"Preserved flags", strconv.Itoa(report.Preserved)})
	if report.Options.EnableProbes {
		table.Append([]string{"Probed models", strconv.Itoa(report.Probed)})
		table.Append([]string{"Probe upgrades", strconv.Itoa(report.Upgraded)})
	}
	table.Render()
}
