package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/filesystem"
	"github.com/modelsync-hq/modelsync/internal/history"
)

// NewHistoryCmd creates a command to show recent sync runs
func NewHistoryCmd(c *cli.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "history",
		Short:   "Show recent sync runs",
		Long:    `Display the most recent sync runs with their per-provider outcomes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.Logger.Sync()

			store, err := history.NewStore(c.Paths[filesystem.SyncHistoryDB], c.Logger)
			if err != nil {
				return fmt.Errorf("failed to open sync history: %w", err)
			}
			defer store.Close()

			runs, err := store.RecentRuns(limit)
			if err != nil {
				return fmt.Errorf("failed to list sync runs: %w", err)
			}

			if len(runs) == 0 {
				c.ThemeMgr.GetCurrentTheme().Warning().Println("No sync runs recorded yet. Run 'modelsync sync' first.")
				return nil
			}

			table := newTable("Started", "Duration", "Models", "Dropped", "Providers")
			for _, run := range runs {
				table.Append([]string{
					run.StartedAt.Local().Format("2006-01-02 15:04:05"),
					run.FinishedAt.Sub(run.StartedAt).Round(time.Millisecond).String(),
					strconv.Itoa(run.TotalModels),
					strconv.Itoa(run.DroppedModels),
					providerSummary(run.Providers),
				})
			}
			table.Render()

			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", history.DefaultLimit, "number of runs to show")

	return cmd
}

func providerSummary(providers []history.ProviderRun) string {
	parts := make([]string, 0, len(providers))
	for _, p := range providers {
		parts = append(parts, fmt.Sprintf("%s:%s", p.ProviderID, p.Status))
	}
	return strings.Join(parts, " ")
}
