package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/cli"
)

// NewRootCmd creates and returns the root command
func NewRootCmd(container *cli.Container) *cobra.Command {
	rootCmd := &cobra.Command{
		Version: container.Config.Version.VersionText(),
		Use:     "modelsync",
		Short:   "Keep your AI model catalog in sync",
		Long: `ModelSync - Reconcile a local model catalog with the live provider
            listings from Google, OpenAI and Anthropic while preserving your
            hand-curated capability flags.`,
		RunE: func(cm *cobra.Command, args []string) error {
			themeManager := container.ThemeMgr
			themeManager.DisplayBanner(fmt.Sprintf("Welcome to %s", container.Config.Name), 40, "Keep your AI model catalog in sync")
			fmt.Println("")
			themeManager.GetCurrentTheme().Warning().Println("Run 'modelsync init' to configure the tool, then 'modelsync sync' to reconcile your catalog.")

			return nil
		},
	}

	return rootCmd
}
