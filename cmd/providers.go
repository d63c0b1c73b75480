package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// NewProvidersCmd creates a command to show the managed providers
func NewProvidersCmd(c *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "providers",
		Short:   "Show the managed providers and their credential status",
		Long:    `Display the providers whose model listings are synced, which environment variable carries each API key, and a selection of featured models.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.Logger.Sync()

			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}

			table := newTable("ID", "Name", "Env Var", "Credentials")
			for _, p := range provider.Managed() {
				status := "not configured"
				if cfg.ProviderAPIKey(p.ID) != "" {
					status = "configured"
				}
				table.Append([]string{p.ID, p.Name, p.EnvVar, status})
			}
			table.Render()

			currentTheme := c.ThemeMgr.GetCurrentTheme()
			for _, p := range provider.Managed() {
				currentTheme.Info().Println(fmt.Sprintf("\nFeatured %s models:", p.Name))
				for _, m := range p.FeaturedModels {
					fmt.Printf("  %-24s %s\n", m.Name, m.Description)
				}
			}

			return nil
		},
	}

	return cmd
}
