package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/catalog"
	"github.com/modelsync-hq/modelsync/internal/cli"
)

// NewListCmd creates a command to list the models in the catalog
func NewListCmd(c *cli.Container) *cobra.Command {
	var providerID string
	var catalogPath string

	cmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "list",
		Short:   "List the models in the catalog",
		Long:    `Display the managed model records of the local catalog with their capability flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.Logger.Sync()

			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}
			if catalogPath != "" {
				cfg.Catalog.Path = catalogPath
			}

			store := catalog.NewStore(c.CatalogPath(cfg), c.Logger)
			cat := store.Load()
			if providerID != "" {
				cat = cat.FilterProvider(providerID)
			}

			if cat.Total() == 0 {
				c.ThemeMgr.GetCurrentTheme().Warning().Println("No models in the catalog. Run 'modelsync sync' first.")
				return nil
			}

			table := newTable("Provider", "Model ID", "Name", "Multimodal", "Search", "Images", "Internet", "Reasoning", "Advanced")
			for _, rec := range cat.Managed {
				table.Append([]string{
					rec.ProviderID,
					rec.ID,
					rec.Name,
					flagMark(rec.MultiModal),
					flagMark(rec.CanSearch),
					flagMark(rec.CanGenerateImages),
					flagMark(rec.CanAccessInternet),
					flagMark(rec.SupportsReasoning),
					flagMark(rec.IsAdvancedReasoner),
				})
			}
			table.Render()

			if len(cat.Other) > 0 {
				fmt.Println()
				c.ThemeMgr.GetCurrentTheme().Subtle().Println(fmt.Sprintf("%d records from other providers are kept unchanged.", len(cat.Other)))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&providerID, "provider", "", "only show models of this provider id")
	cmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the catalog file (defaults to the configured location)")

	return cmd
}
