package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/filesystem"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// NewConfigCmd creates a config command
func NewConfigCmd(c *cli.Container) *cobra.Command {
	cfgCmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "config",
		Short:   "Manage ModelSync configuration",
		Long:    `Commands to manage and view your ModelSync configuration.`,
	}

	cfgCmd.AddCommand(NewConfigShowCmd(c))
	return cfgCmd
}

// NewConfigShowCmd creates a command to show the stored configuration with
// API keys redacted
func NewConfigShowCmd(c *cli.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the current configuration",
		Long:  `Display the stored configuration file with API keys redacted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.ConfigMgr.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			for _, p := range provider.Managed() {
				if cfg.ProviderAPIKey(p.ID) != "" {
					cfg.SetProviderAPIKey(p.ID, "********")
				}
			}

			out, err := yaml.Marshal(&cfg)
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}

			color.New(color.FgHiCyan, color.Bold).Println("\n📄 Configuration")
			color.New(color.FgHiWhite).Printf("Located at: %s\n\n", c.Paths[filesystem.ConfigFilePath])
			fmt.Println(string(out))

			return nil
		},
	}

	return cmd
}
