package initializer

import (
	"context"
	"fmt"

	"github.com/shaharia-lab/telemetry-collector"
	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/logger"
	telemetryEvent "github.com/modelsync-hq/modelsync/internal/telemetry"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

// NewCmd creates an interactive init command
func NewCmd(cfg config.Config, appConfig *config.AppConfig, logger logger.Logger, themeManager *theme.Manager, initializer *Initializer) *cobra.Command {
	cmd := &cobra.Command{
		Version: appConfig.Version.VersionText(),
		Use:     "init",
		Short:   "Initialize ModelSync with a guided setup",
		Long:    `Start an interactive wizard to configure ModelSync with a series of questions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.UsageTracking.Enabled {
				telemetryEvent.SendTelemetryEvent(
					context.Background(),
					appConfig,
					"cmd.init",
					telemetry.SeverityInfo, "Starting initialization",
					nil,
				)
			}

			logger.Infof("Starting initialization...")
			defer logger.Sync()

			if err := initializer.Run(); err != nil {
				logger.Errorf("Initialization failed: %v", err)
				themeManager.GetCurrentTheme().Error().Println(fmt.Sprintf("Initialization failed: %v", err))
				return err
			}

			logger.Infof("Initialization complete")

			themeManager.GetCurrentTheme().Info().Println("\nRun 'modelsync sync' to reconcile your model catalog.")
			themeManager.GetCurrentTheme().Info().Println("Run 'modelsync help' to see the available commands.")

			return nil
		},
	}

	return cmd
}
