package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/shaharia-lab/telemetry-collector"
	"github.com/spf13/cobra"

	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/syncer"
	telemetryEvent "github.com/modelsync-hq/modelsync/internal/telemetry"
	"github.com/modelsync-hq/modelsync/internal/webserver"
)

// NewServeCmd creates a command to serve the catalog over HTTP
func NewServeCmd(c *cli.Container) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Version: c.Config.Version.VersionText(),
		Use:     "serve",
		Short:   "Serve the catalog and the sync API over HTTP",
		Long: `Start an HTTP server exposing the catalog, the provider registry, the
sync history and an endpoint to trigger a sync run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			defer c.Logger.Sync()

			cfg, err := c.LoadConfig()
			if err != nil {
				return err
			}

			if cfg.UsageTracking.Enabled {
				telemetryEvent.SendTelemetryEvent(
					context.Background(),
					c.Config,
					"cmd.serve",
					telemetry.SeverityInfo, "Starting web server",
					nil,
				)
			}

			if !cmd.Flags().Changed("port") {
				port = cfg.WebServer.Port
				if port == 0 {
					port = config.DefaultWebServerPort
				}
			}

			deps := buildSyncDeps(c, cfg)
			if deps.history != nil {
				defer deps.history.Close()
			}

			opts := syncer.Options{
				RefreshCaps:  cfg.Sync.RefreshCaps,
				EnableProbes: cfg.Sync.EnableProbes,
			}

			handler := webserver.NewHandler(deps.store, deps.service, deps.history, &cfg, opts, c.Logger)
			server := webserver.NewWebServer(strconv.Itoa(port), handler, c.Logger)

			if err := server.Start(); err != nil {
				return err
			}
			c.ThemeMgr.GetCurrentTheme().Success().Println(fmt.Sprintf("Web server listening on http://localhost:%d", port))
			c.ThemeMgr.GetCurrentTheme().Subtle().Println("Press Ctrl+C to stop.")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			c.ThemeMgr.GetCurrentTheme().Info().Println("\nShutting down...")
			return server.Stop()
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (defaults to the configured port)")

	return cmd
}
