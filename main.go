package main

import (
	"fmt"
	"os"

	"github.com/modelsync-hq/modelsync/cmd"
	"github.com/modelsync-hq/modelsync/internal/cli"
	"github.com/modelsync-hq/modelsync/internal/initializer"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

var version = "0.0.1"
var commit = "none"
var date = "unknown"

func main() {
	container, err := cli.NewContainer(cli.InitOptions{
		Version:  version,
		Commit:   commit,
		Date:     date,
		LogLevel: logger.InfoLevel,
		Theme:    theme.NewProfessionalTheme(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error during initialization: %v\n", err)
		os.Exit(1)
	}

	log := container.Logger
	defer log.Sync()

	log.Infof("%s started", container.Config.Name)

	cfg, err := container.ConfigMgr.LoadConfig()
	if err != nil {
		log.Warnf("could not load configuration: %v", err)
	}

	setup := initializer.NewInitializer(log, container.Config, container.ThemeMgr, container.ConfigMgr)

	rootCmd := cmd.NewRootCmd(container)
	rootCmd.AddCommand(
		initializer.NewCmd(cfg, container.Config, log, container.ThemeMgr, setup),
		cmd.NewConfigCmd(container),
		cmd.NewSyncCmd(container),
		cmd.NewListCmd(container),
		cmd.NewProvidersCmd(container),
		cmd.NewHistoryCmd(container),
		cmd.NewServeCmd(container),
		cmd.NewUpdateCmd(container),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%s exited with error: %v", container.Config.Name, err)
		log.Sync()
		os.Exit(1)
	}

	log.Infof("%s exited successfully", container.Config.Name)
}
