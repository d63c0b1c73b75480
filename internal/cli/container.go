// Package cli assembles the shared dependencies of every command.
package cli

import (
	"fmt"

	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/filesystem"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.AppConfig
	Filesystem *filesystem.Filesystem
	Paths      map[filesystem.PathType]string
	Logger     logger.Logger
	ThemeMgr   *theme.Manager
	ConfigMgr  config.Manager
}

// InitOptions contains options for initialization
type InitOptions struct {
	Version  string
	Commit   string
	Date     string
	LogLevel logger.LogLevel
	Theme    theme.Theme
}

// NewContainer creates and initializes all application dependencies
func NewContainer(opts InitOptions) (*Container, error) {
	container := &Container{}
	var err error

	if opts.Version == "" {
		return nil, fmt.Errorf("version is required")
	}

	if opts.Commit == "" {
		return nil, fmt.Errorf("commit is required")
	}

	if opts.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	if opts.LogLevel == "" {
		return nil, fmt.Errorf("log level is required")
	}

	if opts.Theme == nil {
		return nil, fmt.Errorf("theme is required")
	}

	container.Config = &config.AppConfig{
		Name: "ModelSync",
		Repository: config.Repository{
			Owner: "modelsync-hq",
			Repo:  "modelsync",
		},
		Version: config.Version{
			Version: opts.Version,
			Commit:  opts.Commit,
			Date:    opts.Date,
		},
	}

	container.ThemeMgr = theme.NewManager(opts.Theme)

	container.Filesystem = filesystem.NewAppFilesystem(container.Config)

	container.Paths, err = container.Filesystem.EnsureAllPaths()
	if err != nil {
		return nil, fmt.Errorf("failed to ensure all application paths: %w", err)
	}

	if container.Paths[filesystem.ConfigFilePath] == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	container.ConfigMgr = config.NewFileManager(container.Paths[filesystem.ConfigFilePath])

	loggerConfig := logger.Config{
		FilePath: container.Paths[filesystem.LogsFilePath],
		LogLevel: opts.LogLevel,
	}

	container.Logger, err = logger.NewZapLogger(loggerConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	container.Logger.Debugf("application container initialized")

	return container, nil
}

// LoadConfig loads the persisted configuration with environment overrides
// applied on top.
func (c *Container) LoadConfig() (config.Config, error) {
	cfg, err := c.ConfigMgr.LoadConfig()
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	overrides, err := config.LoadEnvOverrides()
	if err != nil {
		return config.Config{}, err
	}
	overrides.Apply(&cfg)

	return cfg, nil
}

// CatalogPath resolves the catalog file location: an explicit path from the
// configuration wins over the default under the data directory.
func (c *Container) CatalogPath(cfg config.Config) string {
	if cfg.Catalog.Path != "" {
		return cfg.Catalog.Path
	}
	return c.Paths[filesystem.CatalogFilePath]
}
