// Package initializer drives the interactive setup wizard behind the
// init command.
package initializer

import (
	"fmt"

	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/logger"
	"github.com/modelsync-hq/modelsync/internal/telemetry"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

// Initializer handles the interactive setup process
type Initializer struct {
	Config        config.Config
	IsUpdateMode  bool
	configManager config.Manager
	log           logger.Logger
	appConfig     *config.AppConfig
	cliTheme      *theme.Manager
}

// NewInitializer creates a new initializer with default dependencies
func NewInitializer(log logger.Logger, appCfg *config.AppConfig, theme *theme.Manager, configManager config.Manager) *Initializer {
	return &Initializer{
		log:           log,
		appConfig:     appCfg,
		configManager: configManager,
		cliTheme:      theme,
	}
}

// WithConfigManager sets a custom config manager (useful for testing)
func (i *Initializer) WithConfigManager(cm config.Manager) *Initializer {
	i.configManager = cm
	return i
}

// Run starts the interactive configuration process
func (i *Initializer) Run() error {
	i.log.Debugf("starting configuration process")

	i.IsUpdateMode = i.configManager.ConfigExists()
	i.log.Debugf("update mode: %v", i.IsUpdateMode)

	if i.IsUpdateMode {
		cfg, err := i.configManager.LoadConfig()
		if err != nil {
			i.log.Errorf("error loading configuration: %v", err)
			return fmt.Errorf("error loading configuration: %v", err)
		}
		i.Config = cfg

		i.cliTheme.GetCurrentTheme().Primary().Println("🔄 Configuration Update Mode")
		i.cliTheme.GetCurrentTheme().Warning().Println("You are about to update your existing configuration. Press Enter to keep current values, or provide new ones.")
	} else {
		i.Config = (&config.Config{}).Default()
		i.cliTheme.GetCurrentTheme().Primary().Println("🔧 Initial Configuration")
		i.cliTheme.GetCurrentTheme().Info().Println("Please configure the model catalog sync for the first time. You can always change the configuration later.")
	}

	fmt.Println()

	if err := i.ConfigureProviders(); err != nil {
		i.log.Errorf("error configuring providers: %v", err)
		return fmt.Errorf("error configuring providers: %v", err)
	}

	if err := i.ConfigureSync(); err != nil {
		i.log.Errorf("error configuring sync behaviour: %v", err)
		return fmt.Errorf("error configuring sync behaviour: %v", err)
	}

	if err := i.ConfigureCatalog(); err != nil {
		i.log.Errorf("error configuring catalog: %v", err)
		return fmt.Errorf("error configuring catalog: %v", err)
	}

	if err := i.ConfigureWebServer(); err != nil {
		i.log.Errorf("error configuring web server: %v", err)
		return fmt.Errorf("error configuring web server: %v", err)
	}

	if err := telemetry.Configure(i.cliTheme, &i.Config); err != nil {
		i.log.Errorf("error configuring telemetry: %v", err)
		return fmt.Errorf("error configuring telemetry: %v", err)
	}

	if err := i.configManager.SaveConfig(i.Config); err != nil {
		i.log.Errorf("error saving configuration: %v", err)
		return fmt.Errorf("error saving configuration: %v", err)
	}

	i.log.Debugf("configuration process complete")
	i.cliTheme.GetCurrentTheme().Success().Println("\n✅ Configuration updated successfully!")
	i.cliTheme.GetCurrentTheme().Info().Println("Run 'modelsync sync' to reconcile your model catalog.")
	return nil
}
