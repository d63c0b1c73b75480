package initializer

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/provider"
)

// ConfigureProviders collects the API key for every managed provider.
// Leaving a key empty keeps the existing one, or skips the provider when
// none is set.
func (i *Initializer) ConfigureProviders() error {
	i.cliTheme.GetCurrentTheme().Info().Println("\n🔑 Configure Provider Credentials")
	i.cliTheme.GetCurrentTheme().Info().Println("Models are only fetched from providers with an API key. Providers without one are skipped during sync.")

	for _, p := range provider.Managed() {
		existing := i.Config.ProviderAPIKey(p.ID)

		if existing != "" {
			color.Yellow("An API key for %s is already set. Press Enter to keep the existing key or enter a new one.", p.Name)
		}

		promptKey := &survey.Password{
			Message: fmt.Sprintf("Enter your %s API key:", p.Name),
			Help:    fmt.Sprintf("Can also be supplied at runtime through the %s environment variable.", p.EnvVar),
		}

		var apiKey string
		if err := survey.AskOne(promptKey, &apiKey); err != nil {
			return err
		}

		if apiKey == "" {
			apiKey = existing
		}
		i.Config.SetProviderAPIKey(p.ID, apiKey)
	}

	return nil
}

// ConfigureSync collects the sync behaviour settings.
func (i *Initializer) ConfigureSync() error {
	i.cliTheme.GetCurrentTheme().Info().Println("\n🔄 Configure Sync Behaviour")

	refreshCaps := i.Config.Sync.RefreshCaps
	promptRefresh := &survey.Confirm{
		Message: "Re-derive capability flags on every sync?",
		Default: refreshCaps,
		Help:    "When enabled, hand-edited capability flags in the catalog are replaced with freshly derived ones on every sync.",
	}
	if err := survey.AskOne(promptRefresh, &refreshCaps); err != nil {
		return err
	}
	i.Config.Sync.RefreshCaps = refreshCaps

	enableProbes := i.Config.Sync.EnableProbes
	promptProbes := &survey.Confirm{
		Message: "Verify image support of OpenAI models with live probes?",
		Default: enableProbes,
		Help:    "Sends a tiny test image to eligible OpenAI models during sync. Each probe consumes a few API tokens.",
	}
	if err := survey.AskOne(promptProbes, &enableProbes); err != nil {
		return err
	}
	i.Config.Sync.EnableProbes = enableProbes

	if i.Config.Sync.TimeoutSeconds == 0 {
		i.Config.Sync.TimeoutSeconds = config.DefaultTimeoutSeconds
	}

	var timeoutSeconds int
	promptTimeout := &survey.Input{
		Message: "Enter the provider request timeout in seconds:",
		Default: fmt.Sprintf("%d", i.Config.Sync.TimeoutSeconds),
		Help:    "Applied to every provider API request during a sync.",
	}
	if err := survey.AskOne(promptTimeout, &timeoutSeconds); err != nil {
		return err
	}
	i.Config.Sync.TimeoutSeconds = timeoutSeconds

	return nil
}

// ConfigureCatalog collects the catalog file location.
func (i *Initializer) ConfigureCatalog() error {
	i.cliTheme.GetCurrentTheme().Info().Println("\n📁 Configure Catalog Location")

	catalogPath := i.Config.Catalog.Path
	promptPath := &survey.Input{
		Message: "Where should the model catalog be stored?",
		Default: catalogPath,
		Help:    "Leave empty to use models.json under the application data directory.",
	}
	if err := survey.AskOne(promptPath, &catalogPath); err != nil {
		return err
	}
	i.Config.Catalog.Path = catalogPath

	return nil
}

// ConfigureWebServer collects the HTTP API settings.
func (i *Initializer) ConfigureWebServer() error {
	i.cliTheme.GetCurrentTheme().Info().Println("\n🌐 Configure Web Server")

	if i.Config.WebServer.Port == 0 {
		i.Config.WebServer.Port = config.DefaultWebServerPort
	}

	var port int
	promptPort := &survey.Input{
		Message: "Enter the web server port:",
		Default: fmt.Sprintf("%d", i.Config.WebServer.Port),
		Help:    "Used by the serve command to expose the HTTP API.",
	}
	if err := survey.AskOne(promptPort, &port); err != nil {
		return err
	}
	i.Config.WebServer.Port = port

	return nil
}
