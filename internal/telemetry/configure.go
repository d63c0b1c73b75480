package telemetry

import (
	"log"

	"github.com/AlecAivazis/survey/v2"

	"github.com/modelsync-hq/modelsync/internal/config"
	"github.com/modelsync-hq/modelsync/internal/theme"
)

// Configure sets up the telemetry configuration
func Configure(themeManager *theme.Manager, config *config.Config) error {
	themeManager.GetCurrentTheme().Info().Println("\n📡 Enable anonymous telemetry event collection")
	themeManager.GetCurrentTheme().Info().Println("This helps us improve the product, prioritize features, and fix bugs.")
	themeManager.GetCurrentTheme().Info().Println("No personal data is collected, and you can opt out at any time.")

	enabled := config.UsageTracking.Enabled

	promptTelemetryEnabling := &survey.Confirm{
		Message: "Enable anonymized telemetry event?",
		Default: enabled,
		Help:    "Enable anonymized telemetry event collection to help us improve the product.",
	}
	err := survey.AskOne(promptTelemetryEnabling, &enabled)
	if err != nil {
		log.Printf("Error while enabling/disabling telemetry: %v", err)
		return err
	}

	config.UsageTracking.Enabled = enabled
	return nil
}
