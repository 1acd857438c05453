package clone

import "github.com/temirov/ghzero/internal/output"

const (
	configurationSelectionLimitKeyConstant = "selection_limit"
	configurationFormatKeyConstant         = "format"
	defaultSelectionLimitConstant          = 20
	maximumSelectionLimitConstant          = 100
)

// CommandConfiguration captures the persisted defaults of the clone command.
type CommandConfiguration struct {
	SelectionLimit int    `mapstructure:"selection_limit"`
	Format         string `mapstructure:"format"`
}

// DefaultCommandConfiguration returns the baseline clone configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		SelectionLimit: defaultSelectionLimitConstant,
		Format:         string(output.FormatText),
	}
}

// DefaultConfigurationValues produces Viper defaults for the clone command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationSelectionLimitKeyConstant: defaults.SelectionLimit,
		rootKey + "." + configurationFormatKeyConstant:         defaults.Format,
	}
}

// Sanitize keeps the interactive selection size within the repository listing bounds.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	switch {
	case sanitized.SelectionLimit <= 0:
		sanitized.SelectionLimit = defaultSelectionLimitConstant
	case sanitized.SelectionLimit > maximumSelectionLimitConstant:
		sanitized.SelectionLimit = maximumSelectionLimitConstant
	}
	return sanitized
}
