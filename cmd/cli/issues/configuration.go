package issues

import (
	"strings"

	"github.com/temirov/ghzero/internal/issues"
	"github.com/temirov/ghzero/internal/output"
)

const (
	configurationStateKeyConstant  = "state"
	configurationLimitKeyConstant  = "limit"
	configurationFormatKeyConstant = "format"
)

// CommandConfiguration captures the persisted defaults of the issues command.
type CommandConfiguration struct {
	State  string `mapstructure:"state"`
	Limit  int    `mapstructure:"limit"`
	Format string `mapstructure:"format"`
}

// DefaultCommandConfiguration returns the baseline issues configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		State:  issues.DefaultState,
		Limit:  issues.DefaultLimit,
		Format: string(output.FormatText),
	}
}

// DefaultConfigurationValues produces Viper defaults for the issues command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationStateKeyConstant:  defaults.State,
		rootKey + "." + configurationLimitKeyConstant:  defaults.Limit,
		rootKey + "." + configurationFormatKeyConstant: defaults.Format,
	}
}

// Sanitize trims configured values and restores the default state when none is set. Out-of-range
// limits and unknown states are left for the component to reject.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.State = strings.ToLower(strings.TrimSpace(configuration.State))
	if len(sanitized.State) == 0 {
		sanitized.State = issues.DefaultState
	}
	sanitized.Format = strings.TrimSpace(configuration.Format)
	return sanitized
}
