package repos

import (
	"strings"

	"github.com/temirov/ghzero/internal/output"
	"github.com/temirov/ghzero/internal/repos"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
)

const (
	configurationTypeKeyConstant   = "type"
	configurationSortKeyConstant   = "sort"
	configurationLimitKeyConstant  = "limit"
	configurationFormatKeyConstant = "format"
)

// CommandConfiguration captures the persisted defaults of the repos command.
type CommandConfiguration struct {
	Type   string `mapstructure:"type"`
	Sort   string `mapstructure:"sort"`
	Limit  int    `mapstructure:"limit"`
	Format string `mapstructure:"format"`
}

// DefaultCommandConfiguration returns the baseline repos configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Type:   repos.DefaultType,
		Sort:   repos.DefaultSort,
		Limit:  repos.DefaultLimit,
		Format: string(output.FormatText),
	}
}

// DefaultConfigurationValues produces Viper defaults for the repos command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + "." + configurationTypeKeyConstant:   defaults.Type,
		rootKey + "." + configurationSortKeyConstant:   defaults.Sort,
		rootKey + "." + configurationLimitKeyConstant:  defaults.Limit,
		rootKey + "." + configurationFormatKeyConstant: defaults.Format,
	}
}

// Sanitize falls back to defaults for unknown filters and clamps the limit to the accepted range.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Type = flagutils.NormalizeChoice(configuration.Type, repos.TypeChoices, repos.DefaultType)
	sanitized.Sort = flagutils.NormalizeChoice(configuration.Sort, repos.SortChoices, repos.DefaultSort)
	sanitized.Limit = clampLimit(configuration.Limit)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	return sanitized
}

func (configuration CommandConfiguration) options() repos.Options {
	return repos.Options{
		Type:   configuration.Type,
		Sort:   configuration.Sort,
		Limit:  configuration.Limit,
		Format: configuration.Format,
	}
}

func clampLimit(limit int) int {
	switch {
	case limit < repos.MinimumLimit:
		return repos.MinimumLimit
	case limit > repos.MaximumLimit:
		return repos.MaximumLimit
	default:
		return limit
	}
}
