package flags

import (
	"fmt"
	"strings"
)

const (
	choicePlaceholderPrefixConstant  = "<"
	choicePlaceholderSuffixConstant  = ">"
	choiceSeparatorConstant          = "|"
	choiceUsageEmptyTemplateConstant = "`%s`"
	choiceUsageFullTemplateConstant  = "`%s` %s"
)

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := choicePlaceholderPrefixConstant + strings.Join(highlightDefaultChoice(defaultChoice, choices), choiceSeparatorConstant) + choicePlaceholderSuffixConstant
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplateConstant, placeholder, description)
}

// NormalizeChoice returns the canonical spelling of value among choices, matched case-insensitively,
// or fallback when value is not one of them.
func NormalizeChoice(value string, choices []string, fallback string) string {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	for _, choice := range choices {
		if strings.ToLower(strings.TrimSpace(choice)) == normalizedValue && len(normalizedValue) > 0 {
			return strings.TrimSpace(choice)
		}
	}
	return fallback
}

func highlightDefaultChoice(defaultChoice string, choices []string) []string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	highlighted := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))

	for _, choice := range choices {
		trimmedChoice := strings.TrimSpace(choice)
		normalizedChoice := strings.ToLower(trimmedChoice)
		if len(trimmedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}

		if normalizedChoice == normalizedDefault {
			trimmedChoice = strings.ToUpper(trimmedChoice)
		}
		highlighted = append(highlighted, trimmedChoice)
	}

	return highlighted
}
