package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueCanonicalValueConstant       = "true"
	toggleFalseCanonicalValueConstant      = "false"
	toggleYesLiteralConstant               = "yes"
	toggleNoLiteralConstant                = "no"
	toggleOnLiteralConstant                = "on"
	toggleOffLiteralConstant               = "off"
	toggleOneLiteralConstant               = "1"
	toggleZeroLiteralConstant              = "0"
	toggleTLiteralConstant                 = "t"
	toggleFLiteralConstant                 = "f"
	toggleYLiteralConstant                 = "y"
	toggleNLiteralConstant                 = "n"
	toggleParseErrorTemplateConstant       = "invalid toggle value %q"
	toggleArgumentTruePlaceholderConstant  = "<YES|no>"
	toggleArgumentFalsePlaceholderConstant = "<yes|NO>"
)

var (
	trueLiteralSet = map[string]struct{}{
		toggleTrueCanonicalValueConstant: {},
		toggleYesLiteralConstant:         {},
		toggleOnLiteralConstant:          {},
		toggleOneLiteralConstant:         {},
		toggleTLiteralConstant:           {},
		toggleYLiteralConstant:           {},
	}
	falseLiteralSet = map[string]struct{}{
		toggleFalseCanonicalValueConstant: {},
		toggleNoLiteralConstant:           {},
		toggleOffLiteralConstant:          {},
		toggleZeroLiteralConstant:         {},
		toggleFLiteralConstant:            {},
		toggleNLiteralConstant:            {},
	}

	toggleFlagRegistryMutex sync.RWMutex
	toggleFlagNames         = map[string]struct{}{}
	toggleFlagShorthands    = map[string]struct{}{}
)

// AddToggleFlag registers a boolean toggle flag that accepts yes/no style values.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, shorthand string, defaultValue bool, usage string) {
	if flagSet == nil {
		return
	}
	if len(name) == 0 {
		return
	}

	toggleValue := newToggleFlagValue(defaultValue, target)
	if len(shorthand) > 0 {
		flagSet.VarP(toggleValue, name, shorthand, usage)
	} else {
		flagSet.Var(toggleValue, name, usage)
	}

	flag := flagSet.Lookup(name)
	if flag == nil {
		return
	}
	flag.NoOptDefVal = toggleTrueCanonicalValueConstant
	flag.Usage = formatToggleUsage(usage, defaultValue)

	registerToggleFlag(name, shorthand)
}

func formatToggleUsage(description string, defaultValue bool) string {
	placeholder := toggleArgumentFalsePlaceholderConstant
	if defaultValue {
		placeholder = toggleArgumentTruePlaceholderConstant
	}
	trimmed := strings.TrimSpace(description)
	if len(trimmed) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmed)
}

// NormalizeToggleArguments rewrites toggle flag arguments so "--flag value" becomes "--flag=value" before
// parsing. Only values that read as yes/no literals are joined, so positional arguments following a toggle
// are preserved.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		current := arguments[index]
		if current == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}

		if normalizedArgument, consumed := normalizeToggleLong(current, arguments, index); consumed > 0 {
			normalized = append(normalized, normalizedArgument)
			index += consumed
			continue
		}

		if normalizedArgument, consumed := normalizeToggleShort(current, arguments, index); consumed > 0 {
			normalized = append(normalized, normalizedArgument)
			index += consumed
			continue
		}

		normalized = append(normalized, current)
		index++
	}

	return normalized
}

type toggleFlagValue struct {
	currentValue bool
	target       *bool
}

func newToggleFlagValue(defaultValue bool, target *bool) *toggleFlagValue {
	if target != nil {
		*target = defaultValue
	}
	return &toggleFlagValue{currentValue: defaultValue, target: target}
}

func (value *toggleFlagValue) Set(rawValue string) error {
	parsedValue, parseError := parseToggleValue(rawValue)
	if parseError != nil {
		return parseError
	}

	value.currentValue = parsedValue
	if value.target != nil {
		*value.target = parsedValue
	}

	return nil
}

func (value *toggleFlagValue) String() string {
	if value == nil {
		return toggleFalseCanonicalValueConstant
	}
	if value.currentValue {
		return toggleTrueCanonicalValueConstant
	}
	return toggleFalseCanonicalValueConstant
}

func (value *toggleFlagValue) Type() string {
	return "bool"
}

func parseToggleValue(rawValue string) (bool, error) {
	trimmedValue := strings.TrimSpace(rawValue)
	if len(trimmedValue) == 0 {
		trimmedValue = toggleTrueCanonicalValueConstant
	}

	normalizedValue := strings.ToLower(trimmedValue)
	if _, isTrue := trueLiteralSet[normalizedValue]; isTrue {
		return true, nil
	}
	if _, isFalse := falseLiteralSet[normalizedValue]; isFalse {
		return false, nil
	}

	return false, fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
}

func registerToggleFlag(name string, shorthand string) {
	toggleFlagRegistryMutex.Lock()
	defer toggleFlagRegistryMutex.Unlock()
	toggleFlagNames[name] = struct{}{}
	if len(shorthand) > 0 {
		toggleFlagShorthands[shorthand] = struct{}{}
	}
}

func normalizeToggleLong(current string, arguments []string, index int) (string, int) {
	if !strings.HasPrefix(current, "--") {
		return "", 0
	}
	name, hasInlineValue := splitFlagName(strings.TrimPrefix(current, "--"))
	if len(name) == 0 || !isToggleName(name) {
		return "", 0
	}
	return joinToggleValue(current, hasInlineValue, arguments, index)
}

func normalizeToggleShort(current string, arguments []string, index int) (string, int) {
	if !strings.HasPrefix(current, "-") || strings.HasPrefix(current, "--") {
		return "", 0
	}
	shorthand, hasInlineValue := splitFlagName(strings.TrimPrefix(current, "-"))
	if len(shorthand) != 1 || !isToggleShorthand(shorthand) {
		return "", 0
	}
	return joinToggleValue(current, hasInlineValue, arguments, index)
}

func splitFlagName(trimmed string) (string, bool) {
	splitIndex := strings.Index(trimmed, "=")
	if splitIndex < 0 {
		return trimmed, false
	}
	return trimmed[:splitIndex], true
}

func joinToggleValue(current string, hasInlineValue bool, arguments []string, index int) (string, int) {
	if hasInlineValue || index+1 >= len(arguments) {
		return current, 1
	}
	nextValue := arguments[index+1]
	if !isToggleLiteral(nextValue) {
		return current, 1
	}
	return current + "=" + nextValue, 2
}

func isToggleLiteral(value string) bool {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	if len(normalizedValue) == 0 {
		return false
	}
	_, isTrue := trueLiteralSet[normalizedValue]
	_, isFalse := falseLiteralSet[normalizedValue]
	return isTrue || isFalse
}

func isToggleName(name string) bool {
	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()
	_, exists := toggleFlagNames[name]
	return exists
}

func isToggleShorthand(shorthand string) bool {
	toggleFlagRegistryMutex.RLock()
	defer toggleFlagRegistryMutex.RUnlock()
	_, exists := toggleFlagShorthands[shorthand]
	return exists
}
