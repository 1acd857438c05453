package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	jsonIndentConstant                = "    "
	yamlIndentConstant                = 2
	unsupportedFormatTemplateConstant = "unsupported output format %q (expected one of %s)"
	formatListSeparatorConstant       = ", "
)

// Format enumerates the supported output renderings.
type Format string

// Output format enumerations.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var supportedFormats = []Format{FormatText, FormatJSON, FormatYAML}

// UnsupportedFormatError reports an unknown output format name.
type UnsupportedFormatError struct {
	Value string
}

// Error describes the unsupported format.
func (formatError UnsupportedFormatError) Error() string {
	return fmt.Sprintf(unsupportedFormatTemplateConstant, formatError.Value, strings.Join(SupportedFormatNames(), formatListSeparatorConstant))
}

// SupportedFormatNames lists the accepted format names.
func SupportedFormatNames() []string {
	names := make([]string, 0, len(supportedFormats))
	for _, format := range supportedFormats {
		names = append(names, string(format))
	}
	return names
}

// ParseFormat resolves a case-insensitive format name. An empty name selects FormatText.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if len(normalized) == 0 {
		return FormatText, nil
	}
	for _, format := range supportedFormats {
		if string(format) == normalized {
			return format, nil
		}
	}
	return "", UnsupportedFormatError{Value: value}
}

// IsStructured reports whether the format is a machine-readable encoding.
func (format Format) IsStructured() bool {
	return format == FormatJSON || format == FormatYAML
}

// WriteJSON writes value as indented JSON followed by a newline.
func WriteJSON(writer io.Writer, value any) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", jsonIndentConstant)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(value)
}

// WriteYAML writes value as a YAML document.
func WriteYAML(writer io.Writer, value any) error {
	encoder := yaml.NewEncoder(writer)
	encoder.SetIndent(yamlIndentConstant)
	if encodeError := encoder.Encode(value); encodeError != nil {
		return encodeError
	}
	return encoder.Close()
}

// WriteStructured writes value using a structured format.
func WriteStructured(writer io.Writer, format Format, value any) error {
	switch format {
	case FormatJSON:
		return WriteJSON(writer, value)
	case FormatYAML:
		return WriteYAML(writer, value)
	default:
		return UnsupportedFormatError{Value: string(format)}
	}
}
