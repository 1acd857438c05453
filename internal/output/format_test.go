package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/output"
)

type sampleRecord struct {
	FullName string `json:"full_name" yaml:"full_name"`
	Private  bool   `json:"private" yaml:"private"`
	HTMLURL  string `json:"html_url" yaml:"html_url"`
}

func TestParseFormat(testInstance *testing.T) {
	testCases := []struct {
		name        string
		value       string
		expected    output.Format
		expectError bool
	}{
		{name: "empty_defaults_to_text", value: "", expected: output.FormatText},
		{name: "json", value: "json", expected: output.FormatJSON},
		{name: "yaml_uppercase", value: " YAML ", expected: output.FormatYAML},
		{name: "text", value: "text", expected: output.FormatText},
		{name: "unknown", value: "xml", expectError: true},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			format, parseError := output.ParseFormat(testCase.value)
			if testCase.expectError {
				require.ErrorAs(testInstance, parseError, &output.UnsupportedFormatError{})
				require.Contains(testInstance, parseError.Error(), "text, json, yaml")
				return
			}
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expected, format)
		})
	}
}

func TestWriteJSONUsesFourSpaceIndentation(testInstance *testing.T) {
	outputBuffer := &strings.Builder{}

	require.NoError(testInstance, output.WriteJSON(outputBuffer, []sampleRecord{{FullName: "octo/hello", HTMLURL: "https://github.com/octo/hello?a=1&b=2"}}))

	expected := "[\n    {\n        \"full_name\": \"octo/hello\",\n        \"private\": false,\n        \"html_url\": \"https://github.com/octo/hello?a=1&b=2\"\n    }\n]\n"
	require.Equal(testInstance, expected, outputBuffer.String())
}

func TestWriteStructured(testInstance *testing.T) {
	record := sampleRecord{FullName: "octo/hello", Private: true}

	yamlBuffer := &strings.Builder{}
	require.NoError(testInstance, output.WriteStructured(yamlBuffer, output.FormatYAML, record))
	require.Equal(testInstance, "full_name: octo/hello\nprivate: true\nhtml_url: \"\"\n", yamlBuffer.String())

	jsonBuffer := &strings.Builder{}
	require.NoError(testInstance, output.WriteStructured(jsonBuffer, output.FormatJSON, record))
	require.JSONEq(testInstance, `{"full_name":"octo/hello","private":true,"html_url":""}`, jsonBuffer.String())

	require.Error(testInstance, output.WriteStructured(&strings.Builder{}, output.FormatText, record))
	require.True(testInstance, output.FormatYAML.IsStructured())
	require.False(testInstance, output.FormatText.IsStructured())
}
