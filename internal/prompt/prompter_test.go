package prompt_test

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/prompt"
)

func TestConfirm(testInstance *testing.T) {
	testCases := []struct {
		name         string
		input        string
		defaultValue bool
		expected     bool
		expectedText string
	}{
		{name: "yes", input: "y\n", expected: true, expectedText: "Clone? [y/N] "},
		{name: "yes_word_uppercase", input: "YES\n", expected: true, expectedText: "Clone? [y/N] "},
		{name: "no", input: "n\n", defaultValue: true, expected: false, expectedText: "Clone? [Y/n] "},
		{name: "empty_uses_default", input: "\n", defaultValue: true, expected: true, expectedText: "Clone? [Y/n] "},
		{name: "closed_input_declines", input: "", defaultValue: true, expected: false, expectedText: "Clone? [Y/n] "},
		{name: "answer_without_newline", input: "yes", expected: true, expectedText: "Clone? [y/N] "},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &strings.Builder{}
			prompter := prompt.NewIOPrompter(strings.NewReader(testCase.input), outputBuffer)

			confirmed, confirmError := prompter.Confirm("Clone?", testCase.defaultValue)

			require.NoError(testInstance, confirmError)
			require.Equal(testInstance, testCase.expected, confirmed)
			require.Equal(testInstance, testCase.expectedText, outputBuffer.String())
		})
	}
}

func TestSelect(testInstance *testing.T) {
	options := []prompt.Option{
		{Value: "all", Label: "All repositories"},
		{Value: "owner", Label: "Owned by me"},
		{Value: "public", Label: "Public repositories"},
	}

	testCases := []struct {
		name          string
		input         string
		defaultIndex  int
		expectedValue string
	}{
		{name: "explicit_choice", input: "2\n", expectedValue: "owner"},
		{name: "default_choice", input: "\n", defaultIndex: 2, expectedValue: "public"},
		{name: "retry_after_invalid", input: "9\nabc\n3\n", expectedValue: "public"},
		{name: "out_of_range_default", input: "\n", defaultIndex: 7, expectedValue: "all"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			outputBuffer := &strings.Builder{}
			prompter := prompt.NewIOPrompter(strings.NewReader(testCase.input), outputBuffer)

			selected, selectError := prompter.Select("📋 What type of repositories?", options, testCase.defaultIndex)

			require.NoError(testInstance, selectError)
			require.Equal(testInstance, testCase.expectedValue, selected.Value)
			require.Contains(testInstance, outputBuffer.String(), "  1) All repositories\n")
		})
	}
}

func TestSelectFailures(testInstance *testing.T) {
	prompter := prompt.NewIOPrompter(strings.NewReader("x\ny\nz\n"), nil)
	_, selectError := prompter.Select("Pick", []prompt.Option{{Value: "a", Label: "A"}}, 0)
	require.ErrorIs(testInstance, selectError, prompt.ErrSelectionAttemptsExhausted)

	_, selectError = prompter.Select("Pick", nil, 0)
	require.ErrorIs(testInstance, selectError, prompt.ErrNoOptions)

	_, selectError = prompt.NewIOPrompter(strings.NewReader(""), nil).Select("Pick", []prompt.Option{{Value: "a"}}, 0)
	require.ErrorIs(testInstance, selectError, io.EOF)
}

func TestText(testInstance *testing.T) {
	outputBuffer := &strings.Builder{}
	prompter := prompt.NewIOPrompter(strings.NewReader("  octo/hello  \n\n"), outputBuffer)

	answer, textError := prompter.Text("📝 Enter repository:", "")
	require.NoError(testInstance, textError)
	require.Equal(testInstance, "octo/hello", answer)

	defaulted, textError := prompter.Text("Limit?", "10")
	require.NoError(testInstance, textError)
	require.Equal(testInstance, "10", defaulted)
	require.Equal(testInstance, "📝 Enter repository: Limit? [10] ", outputBuffer.String())
}
