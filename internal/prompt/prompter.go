package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	confirmSuffixDefaultYesConstant   = " [Y/n] "
	confirmSuffixDefaultNoConstant    = " [y/N] "
	questionLineTemplateConstant      = "%s\n"
	optionLineTemplateConstant        = "  %d) %s\n"
	selectionPromptTemplateConstant   = "Choose 1-%d [%d]: "
	textPromptTemplateConstant        = "%s "
	textPromptDefaultTemplateConstant = "%s [%s] "
	invalidSelectionTemplateConstant  = "Please enter a number between 1 and %d.\n"
	maximumSelectionAttemptsConstant  = 3
)

// ErrNoOptions indicates a selection was requested without any options.
var ErrNoOptions = errors.New("selection requires at least one option")

// ErrSelectionAttemptsExhausted indicates the user did not provide a valid selection.
var ErrSelectionAttemptsExhausted = errors.New("no valid selection provided")

// Option is a selectable value with its display label.
type Option struct {
	Value string
	Label string
}

// Prompter asks the user questions.
type Prompter interface {
	Confirm(question string, defaultValue bool) (bool, error)
	Select(question string, options []Option, defaultIndex int) (Option, error)
	Text(question string, defaultValue string) (string, error)
}

// IOPrompter reads answers from an io.Reader and writes questions to an io.Writer.
type IOPrompter struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewIOPrompter constructs a prompter from the provided reader and writer.
func NewIOPrompter(input io.Reader, output io.Writer) *IOPrompter {
	if output == nil {
		output = io.Discard
	}
	return &IOPrompter{reader: bufio.NewReader(input), writer: output}
}

// Confirm writes the question and interprets affirmative responses (y/yes). An empty answer selects
// defaultValue and closed input declines.
func (prompter *IOPrompter) Confirm(question string, defaultValue bool) (bool, error) {
	suffix := confirmSuffixDefaultNoConstant
	if defaultValue {
		suffix = confirmSuffixDefaultYesConstant
	}
	if _, writeError := io.WriteString(prompter.writer, question+suffix); writeError != nil {
		return false, writeError
	}

	response, readError := prompter.readLine()
	if errors.Is(readError, io.EOF) {
		return false, nil
	}
	if readError != nil {
		return false, readError
	}

	switch strings.ToLower(response) {
	case "":
		return defaultValue, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Select lists the options and returns the chosen one. An empty answer selects defaultIndex.
func (prompter *IOPrompter) Select(question string, options []Option, defaultIndex int) (Option, error) {
	if len(options) == 0 {
		return Option{}, ErrNoOptions
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	fmt.Fprintf(prompter.writer, questionLineTemplateConstant, question)
	for optionIndex, option := range options {
		fmt.Fprintf(prompter.writer, optionLineTemplateConstant, optionIndex+1, option.Label)
	}

	for attempt := 0; attempt < maximumSelectionAttemptsConstant; attempt++ {
		fmt.Fprintf(prompter.writer, selectionPromptTemplateConstant, len(options), defaultIndex+1)
		response, readError := prompter.readLine()
		if readError != nil {
			return Option{}, readError
		}
		if len(response) == 0 {
			return options[defaultIndex], nil
		}
		selectedNumber, parseError := strconv.Atoi(response)
		if parseError == nil && selectedNumber >= 1 && selectedNumber <= len(options) {
			return options[selectedNumber-1], nil
		}
		fmt.Fprintf(prompter.writer, invalidSelectionTemplateConstant, len(options))
	}

	return Option{}, ErrSelectionAttemptsExhausted
}

// Text asks for free-form input. An empty answer selects defaultValue.
func (prompter *IOPrompter) Text(question string, defaultValue string) (string, error) {
	if len(defaultValue) > 0 {
		fmt.Fprintf(prompter.writer, textPromptDefaultTemplateConstant, question, defaultValue)
	} else {
		fmt.Fprintf(prompter.writer, textPromptTemplateConstant, question)
	}

	response, readError := prompter.readLine()
	if readError != nil {
		return "", readError
	}
	if len(response) == 0 {
		return defaultValue, nil
	}
	return response, nil
}

// readLine treats end of input after a partial line as a complete answer; end of input with nothing read is io.EOF.
func (prompter *IOPrompter) readLine() (string, error) {
	response, readError := prompter.reader.ReadString('\n')
	if readError != nil {
		if !errors.Is(readError, io.EOF) {
			return "", readError
		}
		if len(response) == 0 {
			return "", io.EOF
		}
	}
	return strings.TrimSpace(response), nil
}
