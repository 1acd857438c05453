package shared

import (
	"github.com/spf13/cobra"

	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/output"
	"github.com/temirov/ghzero/internal/result"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
)

// FormatFlagName is the flag selecting the output format.
const FormatFlagName = "format"

const formatFlagUsageConstant = "Output format"

// ErrorWriter returns the destination for user-facing failure messages.
func ErrorWriter(command *cobra.Command) *output.TextWriter {
	return output.NewTextWriter(command.ErrOrStderr())
}

// ReportError writes the classified message and suggestion for failure and returns the error that
// carries its exit code.
func ReportError(command *cobra.Command, failure error) error {
	if failure == nil {
		return nil
	}
	code := errorhandler.Handle(failure, command.ErrOrStderr())
	return errorhandler.ReportedError{Code: result.ErrorCode(code), Message: errorhandler.FormatMessage(failure)}
}

// ReportFailure writes a failed component result and returns the error that carries its exit code.
func ReportFailure[T any](command *cobra.Command, envelope result.Result[T]) error {
	return errorhandler.Report(envelope, command.ErrOrStderr())
}

// ReportMessages writes the provided lines to the error stream and returns an exit-code 1 error.
func ReportMessages(command *cobra.Command, message string, hints ...string) error {
	textWriter := ErrorWriter(command)
	textWriter.Line("%s", textWriter.Error(message))
	for _, hint := range hints {
		textWriter.Line("%s", textWriter.Comment(hint))
	}
	return errorhandler.ReportedError{Code: result.ErrorCodeUnknown, Message: message}
}

// AddFormatFlag registers the --format flag with its default.
func AddFormatFlag(command *cobra.Command, defaultFormat string) {
	command.Flags().String(FormatFlagName, defaultFormat, flagutils.FormatChoiceUsage(defaultFormat, output.SupportedFormatNames(), formatFlagUsageConstant))
}

// ParseFormat resolves the output format, reporting unsupported names as validation failures.
func ParseFormat(command *cobra.Command, value string) (output.Format, error) {
	format, parseError := output.ParseFormat(value)
	if parseError != nil {
		return "", ReportError(command, errorhandler.ValidationError{Message: parseError.Error()})
	}
	return format, nil
}

// Emit writes data as JSON or YAML for structured formats and through render otherwise.
func Emit[T any](command *cobra.Command, format output.Format, data T, render func(*output.TextWriter, T)) error {
	if format.IsStructured() {
		return output.WriteStructured(command.OutOrStdout(), format, data)
	}
	render(output.NewTextWriter(command.OutOrStdout()), data)
	return nil
}

