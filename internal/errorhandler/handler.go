package errorhandler

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/temirov/ghzero/internal/result"
)

const (
	githubAPIErrorPrefixConstant     = "GitHub API Error: "
	genericErrorPrefixConstant       = "Error: "
	errorLineTemplateConstant        = "❌ %s\n"
	suggestionLineTemplateConstant   = "💡 %s\n"
	defaultValidationMessageConstant = "Validation failed"
	reportedErrorTemplateConstant    = "%s (exit code %d)"
	tokenSuggestionConstant          = "Set GITHUB_TOKEN environment variable with a valid GitHub personal access token"
	validationSuggestionConstant     = "Check your input parameters and try again"
	notFoundSuggestionConstant       = "Verify the repository name and your access permissions"
	permissionSuggestionConstant     = "Check your GitHub token permissions or repository access"
	networkSuggestionConstant        = "Check your internet connection and try again"
	apiSuggestionConstant            = "Check GitHub status at https://status.github.com"
)

type classificationRule struct {
	code       result.ErrorCode
	substrings []string
	matchType  func(error) bool
}

// classificationRules are evaluated in order; the first match wins.
var classificationRules = []classificationRule{
	{code: result.ErrorCodeTokenMissing, substrings: []string{"token", "authentication"}},
	{code: result.ErrorCodeValidationFailed, substrings: []string{"validation"}, matchType: isValidationError},
	{code: result.ErrorCodeNotFound, substrings: []string{"not found", "404"}},
	{code: result.ErrorCodePermissionDenied, substrings: []string{"permission", "403"}},
	{code: result.ErrorCodeNetworkError, substrings: []string{"network", "connection"}},
	{code: result.ErrorCodeAPIError, substrings: []string{"api", "github"}},
}

var suggestions = map[result.ErrorCode]string{
	result.ErrorCodeTokenMissing:     tokenSuggestionConstant,
	result.ErrorCodeValidationFailed: validationSuggestionConstant,
	result.ErrorCodeNotFound:         notFoundSuggestionConstant,
	result.ErrorCodePermissionDenied: permissionSuggestionConstant,
	result.ErrorCodeNetworkError:     networkSuggestionConstant,
	result.ErrorCodeAPIError:         apiSuggestionConstant,
}

// ValidationError reports parameters rejected before a component operation runs.
type ValidationError struct {
	Message string
}

// Error describes the validation failure.
func (validationError ValidationError) Error() string {
	if len(validationError.Message) == 0 {
		return defaultValidationMessageConstant
	}
	return validationError.Message
}

// ReportedError carries an exit code for a failure whose message was already written to the user.
type ReportedError struct {
	Code    result.ErrorCode
	Message string
}

// Error describes the reported failure.
func (reportedError ReportedError) Error() string {
	return fmt.Sprintf(reportedErrorTemplateConstant, reportedError.Message, reportedError.Code)
}

// Classify maps an error onto the fixed error-code taxonomy using its message text.
func Classify(failure error) result.ErrorCode {
	if failure == nil {
		return result.ErrorCodeUnknown
	}

	loweredMessage := strings.ToLower(failure.Error())
	for _, rule := range classificationRules {
		for _, substring := range rule.substrings {
			if strings.Contains(loweredMessage, substring) {
				return rule.code
			}
		}
		if rule.matchType != nil && rule.matchType(failure) {
			return rule.code
		}
	}

	return result.ErrorCodeUnknown
}

// FormatMessage strips known boilerplate prefixes and capitalizes the first letter.
func FormatMessage(failure error) string {
	if failure == nil {
		return ""
	}

	message := failure.Error()
	message = strings.ReplaceAll(message, githubAPIErrorPrefixConstant, "")
	message = strings.ReplaceAll(message, genericErrorPrefixConstant, "")

	return capitalizeFirst(message)
}

// Suggestion returns the remediation hint for an error code, if one exists.
func Suggestion(code result.ErrorCode) (string, bool) {
	suggestion, exists := suggestions[code]
	return suggestion, exists
}

// Handle writes the formatted message and suggestion for the error and returns its exit code.
func Handle(failure error, output io.Writer) int {
	code := Classify(failure)
	writeReport(output, FormatMessage(failure), code)
	return int(code)
}

// HandleResult writes the message and suggestion of a failed result and returns its exit code.
// Successful results produce no output and a zero exit code.
func HandleResult[T any](envelope result.Result[T], output io.Writer) int {
	if envelope.IsSuccess() {
		return 0
	}
	writeReport(output, envelope.ErrorMessage(), envelope.ErrorCode())
	return int(envelope.ErrorCode())
}

// CreateErrorResult classifies the error into a failed result without writing output.
func CreateErrorResult[T any](failure error) result.Result[T] {
	return result.Failure[T](FormatMessage(failure), Classify(failure))
}

// Report writes a failed result and returns a ReportedError for propagation to the process exit status.
func Report[T any](envelope result.Result[T], output io.Writer) error {
	if envelope.IsSuccess() {
		return nil
	}
	HandleResult(envelope, output)
	return ReportedError{Code: envelope.ErrorCode(), Message: envelope.ErrorMessage()}
}

// ExitCode extracts the process exit status from an error returned by a command.
func ExitCode(failure error) int {
	if failure == nil {
		return 0
	}
	var reportedError ReportedError
	if errors.As(failure, &reportedError) {
		return int(reportedError.Code)
	}
	return int(result.ErrorCodeUnknown)
}

// IsReported reports whether the error message has already been shown to the user.
func IsReported(failure error) bool {
	var reportedError ReportedError
	return errors.As(failure, &reportedError)
}

func writeReport(output io.Writer, message string, code result.ErrorCode) {
	if output == nil {
		return
	}
	fmt.Fprintf(output, errorLineTemplateConstant, message)
	if suggestion, exists := Suggestion(code); exists {
		fmt.Fprintf(output, suggestionLineTemplateConstant, suggestion)
	}
}

func isValidationError(failure error) bool {
	var validationError ValidationError
	return errors.As(failure, &validationError)
}

func capitalizeFirst(message string) string {
	if len(message) == 0 {
		return message
	}
	firstRune, runeSize := utf8.DecodeRuneInString(message)
	if firstRune == utf8.RuneError && runeSize <= 1 {
		return message
	}
	return string(unicode.ToUpper(firstRune)) + message[runeSize:]
}
