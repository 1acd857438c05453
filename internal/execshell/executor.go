package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CommandName identifies an external executable.
type CommandName string

// CommandGit invokes the git executable.
const CommandGit CommandName = "git"

const (
	commandFailedTemplateConstant           = "%s exited with code %d"
	commandFailedWithOutputTemplateConstant = "%s exited with code %d: %s"
	commandExecutionTemplateConstant        = "%s could not be executed: %v"
	commandFieldNameConstant                = "command"
	argumentsFieldNameConstant              = "arguments"
	workingDirectoryFieldConstant           = "working_directory"
	exitCodeFieldNameConstant               = "exit_code"
)

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New("shell executor requires a logger")

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New("shell executor requires a command runner")

// CommandDetails describes the arguments and environment of a single invocation.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables map[string]string
}

// ShellCommand couples an executable with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult captures the outcome of a finished process.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CombinedOutput joins standard output and standard error in that order.
func (result ExecutionResult) CombinedOutput() string {
	segments := make([]string, 0, 2)
	for _, segment := range []string{result.StandardOutput, result.StandardError} {
		trimmed := strings.TrimRight(segment, "\n")
		if len(trimmed) > 0 {
			segments = append(segments, trimmed)
		}
	}
	return strings.Join(segments, "\n")
}

// CommandRunner executes a shell command.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// CommandEventObserver is notified around every command the executor runs.
type CommandEventObserver interface {
	CommandStarted(command ShellCommand)
	CommandCompleted(command ShellCommand, result ExecutionResult)
	// CommandExecutionFailed is called instead of CommandCompleted when no result was produced.
	CommandExecutionFailed(command ShellCommand, failure error)
}

// CommandFailedError reports a process that completed with a non-zero exit code.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error describes the failing command.
func (failedError CommandFailedError) Error() string {
	combinedOutput := failedError.Result.CombinedOutput()
	if len(combinedOutput) == 0 {
		return fmt.Sprintf(commandFailedTemplateConstant, failedError.Command.Name, failedError.Result.ExitCode)
	}
	return fmt.Sprintf(commandFailedWithOutputTemplateConstant, failedError.Command.Name, failedError.Result.ExitCode, combinedOutput)
}

// CommandExecutionError reports a process that could not be started or awaited.
type CommandExecutionError struct {
	Command ShellCommand
	Cause   error
}

// Error describes the execution failure.
func (executionError CommandExecutionError) Error() string {
	return fmt.Sprintf(commandExecutionTemplateConstant, executionError.Command.Name, executionError.Cause)
}

// Unwrap exposes the underlying runner failure.
func (executionError CommandExecutionError) Unwrap() error {
	return executionError.Cause
}

// ShellExecutor runs commands through a CommandRunner with structured logging.
type ShellExecutor struct {
	logger           *zap.Logger
	runner           CommandRunner
	messageFormatter CommandMessageFormatter
	observers        []CommandEventObserver
}

// NewShellExecutor constructs a ShellExecutor.
func NewShellExecutor(logger *zap.Logger, runner CommandRunner, observers ...CommandEventObserver) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}

	activeObservers := make([]CommandEventObserver, 0, len(observers))
	for _, observer := range observers {
		if observer != nil {
			activeObservers = append(activeObservers, observer)
		}
	}

	return &ShellExecutor{logger: logger, runner: runner, observers: activeObservers}, nil
}

// ExecuteGit runs git with the provided details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.Execute(executionContext, ShellCommand{Name: CommandGit, Details: details})
}

// Execute runs the command and converts non-zero exit codes into CommandFailedError.
func (executor *ShellExecutor) Execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	commandFields := []zap.Field{
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.String(workingDirectoryFieldConstant, command.Details.WorkingDirectory),
	}

	executor.logger.Debug(executor.messageFormatter.BuildStartedMessage(command), commandFields...)
	for _, observer := range executor.observers {
		observer.CommandStarted(command)
	}

	executionResult, runError := executor.runner.Run(executionContext, command)
	if runError != nil {
		executor.logger.Warn(executor.messageFormatter.BuildExecutionFailureMessage(command, runError), append(commandFields, zap.Error(runError))...)
		for _, observer := range executor.observers {
			observer.CommandExecutionFailed(command, runError)
		}
		return ExecutionResult{}, CommandExecutionError{Command: command, Cause: runError}
	}

	for _, observer := range executor.observers {
		observer.CommandCompleted(command, executionResult)
	}

	if executionResult.ExitCode != 0 {
		executor.logger.Debug(executor.messageFormatter.BuildFailureMessage(command, executionResult), append(commandFields, zap.Int(exitCodeFieldNameConstant, executionResult.ExitCode))...)
		return ExecutionResult{}, CommandFailedError{Command: command, Result: executionResult}
	}

	executor.logger.Debug(executor.messageFormatter.BuildSuccessMessage(command, executionResult), commandFields...)
	return executionResult, nil
}
