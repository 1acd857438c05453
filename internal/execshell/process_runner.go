package execshell

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sort"
	"strings"
)

const environmentAssignmentSeparatorConstant = "="

// EnvironmentProvider returns the base environment inherited by child processes.
type EnvironmentProvider func() []string

// ProcessRunner starts each command as a child process and captures both output streams.
type ProcessRunner struct {
	environmentProvider EnvironmentProvider
}

// NewProcessRunner constructs a runner that inherits the current process environment.
func NewProcessRunner() *ProcessRunner {
	return NewProcessRunnerWithEnvironment(os.Environ)
}

// NewProcessRunnerWithEnvironment constructs a runner whose overrides extend provider's environment.
func NewProcessRunnerWithEnvironment(provider EnvironmentProvider) *ProcessRunner {
	if provider == nil {
		provider = os.Environ
	}
	return &ProcessRunner{environmentProvider: provider}
}

// Run executes the command. A non-zero exit status is reported through ExecutionResult.ExitCode;
// the error is reserved for processes that could not be started or awaited.
func (runner *ProcessRunner) Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	process := exec.CommandContext(executionContext, string(command.Name), command.Details.Arguments...)
	process.Dir = command.Details.WorkingDirectory
	process.Env = runner.environment(command.Details.EnvironmentVariables)

	var standardOutput strings.Builder
	var standardError strings.Builder
	process.Stdout = &standardOutput
	process.Stderr = &standardError

	runError := process.Run()
	executionResult := ExecutionResult{
		StandardOutput: standardOutput.String(),
		StandardError:  standardError.String(),
	}

	var exitError *exec.ExitError
	switch {
	case runError == nil:
		return executionResult, nil
	case errors.As(runError, &exitError):
		executionResult.ExitCode = exitError.ExitCode()
		return executionResult, nil
	default:
		return ExecutionResult{}, runError
	}
}

// environment returns nil when there is nothing to override so the child inherits the parent
// environment unchanged.
func (runner *ProcessRunner) environment(overrides map[string]string) []string {
	if len(overrides) == 0 {
		return nil
	}

	overrideKeys := make([]string, 0, len(overrides))
	for overrideKey := range overrides {
		overrideKeys = append(overrideKeys, overrideKey)
	}
	sort.Strings(overrideKeys)

	environment := append([]string(nil), runner.environmentProvider()...)
	for _, overrideKey := range overrideKeys {
		environment = append(environment, overrideKey+environmentAssignmentSeparatorConstant+overrides[overrideKey])
	}
	return environment
}
