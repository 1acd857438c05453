package execshell

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandMessageFormatterDescribesClone(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments: []string{"clone", "https://github.com/octo/hello.git", "hello"},
		},
	}

	require.Equal(t, "Cloning https://github.com/octo/hello.git into hello", formatter.BuildStartedMessage(command))
	require.Equal(t, "Cloned https://github.com/octo/hello.git into hello", formatter.BuildSuccessMessage(command, ExecutionResult{}))
	require.Equal(t,
		"Failed to clone https://github.com/octo/hello.git into hello (exit code 128: fatal: repository not found)",
		formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 128, StandardError: "fatal: repository not found\n"}),
	)
}

func TestCommandMessageFormatterDescribesRemoteLookup(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name: CommandGit,
		Details: CommandDetails{
			Arguments:        []string{"remote", "get-url", "origin"},
			WorkingDirectory: "/workspace/repo",
		},
	}

	require.Equal(t, "Checking origin remote for /workspace/repo", formatter.BuildStartedMessage(command))
	require.Equal(t,
		"origin remote for /workspace/repo points to git@github.com:octo/hello.git",
		formatter.BuildSuccessMessage(command, ExecutionResult{StandardOutput: "git@github.com:octo/hello.git\n"}),
	)
	require.Equal(t,
		"Unable to read origin remote for /workspace/repo: exec: not found",
		formatter.BuildExecutionFailureMessage(command, errors.New("exec: not found")),
	)
}

func TestCommandMessageFormatterFallsBackToGenericMessages(t *testing.T) {
	formatter := CommandMessageFormatter{}
	command := ShellCommand{
		Name:    CommandGit,
		Details: CommandDetails{Arguments: []string{"--version"}, WorkingDirectory: "."},
	}

	require.Equal(t, "Running git --version (in .)", formatter.BuildStartedMessage(command))
	require.Equal(t, "git --version (in .) failed with exit code 1", formatter.BuildFailureMessage(command, ExecutionResult{ExitCode: 1}))
	require.Equal(t, "git --version (in .) failed: unknown error", formatter.BuildExecutionFailureMessage(command, nil))
}
