package issues_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-github/v81/github"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	issues "github.com/temirov/ghzero/cmd/cli/issues"
	"github.com/temirov/ghzero/cmd/cli/shared/sharedtest"
	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/result"
)

const (
	testTokenConstant      = "test-token"
	testRepositoryConstant = "octocat/hello"
	originRemoteConstant   = "git@github.com:octocat/detected.git\n"
)

type commandHarness struct {
	client   *sharedtest.GitHubClient
	executor *sharedtest.GitExecutor
	stdout   *bytes.Buffer
	stderr   *bytes.Buffer
	command  *cobra.Command
}

func newCommandHarness(testInstance *testing.T, token string) commandHarness {
	testInstance.Helper()
	harness := commandHarness{
		client: &sharedtest.GitHubClient{
			Issues: []*github.Issue{sampleIssue(1, "open"), sampleIssue(2, "closed")},
			Issue:  sampleIssue(7, "open"),
		},
		executor: &sharedtest.GitExecutor{},
		stdout:   &bytes.Buffer{},
		stderr:   &bytes.Buffer{},
	}

	builder := issues.CommandBuilder{
		LoggerProvider:        func() *zap.Logger { return zap.NewNop() },
		ConfigurationProvider: issues.DefaultCommandConfiguration,
		TokenResolver:         sharedtest.TokenResolver{Token: token},
		GitHubClient:          harness.client,
		GitExecutor:           harness.executor,
		WorkingDirectory:      testInstance.TempDir(),
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)
	command.SetContext(context.Background())
	command.SetOut(harness.stdout)
	command.SetErr(harness.stderr)
	harness.command = command
	return harness
}

func sampleIssue(number int, state string) *github.Issue {
	return &github.Issue{
		ID:      github.Ptr(int64(number * 100)),
		Number:  github.Ptr(number),
		Title:   github.Ptr("Issue title"),
		State:   github.Ptr(state),
		HTMLURL: github.Ptr("https://github.com/octocat/hello/issues/1"),
		User:    &github.User{Login: github.Ptr("octocat"), ID: github.Ptr(int64(1))},
		Labels:  []*github.Label{{Name: github.Ptr("bug"), Color: github.Ptr("d73a4a")}},
	}
}

func TestIssuesCommandListsIssues(testInstance *testing.T) {
	harness := newCommandHarness(testInstance, testTokenConstant)
	harness.command.SetArgs([]string{"list", testRepositoryConstant, "--state", "all", "--limit", "5"})

	require.NoError(testInstance, harness.command.Execute())

	renderedOutput := harness.stdout.String()
	require.Contains(testInstance, renderedOutput, "🔍 Fetching issues...")
	require.Contains(testInstance, renderedOutput, "🐛 GitHub Issues")
	require.Contains(testInstance, renderedOutput, "1. 🟢 #1: Issue title")
	require.Contains(testInstance, renderedOutput, "2. 🔴 #2: Issue title")
	require.Contains(testInstance, renderedOutput, "🏷️  bug")
	require.Equal(testInstance, []sharedtest.IssueCall{{Owner: "octocat", Repository: "hello"}}, harness.client.IssueCalls)
	require.Equal(testInstance, []githubapi.IssueListOptions{{State: "all", PerPage: 5}}, harness.client.ListRequests)
}

func TestIssuesCommandDefaultsToListAction(testInstance *testing.T) {
	harness := newCommandHarness(testInstance, testTokenConstant)
	harness.executor.Respond = func(execshell.CommandDetails) (execshell.ExecutionResult, error) {
		return execshell.ExecutionResult{StandardOutput: originRemoteConstant}, nil
	}
	harness.command.SetArgs([]string{})

	require.NoError(testInstance, harness.command.Execute())

	require.Len(testInstance, harness.executor.Recorded, 1)
	require.Equal(testInstance, []string{"remote", "get-url", "origin"}, harness.executor.Recorded[0].Arguments)
	require.Equal(testInstance, []sharedtest.IssueCall{{Owner: "octocat", Repository: "detected"}}, harness.client.IssueCalls)
	require.Equal(testInstance, []githubapi.IssueListOptions{{State: "open", PerPage: 10}}, harness.client.ListRequests)
}

func TestIssuesCommandRepositoryDetectionFailure(testInstance *testing.T) {
	testCases := []struct {
		name    string
		respond func(execshell.CommandDetails) (execshell.ExecutionResult, error)
	}{
		{
			name: "not_a_git_repository",
			respond: func(execshell.CommandDetails) (execshell.ExecutionResult, error) {
				failed := execshell.ExecutionResult{StandardError: "fatal: not a git repository", ExitCode: 128}
				return failed, execshell.CommandFailedError{Result: failed}
			},
		},
		{
			name: "remote_not_on_github",
			respond: func(execshell.CommandDetails) (execshell.ExecutionResult, error) {
				return execshell.ExecutionResult{StandardOutput: "https://gitlab.com/octocat/hello.git"}, nil
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			harness := newCommandHarness(testInstance, testTokenConstant)
			harness.executor.Respond = testCase.respond
			harness.command.SetArgs([]string{"list"})

			executionError := harness.command.Execute()
			require.Error(testInstance, executionError)
			require.Equal(testInstance, int(result.ErrorCodeUnknown), errorhandler.ExitCode(executionError))
			require.Contains(testInstance, harness.stderr.String(), "No repository specified and could not detect from current directory")
			require.Contains(testInstance, harness.stderr.String(), "💡 Usage: ghzero issues list owner/repo")
			require.Contains(testInstance, harness.stderr.String(), "💡 Or run from within a Git repository")
			require.Empty(testInstance, harness.client.IssueCalls)
		})
	}
}

func TestIssuesCommandCreatesIssue(testInstance *testing.T) {
	harness := newCommandHarness(testInstance, testTokenConstant)
	harness.command.SetArgs([]string{"create", testRepositoryConstant, "--title", "Broken build", "--body", "Details", "--labels", "bug,ci", "--assignees", "octocat"})

	require.NoError(testInstance, harness.command.Execute())

	require.Equal(testInstance, []githubapi.IssueCreateRequest{{
		Title:     "Broken build",
		Body:      "Details",
		Labels:    []string{"bug", "ci"},
		Assignees: []string{"octocat"},
	}}, harness.client.CreateRequests)
	require.Contains(testInstance, harness.stdout.String(), "🔄 Creating issue...")
	require.Contains(testInstance, harness.stdout.String(), "✅ Issue created successfully!")
}

func TestIssuesCommandShowsIssue(testInstance *testing.T) {
	harness := newCommandHarness(testInstance, testTokenConstant)
	harness.command.SetArgs([]string{"show", testRepositoryConstant, "7", "--format", "json"})

	require.NoError(testInstance, harness.command.Execute())

	require.Equal(testInstance, []int{7}, harness.client.ShowRequests)
	var decoded map[string]any
	require.NoError(testInstance, json.Unmarshal(harness.stdout.Bytes(), &decoded))
	require.EqualValues(testInstance, 7, decoded["number"])
	require.Nil(testInstance, decoded["body"])
}

func TestIssuesCommandFailures(testInstance *testing.T) {
	testCases := []struct {
		name            string
		token           string
		arguments       []string
		issueError      error
		expectedCode    result.ErrorCode
		expectedMessage string
		expectAPICall   bool
	}{
		{
			name:            "create_without_title",
			token:           testTokenConstant,
			arguments:       []string{"create", testRepositoryConstant},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "Title is required for creating issues",
		},
		{
			name:            "show_without_number",
			token:           testTokenConstant,
			arguments:       []string{"show", testRepositoryConstant},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "Issue number is required",
		},
		{
			name:            "show_with_non_numeric_number",
			token:           testTokenConstant,
			arguments:       []string{"show", testRepositoryConstant, "seven"},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "number",
		},
		{
			name:            "repository_without_owner",
			token:           testTokenConstant,
			arguments:       []string{"list", "hello"},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "Repository must be in owner/repo format",
		},
		{
			name:            "unknown_action",
			token:           testTokenConstant,
			arguments:       []string{"close", testRepositoryConstant},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "action",
		},
		{
			name:            "invalid_state",
			token:           testTokenConstant,
			arguments:       []string{"list", testRepositoryConstant, "--state", "merged"},
			expectedCode:    result.ErrorCodeValidationFailed,
			expectedMessage: "state",
		},
		{
			name:            "missing_token",
			arguments:       []string{"list", testRepositoryConstant},
			expectedCode:    result.ErrorCodeTokenMissing,
			expectedMessage: "GITHUB_TOKEN",
		},
		{
			name:            "repository_not_found",
			token:           testTokenConstant,
			arguments:       []string{"list", testRepositoryConstant},
			issueError:      githubapi.APIError{StatusCode: 404, Message: "Not Found", Cause: errors.New("404 Not Found")},
			expectedCode:    result.ErrorCodeNotFound,
			expectedMessage: "💡 Verify the repository name and your access permissions",
			expectAPICall:   true,
		},
		{
			name:            "network_failure",
			token:           testTokenConstant,
			arguments:       []string{"list", testRepositoryConstant},
			issueError:      githubapi.NetworkError{Cause: errors.New("dial tcp: connection refused")},
			expectedCode:    result.ErrorCodeNetworkError,
			expectedMessage: "💡 Check your internet connection and try again",
			expectAPICall:   true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			harness := newCommandHarness(testInstance, testCase.token)
			harness.client.IssueError = testCase.issueError
			harness.command.SetArgs(testCase.arguments)

			executionError := harness.command.Execute()
			require.Error(testInstance, executionError)
			require.True(testInstance, errorhandler.IsReported(executionError))
			require.Equal(testInstance, int(testCase.expectedCode), errorhandler.ExitCode(executionError))
			require.Contains(testInstance, harness.stderr.String(), testCase.expectedMessage)
			require.Equal(testInstance, testCase.expectAPICall, len(harness.client.IssueCalls) > 0)
		})
	}
}

func TestIssuesCommandRejectsExtraArguments(testInstance *testing.T) {
	harness := newCommandHarness(testInstance, testTokenConstant)
	harness.command.SetArgs([]string{"show", testRepositoryConstant, "1", "extra"})

	require.Error(testInstance, harness.command.Execute())
	require.Empty(testInstance, harness.client.IssueCalls)
}
