// Package sharedtest provides recording collaborators for command tests.
package sharedtest

import (
	"context"
	"errors"

	"github.com/google/go-github/v81/github"

	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/githubauth"
	"github.com/temirov/ghzero/internal/prompt"
)

// ErrScriptExhausted indicates a prompter was asked more questions than it has answers for.
var ErrScriptExhausted = errors.New("scripted prompter has no remaining answers")

// TokenResolver resolves a fixed token.
type TokenResolver struct {
	Token string
}

// Resolve returns the fixed token as if read from GITHUB_TOKEN.
func (resolver TokenResolver) Resolve() (githubauth.Resolution, error) {
	if len(resolver.Token) == 0 {
		return githubauth.Resolution{}, nil
	}
	return githubauth.Resolution{Token: resolver.Token, Variable: githubauth.EnvGitHubToken, Source: githubauth.TokenSourceEnvironment}, nil
}

// IssueCall records the repository addressed by an issue operation.
type IssueCall struct {
	Owner      string
	Repository string
}

// GitHubClient records the API calls made by a command and answers them from its fields.
type GitHubClient struct {
	RepositoriesPayload []byte
	RepositoriesError   error
	Issues              []*github.Issue
	Issue               *github.Issue
	IssueError          error
	Login               string
	LoginError          error

	RepositoryRequests []githubapi.RepositoryListOptions
	ListRequests       []githubapi.IssueListOptions
	CreateRequests     []githubapi.IssueCreateRequest
	ShowRequests       []int
	IssueCalls         []IssueCall
	LoginCalls         int
}

// FetchRepositoriesPayload returns the configured payload.
func (client *GitHubClient) FetchRepositoriesPayload(_ context.Context, options githubapi.RepositoryListOptions) ([]byte, error) {
	client.RepositoryRequests = append(client.RepositoryRequests, options)
	return client.RepositoriesPayload, client.RepositoriesError
}

// ListIssues returns the configured issues.
func (client *GitHubClient) ListIssues(_ context.Context, owner string, repository string, options githubapi.IssueListOptions) ([]*github.Issue, error) {
	client.IssueCalls = append(client.IssueCalls, IssueCall{Owner: owner, Repository: repository})
	client.ListRequests = append(client.ListRequests, options)
	return client.Issues, client.IssueError
}

// CreateIssue returns the configured issue.
func (client *GitHubClient) CreateIssue(_ context.Context, owner string, repository string, request githubapi.IssueCreateRequest) (*github.Issue, error) {
	client.IssueCalls = append(client.IssueCalls, IssueCall{Owner: owner, Repository: repository})
	client.CreateRequests = append(client.CreateRequests, request)
	return client.Issue, client.IssueError
}

// GetIssue returns the configured issue.
func (client *GitHubClient) GetIssue(_ context.Context, owner string, repository string, number int) (*github.Issue, error) {
	client.IssueCalls = append(client.IssueCalls, IssueCall{Owner: owner, Repository: repository})
	client.ShowRequests = append(client.ShowRequests, number)
	return client.Issue, client.IssueError
}

// AuthenticatedLogin returns the configured login.
func (client *GitHubClient) AuthenticatedLogin(context.Context) (string, error) {
	client.LoginCalls++
	return client.Login, client.LoginError
}

// GitExecutor records git invocations and answers them through Respond when set.
type GitExecutor struct {
	Respond  func(details execshell.CommandDetails) (execshell.ExecutionResult, error)
	Recorded []execshell.CommandDetails
}

// ExecuteGit records the invocation.
func (executor *GitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	executor.Recorded = append(executor.Recorded, details)
	if executor.Respond == nil {
		return execshell.ExecutionResult{}, nil
	}
	return executor.Respond(details)
}

// Prompter answers questions from scripted selections, confirmations and text responses.
type Prompter struct {
	Selections    []string
	Confirmations []bool
	Texts         []string

	SelectQuestions  []string
	SelectOptions    [][]prompt.Option
	ConfirmQuestions []string
	TextQuestions    []string
}

// Confirm returns the next scripted confirmation.
func (prompter *Prompter) Confirm(question string, _ bool) (bool, error) {
	prompter.ConfirmQuestions = append(prompter.ConfirmQuestions, question)
	if len(prompter.Confirmations) == 0 {
		return false, ErrScriptExhausted
	}
	answer := prompter.Confirmations[0]
	prompter.Confirmations = prompter.Confirmations[1:]
	return answer, nil
}

// Select returns the option whose value matches the next scripted selection.
func (prompter *Prompter) Select(question string, options []prompt.Option, _ int) (prompt.Option, error) {
	prompter.SelectQuestions = append(prompter.SelectQuestions, question)
	prompter.SelectOptions = append(prompter.SelectOptions, options)
	if len(prompter.Selections) == 0 {
		return prompt.Option{}, ErrScriptExhausted
	}
	selection := prompter.Selections[0]
	prompter.Selections = prompter.Selections[1:]
	for _, option := range options {
		if option.Value == selection {
			return option, nil
		}
	}
	return prompt.Option{}, prompt.ErrSelectionAttemptsExhausted
}

// Text returns the next scripted text response.
func (prompter *Prompter) Text(question string, _ string) (string, error) {
	prompter.TextQuestions = append(prompter.TextQuestions, question)
	if len(prompter.Texts) == 0 {
		return "", ErrScriptExhausted
	}
	answer := prompter.Texts[0]
	prompter.Texts = prompter.Texts[1:]
	return answer, nil
}
