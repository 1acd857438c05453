package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/temirov/ghzero/internal/execshell"
)

const (
	gitRemoteSubcommandConstant = "remote"
	gitGetURLSubcommandConstant = "get-url"
	// DefaultRemoteName is the remote consulted when detecting the current repository.
	DefaultRemoteName = "origin"
)

// ErrGitExecutorNotConfigured indicates the resolver was built without a git executor.
var ErrGitExecutorNotConfigured = errors.New("git executor not configured")

// ErrRemoteNotGitHub indicates the remote does not point at github.com.
var ErrRemoteNotGitHub = errors.New("remote is not hosted on github.com")

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RemoteResolver detects the GitHub repository a working tree belongs to.
type RemoteResolver struct {
	executor   GitExecutor
	remoteName string
}

// NewRemoteResolver constructs a RemoteResolver reading the origin remote.
func NewRemoteResolver(executor GitExecutor) (*RemoteResolver, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}
	return &RemoteResolver{executor: executor, remoteName: DefaultRemoteName}, nil
}

// ResolveRepository returns the GitHub remote of the repository in workingDirectory.
func (resolver *RemoteResolver) ResolveRepository(executionContext context.Context, workingDirectory string) (RemoteURL, error) {
	executionResult, executionError := resolver.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRemoteSubcommandConstant, gitGetURLSubcommandConstant, resolver.remoteName},
		WorkingDirectory: workingDirectory,
	})
	if executionError != nil {
		return RemoteURL{}, executionError
	}

	remote, parseError := ParseRemoteURL(strings.TrimSpace(executionResult.StandardOutput))
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	if !remote.IsGitHub() {
		return RemoteURL{}, ErrRemoteNotGitHub
	}
	return remote, nil
}
