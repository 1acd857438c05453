package dependencies

import (
	"context"
	"io"

	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/clone"
	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/filesystem"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/githubauth"
	"github.com/temirov/ghzero/internal/issues"
	"github.com/temirov/ghzero/internal/prompt"
	"github.com/temirov/ghzero/internal/repos"
	"github.com/temirov/ghzero/internal/ui"
)

const (
	tokenResolutionFailedMessageConstant = "github token resolution failed"
	tokenResolvedMessageConstant         = "github token resolved"
	tokenVariableFieldConstant           = "variable"
	tokenSourceFieldConstant             = "source"
)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// GitHubClient is the GitHub API surface used by the commands.
type GitHubClient interface {
	repos.RepositoryPayloadFetcher
	issues.IssueService
	clone.OwnerResolver
}

// TokenResolver locates the GitHub token for an invocation.
type TokenResolver interface {
	Resolve() (githubauth.Resolution, error)
}

// ResolveFileSystem returns the provided filesystem or an OS-backed default.
func ResolveFileSystem(existing filesystem.FileSystem) filesystem.FileSystem {
	if existing != nil {
		return existing
	}
	return filesystem.OSFileSystem{}
}

// ResolveGitExecutor returns the provided executor or constructs a shell-backed default. Console
// command events are attached when humanReadable is set.
func ResolveGitExecutor(existing GitExecutor, logger *zap.Logger, humanReadable bool) (GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	var observers []execshell.CommandEventObserver
	if humanReadable {
		observers = append(observers, ui.NewProgressLogger(logger))
	}

	shellExecutor, creationError := execshell.NewShellExecutor(logger, execshell.NewProcessRunner(), observers...)
	if creationError != nil {
		return nil, creationError
	}
	return shellExecutor, nil
}

// ResolveTokenResolver returns the provided resolver or the environment-backed default.
func ResolveTokenResolver(existing TokenResolver) TokenResolver {
	if existing != nil {
		return existing
	}
	return githubauth.NewResolver()
}

// ResolveToken resolves the GitHub token, returning an empty token when none is configured.
func ResolveToken(resolver TokenResolver, logger *zap.Logger) string {
	resolution, resolveError := ResolveTokenResolver(resolver).Resolve()
	if resolveError != nil {
		if logger != nil {
			logger.Warn(tokenResolutionFailedMessageConstant, zap.Error(resolveError))
		}
		return ""
	}
	if logger != nil && resolution.Found() {
		logger.Debug(tokenResolvedMessageConstant, zap.String(tokenVariableFieldConstant, resolution.Variable), zap.String(tokenSourceFieldConstant, string(resolution.Source)))
	}
	return resolution.Token
}

// ResolveGitHubClient returns the provided client or constructs a go-github backed default.
func ResolveGitHubClient(executionContext context.Context, existing GitHubClient, configuration githubapi.Configuration, logger *zap.Logger) (GitHubClient, error) {
	if existing != nil {
		return existing, nil
	}
	client, creationError := githubapi.NewClient(executionContext, configuration, logger)
	if creationError != nil {
		return nil, creationError
	}
	return client, nil
}

// ResolvePrompter returns the provided prompter or one reading from input and writing to output.
func ResolvePrompter(existing prompt.Prompter, input io.Reader, output io.Writer) prompt.Prompter {
	if existing != nil {
		return existing
	}
	return prompt.NewIOPrompter(input, output)
}
