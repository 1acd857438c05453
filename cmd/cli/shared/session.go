package shared

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/output"
	"github.com/temirov/ghzero/internal/prompt"
)

// LoggerProvider supplies the logger shared by the commands.
type LoggerProvider func() *zap.Logger

// GitHubConfiguration describes how the commands reach the GitHub API.
type GitHubConfiguration struct {
	BaseURL string `mapstructure:"base_url"`
}

// DefaultConfigurationValues returns the GitHub defaults keyed beneath rootKey.
func DefaultConfigurationValues(rootKey string) map[string]any {
	return map[string]any{
		rootKey + ".base_url": "",
	}
}

// GitHubConfigurationProvider supplies the GitHub API configuration.
type GitHubConfigurationProvider func() GitHubConfiguration

// Session bundles the token and client resolved for one command invocation.
type Session struct {
	Token  string
	Client dependencies.GitHubClient
}

// SessionOptions configures OpenSession.
type SessionOptions struct {
	TokenResolver         dependencies.TokenResolver
	Client                dependencies.GitHubClient
	ConfigurationProvider GitHubConfigurationProvider
	Logger                *zap.Logger
}

// OpenSession resolves the GitHub token and constructs the API client. A missing token is not an
// error here; components refuse to run without one.
func OpenSession(command *cobra.Command, options SessionOptions) (Session, error) {
	token := dependencies.ResolveToken(options.TokenResolver, options.Logger)

	baseURL := ""
	if options.ConfigurationProvider != nil {
		baseURL = strings.TrimSpace(options.ConfigurationProvider().BaseURL)
	}

	client, clientError := dependencies.ResolveGitHubClient(Context(command), options.Client, githubapi.Configuration{
		Token:   token,
		BaseURL: baseURL,
	}, options.Logger)
	if clientError != nil {
		return Session{}, clientError
	}

	return Session{Token: token, Client: client}, nil
}

// ResolveLogger returns the provided logger or a no-op logger.
func ResolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

// HumanReadable evaluates the optional human-readable logging provider.
func HumanReadable(provider func() bool) bool {
	if provider == nil {
		return false
	}
	return provider()
}

// ResolveWorkingDirectory returns the configured directory or the process working directory.
func ResolveWorkingDirectory(configured string) string {
	trimmed := strings.TrimSpace(configured)
	if len(trimmed) > 0 {
		return trimmed
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return ""
	}
	return workingDirectory
}

// PrompterFactory constructs the prompter used by interactive flows.
type PrompterFactory func(*cobra.Command) prompt.Prompter

// ResolvePrompter returns the prompter produced by factory or one bound to the command streams.
// Questions go to stderr for structured formats so stdout carries only the encoded document.
func ResolvePrompter(factory PrompterFactory, command *cobra.Command, format output.Format) prompt.Prompter {
	if factory != nil {
		if prompter := factory(command); prompter != nil {
			return prompter
		}
	}
	return dependencies.ResolvePrompter(nil, command.InOrStdin(), ProgressWriter(command, format).Writer())
}

// ProgressWriter returns the writer for banners, progress lines and prompts: stdout for text and
// stderr for structured formats.
func ProgressWriter(command *cobra.Command, format output.Format) *output.TextWriter {
	if format.IsStructured() {
		return output.NewTextWriter(command.ErrOrStderr())
	}
	return output.NewTextWriter(command.OutOrStdout())
}
