package issues

import (
	"context"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/cmd/cli/shared"
	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/gitrepo"
	"github.com/temirov/ghzero/internal/issues"
	"github.com/temirov/ghzero/internal/output"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
)

const (
	commandUseConstant               = "issues [list|create|show] [owner/repo] [number]"
	commandShortDescriptionConstant  = "Create, list, and manage GitHub issues"
	commandLongDescriptionConstant   = "issues lists, creates or shows issues of a repository. When the repository is omitted it is detected from the origin remote of the current Git working tree."
	commandExampleConstant           = "ghzero issues list octocat/hello --state all\nghzero issues create octocat/hello --title \"Broken build\" --labels bug,ci\nghzero issues show octocat/hello 42"
	maximumArgumentsConstant         = 3
	titleFlagNameConstant            = "title"
	titleFlagUsageConstant           = "Issue title for create action"
	bodyFlagNameConstant             = "body"
	bodyFlagUsageConstant            = "Issue body for create action"
	labelsFlagNameConstant           = "labels"
	labelsFlagUsageConstant          = "Comma-separated labels for create action"
	assigneesFlagNameConstant        = "assignees"
	assigneesFlagUsageConstant       = "Comma-separated assignees for create action"
	stateFlagNameConstant            = "state"
	stateFlagUsageConstant           = "Issue state filter"
	limitFlagNameConstant            = "limit"
	limitFlagUsageConstant           = "Number of issues to display"
	fetchingIssuesMessageConstant    = "🔍 Fetching issues..."
	creatingIssueMessageConstant     = "🔄 Creating issue..."
	fetchingIssueMessageConstant     = "🔍 Fetching issue..."
	processingMessageConstant        = "🔄 Processing..."
	repositoryMissingMessageConstant = "❌ No repository specified and could not detect from current directory"
	usageHintConstant                = "💡 Usage: ghzero issues list owner/repo"
	gitRepositoryHintConstant        = "💡 Or run from within a Git repository"
	repositoryDetectedLogConstant    = "repository detected from origin remote"
	repositoryMissingLogConstant     = "repository detection failed"
	repositoryFieldConstant          = "repository"
)

var progressMessages = map[issues.Action]string{
	issues.ActionList:   fetchingIssuesMessageConstant,
	issues.ActionCreate: creatingIssueMessageConstant,
	issues.ActionShow:   fetchingIssueMessageConstant,
}

// RepositoryDetector resolves the GitHub repository of a working tree.
type RepositoryDetector interface {
	ResolveRepository(executionContext context.Context, workingDirectory string) (gitrepo.RemoteURL, error)
}

// CommandBuilder assembles the issues command.
type CommandBuilder struct {
	LoggerProvider               shared.LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitHubConfigurationProvider  shared.GitHubConfigurationProvider
	TokenResolver                dependencies.TokenResolver
	GitHubClient                 dependencies.GitHubClient
	GitExecutor                  dependencies.GitExecutor
	RepositoryDetector           RepositoryDetector
	WorkingDirectory             string
}

// Build constructs the issues command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(maximumArgumentsConstant),
		RunE:    builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().String(titleFlagNameConstant, "", titleFlagUsageConstant)
	command.Flags().String(bodyFlagNameConstant, "", bodyFlagUsageConstant)
	command.Flags().StringSlice(labelsFlagNameConstant, nil, labelsFlagUsageConstant)
	command.Flags().StringSlice(assigneesFlagNameConstant, nil, assigneesFlagUsageConstant)
	command.Flags().String(stateFlagNameConstant, defaults.State, flagutils.FormatChoiceUsage(defaults.State, issues.StateChoices, stateFlagUsageConstant))
	command.Flags().Int(limitFlagNameConstant, defaults.Limit, limitFlagUsageConstant)
	shared.AddFormatFlag(command, defaults.Format)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.applyFlags(command, builder.resolveConfiguration())

	format, formatError := shared.ParseFormat(command, configuration.Format)
	if formatError != nil {
		return formatError
	}

	logger := shared.ResolveLogger(builder.LoggerProvider)

	action := issues.Action(issues.DefaultAction)
	if len(arguments) > 0 && len(strings.TrimSpace(arguments[0])) > 0 {
		action = issues.Action(strings.ToLower(strings.TrimSpace(arguments[0])))
	}

	repository := ""
	if len(arguments) > 1 {
		repository = strings.TrimSpace(arguments[1])
	}
	if len(repository) == 0 {
		detected, detectError := builder.detectRepository(command)
		if detectError != nil {
			logger.Debug(repositoryMissingLogConstant, zap.Error(detectError))
			return shared.ReportMessages(command, repositoryMissingMessageConstant, usageHintConstant, gitRepositoryHintConstant)
		}
		logger.Debug(repositoryDetectedLogConstant, zap.String(repositoryFieldConstant, detected))
		repository = detected
	}

	parameters := component.Parameters{
		issues.ParameterAction:     string(action),
		issues.ParameterRepository: repository,
		issues.ParameterState:      configuration.State,
		issues.ParameterLimit:      configuration.Limit,
		issues.ParameterFormat:     string(format),
	}
	if len(arguments) > 2 {
		parameters[issues.ParameterNumber] = issueNumber(arguments[2])
	}
	builder.applyCreateFlags(command, parameters)

	session, sessionError := shared.OpenSession(command, shared.SessionOptions{
		TokenResolver:         builder.TokenResolver,
		Client:                builder.GitHubClient,
		ConfigurationProvider: builder.GitHubConfigurationProvider,
		Logger:                logger,
	})
	if sessionError != nil {
		return shared.ReportError(command, sessionError)
	}

	if !format.IsStructured() {
		textWriter := output.NewTextWriter(command.OutOrStdout())
		textWriter.Line("%s", textWriter.Comment(progressMessage(action)))
		textWriter.Blank()
	}

	issuesComponent := issues.NewComponent(issues.Dependencies{Service: session.Client, Token: session.Token, Logger: logger})
	envelope := issuesComponent.Execute(shared.Context(command), parameters)
	if !envelope.IsSuccess() {
		return shared.ReportFailure(command, envelope)
	}

	return shared.Emit(command, format, envelope.Data(), issues.RenderText)
}

func (builder *CommandBuilder) detectRepository(command *cobra.Command) (string, error) {
	detector := builder.RepositoryDetector
	if detector == nil {
		logger := shared.ResolveLogger(builder.LoggerProvider)
		gitExecutor, executorError := dependencies.ResolveGitExecutor(builder.GitExecutor, logger, false)
		if executorError != nil {
			return "", executorError
		}
		resolver, resolverError := gitrepo.NewRemoteResolver(gitExecutor)
		if resolverError != nil {
			return "", resolverError
		}
		detector = resolver
	}

	remote, resolveError := detector.ResolveRepository(shared.Context(command), shared.ResolveWorkingDirectory(builder.WorkingDirectory))
	if resolveError != nil {
		return "", resolveError
	}
	return remote.FullName(), nil
}

func (builder *CommandBuilder) applyCreateFlags(command *cobra.Command, parameters component.Parameters) {
	flagSet := command.Flags()
	if flagSet.Changed(titleFlagNameConstant) {
		parameters[issues.ParameterTitle], _ = flagSet.GetString(titleFlagNameConstant)
	}
	if flagSet.Changed(bodyFlagNameConstant) {
		parameters[issues.ParameterBody], _ = flagSet.GetString(bodyFlagNameConstant)
	}
	if flagSet.Changed(labelsFlagNameConstant) {
		parameters[issues.ParameterLabels], _ = flagSet.GetStringSlice(labelsFlagNameConstant)
	}
	if flagSet.Changed(assigneesFlagNameConstant) {
		parameters[issues.ParameterAssignees], _ = flagSet.GetStringSlice(assigneesFlagNameConstant)
	}
}

func (builder *CommandBuilder) applyFlags(command *cobra.Command, configuration CommandConfiguration) CommandConfiguration {
	flagSet := command.Flags()
	if flagSet.Changed(stateFlagNameConstant) {
		configuration.State, _ = flagSet.GetString(stateFlagNameConstant)
	}
	if flagSet.Changed(limitFlagNameConstant) {
		configuration.Limit, _ = flagSet.GetInt(limitFlagNameConstant)
	}
	if flagSet.Changed(shared.FormatFlagName) {
		configuration.Format, _ = flagSet.GetString(shared.FormatFlagName)
	}
	return configuration.Sanitize()
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

// issueNumber converts the positional number, keeping unparseable input so validation rejects it.
func issueNumber(value string) any {
	trimmed := strings.TrimSpace(value)
	if number, parseError := strconv.Atoi(trimmed); parseError == nil {
		return number
	}
	return trimmed
}

func progressMessage(action issues.Action) string {
	if message, exists := progressMessages[action]; exists {
		return message
	}
	return processingMessageConstant
}
