package clone

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/cmd/cli/shared"
	"github.com/temirov/ghzero/internal/clone"
	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/filesystem"
	"github.com/temirov/ghzero/internal/gitrepo"
	"github.com/temirov/ghzero/internal/output"
	"github.com/temirov/ghzero/internal/prompt"
	"github.com/temirov/ghzero/internal/repos"
	"github.com/temirov/ghzero/internal/result"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
	pathutils "github.com/temirov/ghzero/internal/utils/path"
)

const (
	commandUseConstant              = "clone [repository]"
	commandShortDescriptionConstant = "Clone a GitHub repository with interactive selection"
	commandLongDescriptionConstant  = "clone resolves owner/repo names, bare names and URLs into a clone URL and runs git clone. Without a repository argument, or with --interactive, it offers a selection of your recently updated repositories."
	commandExampleConstant          = "ghzero clone octocat/hello\nghzero clone hello --directory ~/src/hello\nghzero clone --interactive"
	directoryFlagNameConstant       = "directory"
	directoryFlagShortConstant      = "d"
	directoryFlagUsageConstant      = "Directory to clone into"
	forceFlagNameConstant           = "force"
	forceFlagShortConstant          = "f"
	forceFlagUsageConstant          = "Clone even when the target directory exists"
	interactiveFlagNameConstant     = "interactive"
	interactiveFlagShortConstant    = "i"
	interactiveFlagUsageConstant    = "Select the repository from your repository list"
	bannerTitleConstant             = "📥 GitHub Zero - Clone Repository"
	fetchingMessageConstant         = "🔍 Fetching your repositories..."
	fetchFailedTemplateConstant     = "💥 Failed to fetch repositories: %s"
	noRepositoriesMessageConstant   = "📭 No repositories found."
	selectQuestionConstant          = "📥 Which repository would you like to clone?"
	manualOptionValueConstant       = "manual"
	manualOptionLabelConstant       = "⌨️ Enter repository manually"
	manualEntryQuestionConstant     = "📝 Enter repository manually (owner/repo or full URL):"
	manualSelectionQuestionConstant = "📝 Enter repository (owner/repo or full URL):"
	noSelectionMessageConstant      = "👋 No repository selected. See you next time!"
	cloningTemplateConstant         = "📥 Cloning %s..."
	runningTemplateConstant         = "🚀 Running: %s"
	directoryExistsTemplateConstant = "📁 Directory '%s' exists. Continue anyway?"
	cancelledMessageConstant        = "👋 Clone cancelled."
	clonedTemplateConstant          = "✅ Successfully cloned %s!"
	cloneFailedTemplateConstant     = "💥 Failed to clone %s"
	selectionFetchFailedLogConstant = "repository selection listing failed"
	repositorySelectedLogConstant   = "repository selected"
	repositoryFieldConstant         = "repository"
	directoryCheckFailedLogConstant = "unable to inspect clone target"
	directoryFieldConstant          = "directory"
)

// CommandBuilder assembles the clone command.
type CommandBuilder struct {
	LoggerProvider               shared.LoggerProvider
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	GitHubConfigurationProvider  shared.GitHubConfigurationProvider
	TokenResolver                dependencies.TokenResolver
	GitHubClient                 dependencies.GitHubClient
	GitExecutor                  dependencies.GitExecutor
	FileSystem                   filesystem.FileSystem
	PrompterFactory              shared.PrompterFactory
	HomeExpander                 *pathutils.HomeExpander
	WorkingDirectory             string
}

// Build constructs the clone command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	command.Flags().StringP(directoryFlagNameConstant, directoryFlagShortConstant, "", directoryFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), nil, forceFlagNameConstant, forceFlagShortConstant, false, forceFlagUsageConstant)
	flagutils.AddToggleFlag(command.Flags(), nil, interactiveFlagNameConstant, interactiveFlagShortConstant, false, interactiveFlagUsageConstant)
	shared.AddFormatFlag(command, DefaultCommandConfiguration().Format)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	flagSet := command.Flags()
	if flagSet.Changed(shared.FormatFlagName) {
		configuration.Format, _ = flagSet.GetString(shared.FormatFlagName)
	}
	force, _ := flagSet.GetBool(forceFlagNameConstant)
	interactive, _ := flagSet.GetBool(interactiveFlagNameConstant)
	directoryFlag, _ := flagSet.GetString(directoryFlagNameConstant)

	format, formatError := shared.ParseFormat(command, configuration.Format)
	if formatError != nil {
		return formatError
	}

	logger := shared.ResolveLogger(builder.LoggerProvider)
	prompter := shared.ResolvePrompter(builder.PrompterFactory, command, format)
	textWriter := shared.ProgressWriter(command, format)
	if !format.IsStructured() {
		textWriter.Banner(bannerTitleConstant)
	}

	session, sessionError := shared.OpenSession(command, shared.SessionOptions{
		TokenResolver:         builder.TokenResolver,
		Client:                builder.GitHubClient,
		ConfigurationProvider: builder.GitHubConfigurationProvider,
		Logger:                logger,
	})
	if sessionError != nil {
		return shared.ReportError(command, sessionError)
	}
	if len(session.Token) == 0 {
		return shared.ReportFailure(command, result.Failure[clone.Outcome](component.TokenMissingMessage, result.ErrorCodeTokenMissing))
	}

	repository := ""
	if len(arguments) > 0 {
		repository = strings.TrimSpace(arguments[0])
	}
	if len(repository) == 0 || interactive {
		selected, selectionError := builder.selectRepository(command, session, prompter, textWriter, configuration, logger)
		if selectionError != nil {
			return shared.ReportError(command, selectionError)
		}
		repository = selected
	}
	if len(repository) == 0 {
		textWriter.Line("%s", textWriter.Comment(noSelectionMessageConstant))
		return nil
	}

	directory := strings.TrimSpace(builder.resolveHomeExpander().Expand(strings.TrimSpace(directoryFlag)))
	targetDirectory := directory
	if len(targetDirectory) == 0 {
		targetDirectory = gitrepo.DirectoryName(repository)
	}

	textWriter.Line("%s", textWriter.Info(fmt.Sprintf(cloningTemplateConstant, repository)))

	if !force && builder.targetExists(targetDirectory, logger) {
		confirmed, confirmError := prompter.Confirm(fmt.Sprintf(directoryExistsTemplateConstant, targetDirectory), false)
		if confirmError != nil {
			return shared.ReportError(command, confirmError)
		}
		if !confirmed {
			textWriter.Line("%s", textWriter.Comment(cancelledMessageConstant))
			return errorhandler.ReportedError{Code: result.ErrorCodeUnknown, Message: cancelledMessageConstant}
		}
		force = true
	}

	cloneComponent, componentError := shared.NewCloneComponent(session, shared.CloneCollaborators{
		GitExecutor:      builder.GitExecutor,
		FileSystem:       builder.FileSystem,
		WorkingDirectory: builder.WorkingDirectory,
		HumanReadable:    shared.HumanReadable(builder.HumanReadableLoggingProvider),
		CommandAnnouncer: func(commandLine string) {
			textWriter.Line("%s", textWriter.Comment(fmt.Sprintf(runningTemplateConstant, commandLine)))
			textWriter.Blank()
		},
	}, logger)
	if componentError != nil {
		return shared.ReportError(command, componentError)
	}

	envelope := cloneComponent.Execute(shared.Context(command), clone.Options{
		Repository: repository,
		Directory:  directory,
		Force:      force,
		Format:     string(format),
	}.Parameters())
	if !envelope.IsSuccess() {
		textWriter.Line("%s", textWriter.Error(fmt.Sprintf(cloneFailedTemplateConstant, repository)))
		return shared.ReportFailure(command, envelope)
	}

	return shared.Emit(command, format, envelope.Data(), func(successWriter *output.TextWriter, outcome clone.Outcome) {
		successWriter.Line("%s", successWriter.Info(fmt.Sprintf(clonedTemplateConstant, outcome.Repository)))
	})
}

func (builder *CommandBuilder) selectRepository(command *cobra.Command, session shared.Session, prompter prompt.Prompter, textWriter *output.TextWriter, configuration CommandConfiguration, logger *zap.Logger) (string, error) {
	textWriter.Line("%s", textWriter.Comment(fetchingMessageConstant))

	listing := repos.NewComponent(repos.Dependencies{Fetcher: session.Client, Token: session.Token, Logger: logger})
	envelope := listing.Execute(shared.Context(command), repos.Options{
		Type:  repos.DefaultType,
		Sort:  repos.DefaultSort,
		Limit: configuration.SelectionLimit,
	}.Parameters())
	if !envelope.IsSuccess() {
		logger.Debug(selectionFetchFailedLogConstant, zap.String(repositoryFieldConstant, envelope.ErrorMessage()))
		textWriter.Line("%s", textWriter.Error(fmt.Sprintf(fetchFailedTemplateConstant, envelope.ErrorMessage())))
		return promptText(prompter, manualEntryQuestionConstant)
	}

	records := envelope.Data()
	if len(records) == 0 {
		textWriter.Line("%s", textWriter.Comment(noRepositoriesMessageConstant))
		return promptText(prompter, manualEntryQuestionConstant)
	}

	options := []prompt.Option{{Value: manualOptionValueConstant, Label: manualOptionLabelConstant}}
	for _, record := range records {
		options = append(options, prompt.Option{Value: record.FullName, Label: repos.SelectionLabel(record)})
	}

	selection, selectError := prompter.Select(selectQuestionConstant, options, 1)
	if selectError != nil {
		return "", selectError
	}
	if selection.Value == manualOptionValueConstant {
		return promptText(prompter, manualSelectionQuestionConstant)
	}

	logger.Debug(repositorySelectedLogConstant, zap.String(repositoryFieldConstant, selection.Value))
	return selection.Value, nil
}

func (builder *CommandBuilder) targetExists(directory string, logger *zap.Logger) bool {
	target := filesystem.Resolve(shared.ResolveWorkingDirectory(builder.WorkingDirectory), directory)
	exists, existsError := filesystem.Exists(dependencies.ResolveFileSystem(builder.FileSystem), target)
	if existsError != nil {
		logger.Debug(directoryCheckFailedLogConstant, zap.String(directoryFieldConstant, target), zap.Error(existsError))
		return false
	}
	return exists
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func promptText(prompter prompt.Prompter, question string) (string, error) {
	answer, answerError := prompter.Text(question, "")
	if answerError != nil {
		return "", answerError
	}
	return strings.TrimSpace(answer), nil
}

