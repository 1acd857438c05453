package repos

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/temirov/ghzero/cmd/cli/shared"
	"github.com/temirov/ghzero/internal/clone"
	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/filesystem"
	"github.com/temirov/ghzero/internal/output"
	"github.com/temirov/ghzero/internal/prompt"
	"github.com/temirov/ghzero/internal/repos"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
)

const (
	commandUseConstant              = "repos"
	commandShortDescriptionConstant = "List and filter your GitHub repositories"
	commandLongDescriptionConstant  = "repos lists the repositories of the authenticated user, filtered by type and sorted by activity. With --interactive it prompts for the filters and offers to clone one of the listed repositories."
	commandExampleConstant          = "ghzero repos --type owner --sort pushed --limit 20\nghzero repos --format json\nghzero repos --interactive"
	typeFlagNameConstant            = "type"
	typeFlagUsageConstant           = "Repository type filter"
	sortFlagNameConstant            = "sort"
	sortFlagUsageConstant           = "Sort repositories by"
	limitFlagNameConstant           = "limit"
	limitFlagUsageConstant          = "Number of repositories to show (1-100)"
	interactiveFlagNameConstant     = "interactive"
	interactiveFlagShortConstant    = "i"
	interactiveFlagUsageConstant    = "Prompt for filters and offer to clone a listed repository"
	bannerTitleConstant             = "🐙 GitHub Zero - Repository Manager"
	fetchingMessageConstant         = "🔍 Fetching your repositories..."
	typeQuestionConstant            = "📋 What type of repositories?"
	sortQuestionConstant            = "🔄 How should we sort them?"
	limitQuestionConstant           = "🔢 How many repositories?"
	limitOptionTemplateConstant     = "%d repositories"
	selectQuestionConstant          = "🎯 Select a repository to clone:"
	confirmCloneTemplateConstant    = "🚀 Clone %s?"
	cloningTemplateConstant         = "🔄 Cloning %s..."
	clonedTemplateConstant          = "✅ Successfully cloned to ./%s"
)

var typeOptions = []prompt.Option{
	{Value: "all", Label: "All repositories"},
	{Value: "owner", Label: "Owned by me"},
	{Value: "public", Label: "Public repositories"},
	{Value: "private", Label: "Private repositories"},
	{Value: "member", Label: "Member repositories"},
}

var sortOptions = []prompt.Option{
	{Value: "updated", Label: "Recently updated"},
	{Value: "created", Label: "Recently created"},
	{Value: "pushed", Label: "Recently pushed"},
	{Value: "full_name", Label: "Alphabetical"},
}

var limitChoices = []int{5, 10, 20, 50}

// CommandBuilder assembles the repos command.
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
	WorkingDirectory             string
}

// Build constructs the repos command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUseConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	defaults := DefaultCommandConfiguration()
	command.Flags().String(typeFlagNameConstant, defaults.Type, flagutils.FormatChoiceUsage(defaults.Type, repos.TypeChoices, typeFlagUsageConstant))
	command.Flags().String(sortFlagNameConstant, defaults.Sort, flagutils.FormatChoiceUsage(defaults.Sort, repos.SortChoices, sortFlagUsageConstant))
	command.Flags().Int(limitFlagNameConstant, defaults.Limit, limitFlagUsageConstant)
	shared.AddFormatFlag(command, defaults.Format)
	flagutils.AddToggleFlag(command.Flags(), nil, interactiveFlagNameConstant, interactiveFlagShortConstant, false, interactiveFlagUsageConstant)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.applyFlags(command, builder.resolveConfiguration())
	interactive, _ := command.Flags().GetBool(interactiveFlagNameConstant)

	format, formatError := shared.ParseFormat(command, configuration.Format)
	if formatError != nil {
		return formatError
	}
	configuration.Format = string(format)

	logger := shared.ResolveLogger(builder.LoggerProvider)
	prompter := shared.ResolvePrompter(builder.PrompterFactory, command, format)
	textWriter := output.NewTextWriter(command.OutOrStdout())

	if !format.IsStructured() {
		textWriter.Banner(bannerTitleConstant)
	}

	if interactive {
		promptedConfiguration, promptError := promptFilters(prompter, configuration)
		if promptError != nil {
			return shared.ReportError(command, promptError)
		}
		configuration = promptedConfiguration
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

	if !format.IsStructured() {
		textWriter.Line("%s", textWriter.Comment(fetchingMessageConstant))
		textWriter.Blank()
	}

	component := repos.NewComponent(repos.Dependencies{Fetcher: session.Client, Token: session.Token, Logger: logger})
	envelope := component.Execute(shared.Context(command), configuration.options().Parameters())
	if !envelope.IsSuccess() {
		return shared.ReportFailure(command, envelope)
	}

	records := envelope.Data()
	if emitError := shared.Emit(command, format, records, repos.RenderText); emitError != nil {
		return emitError
	}

	if !interactive || format.IsStructured() || len(records) == 0 {
		return nil
	}
	return builder.offerClone(command, session, prompter, textWriter, records)
}

func (builder *CommandBuilder) offerClone(command *cobra.Command, session shared.Session, prompter prompt.Prompter, textWriter *output.TextWriter, records []repos.Record) error {
	choices := make([]prompt.Option, 0, len(records))
	for _, record := range records {
		choices = append(choices, prompt.Option{Value: record.CloneURL, Label: repos.SelectionLabel(record)})
	}

	selection, selectError := prompter.Select(selectQuestionConstant, choices, 0)
	if selectError != nil {
		return shared.ReportError(command, selectError)
	}

	confirmed, confirmError := prompter.Confirm(fmt.Sprintf(confirmCloneTemplateConstant, selection.Value), true)
	if confirmError != nil {
		return shared.ReportError(command, confirmError)
	}
	if !confirmed {
		return nil
	}

	logger := shared.ResolveLogger(builder.LoggerProvider)
	cloneComponent, componentError := shared.NewCloneComponent(session, shared.CloneCollaborators{
		GitExecutor:      builder.GitExecutor,
		FileSystem:       builder.FileSystem,
		WorkingDirectory: builder.WorkingDirectory,
		HumanReadable:    shared.HumanReadable(builder.HumanReadableLoggingProvider),
	}, logger)
	if componentError != nil {
		return shared.ReportError(command, componentError)
	}

	textWriter.Line("%s", textWriter.Info(fmt.Sprintf(cloningTemplateConstant, selection.Value)))
	envelope := cloneComponent.Execute(shared.Context(command), clone.Options{Repository: selection.Value}.Parameters())
	if !envelope.IsSuccess() {
		return shared.ReportFailure(command, envelope)
	}

	textWriter.Line("%s", textWriter.Info(fmt.Sprintf(clonedTemplateConstant, envelope.Data().Directory)))
	return nil
}

func promptFilters(prompter prompt.Prompter, configuration CommandConfiguration) (CommandConfiguration, error) {
	selectedType, typeError := prompter.Select(typeQuestionConstant, typeOptions, optionIndex(typeOptions, configuration.Type))
	if typeError != nil {
		return configuration, typeError
	}

	selectedSort, sortError := prompter.Select(sortQuestionConstant, sortOptions, optionIndex(sortOptions, configuration.Sort))
	if sortError != nil {
		return configuration, sortError
	}

	limitOptions := make([]prompt.Option, 0, len(limitChoices))
	for _, limit := range limitChoices {
		limitOptions = append(limitOptions, prompt.Option{Value: strconv.Itoa(limit), Label: fmt.Sprintf(limitOptionTemplateConstant, limit)})
	}
	selectedLimit, limitError := prompter.Select(limitQuestionConstant, limitOptions, optionIndex(limitOptions, strconv.Itoa(configuration.Limit)))
	if limitError != nil {
		return configuration, limitError
	}

	prompted := configuration
	prompted.Type = selectedType.Value
	prompted.Sort = selectedSort.Value
	if parsedLimit, parseError := strconv.Atoi(selectedLimit.Value); parseError == nil {
		prompted.Limit = parsedLimit
	}
	return prompted.Sanitize(), nil
}

func optionIndex(options []prompt.Option, value string) int {
	for index, option := range options {
		if option.Value == value {
			return index
		}
	}
	return 0
}

func (builder *CommandBuilder) applyFlags(command *cobra.Command, configuration CommandConfiguration) CommandConfiguration {
	flagSet := command.Flags()
	if flagSet.Changed(typeFlagNameConstant) {
		configuration.Type, _ = flagSet.GetString(typeFlagNameConstant)
	}
	if flagSet.Changed(sortFlagNameConstant) {
		configuration.Sort, _ = flagSet.GetString(sortFlagNameConstant)
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
