package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	clonecmd "github.com/temirov/ghzero/cmd/cli/clone"
	issuescmd "github.com/temirov/ghzero/cmd/cli/issues"
	reposcmd "github.com/temirov/ghzero/cmd/cli/repos"
	"github.com/temirov/ghzero/cmd/cli/shared"
	"github.com/temirov/ghzero/internal/utils"
	flagutils "github.com/temirov/ghzero/internal/utils/flags"
	pathutils "github.com/temirov/ghzero/internal/utils/path"
)

const (
	applicationNameConstant                 = "ghzero"
	applicationShortDescriptionConstant     = "A zero-friction GitHub command-line companion"
	applicationLongDescriptionConstant      = "ghzero lists your GitHub repositories, clones them and manages issues, rendering results as text, JSON or YAML."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	githubConfigurationKeyConstant          = "github"
	environmentPrefixConstant               = "GHZERO"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	invocationIdentifierFieldConstant       = "invocation_id"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	rootCommandInfoMessageConstant          = "ghzero CLI executed"
	rootCommandDebugMessageConstant         = "ghzero CLI diagnostics"
	logFieldCommandNameConstant             = "command_name"
	logFieldArgumentCountConstant           = "argument_count"
	logFieldArgumentsConstant               = "arguments"
	loggerNotInitializedMessageConstant     = "logger not initialized"
	defaultConfigurationSearchPathConstant  = "."
	toolsConfigurationKeyConstant           = "tools"
	reposConfigurationKeyConstant           = toolsConfigurationKeyConstant + ".repos"
	issuesConfigurationKeyConstant          = toolsConfigurationKeyConstant + ".issues"
	cloneConfigurationKeyConstant           = toolsConfigurationKeyConstant + ".clone"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	GitHub shared.GitHubConfiguration     `mapstructure:"github"`
	Tools  ApplicationToolsConfiguration  `mapstructure:"tools"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// ApplicationToolsConfiguration holds configuration for the CLI subcommands.
type ApplicationToolsConfiguration struct {
	Repos  reposcmd.CommandConfiguration  `mapstructure:"repos"`
	Issues issuescmd.CommandConfiguration `mapstructure:"issues"`
	Clone  clonecmd.CommandConfiguration  `mapstructure:"clone"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand            *cobra.Command
	configurationLoader    *utils.ConfigurationLoader
	loggerFactory          *utils.LoggerFactory
	logger                 *zap.Logger
	configuration          ApplicationConfiguration
	configurationMetadata  utils.LoadedConfiguration
	configurationFilePath  string
	logLevelFlagValue      string
	logFormatFlagValue     string
	commandContextAccessor utils.CommandContextAccessor
	homeExpander           *pathutils.HomeExpander
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		[]string{defaultConfigurationSearchPathConstant, utils.UserConfigurationSearchPath(applicationNameConstant)},
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader:    configurationLoader,
		loggerFactory:          utils.NewLoggerFactory(),
		logger:                 zap.NewNop(),
		commandContextAccessor: utils.NewCommandContextAccessor(),
		homeExpander:           pathutils.NewHomeExpander(),
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return application.runRootCommand(command, arguments)
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	reposBuilder := reposcmd.CommandBuilder{
		LoggerProvider:               application.loggerProvider,
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() reposcmd.CommandConfiguration {
			return application.configuration.Tools.Repos
		},
		GitHubConfigurationProvider: application.githubConfiguration,
	}
	reposCommand, reposBuildError := reposBuilder.Build()
	if reposBuildError == nil {
		cobraCommand.AddCommand(reposCommand)
	}

	issuesBuilder := issuescmd.CommandBuilder{
		LoggerProvider:               application.loggerProvider,
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() issuescmd.CommandConfiguration {
			return application.configuration.Tools.Issues
		},
		GitHubConfigurationProvider: application.githubConfiguration,
	}
	issuesCommand, issuesBuildError := issuesBuilder.Build()
	if issuesBuildError == nil {
		cobraCommand.AddCommand(issuesCommand)
	}

	cloneBuilder := clonecmd.CommandBuilder{
		LoggerProvider:               application.loggerProvider,
		HumanReadableLoggingProvider: application.humanReadableLoggingEnabled,
		ConfigurationProvider: func() clonecmd.CommandConfiguration {
			return application.configuration.Tools.Clone
		},
		GitHubConfigurationProvider: application.githubConfiguration,
		HomeExpander:                application.homeExpander,
	}
	cloneCommand, cloneBuildError := cloneBuilder.Build()
	if cloneBuildError == nil {
		cobraCommand.AddCommand(cloneCommand)
	}

	application.rootCommand = cobraCommand

	return application
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	return application.ExecuteWithArguments(os.Args[1:])
}

// ExecuteWithArguments runs the command hierarchy against the provided arguments. Yes/no toggle
// values written as separate words are joined onto their flags first.
func (application *Application) ExecuteWithArguments(arguments []string) error {
	application.rootCommand.SetArgs(flagutils.NormalizeToggleArguments(arguments))
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil && executionError == nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// RootCommand exposes the Cobra root for output redirection and inspection.
func (application *Application) RootCommand() *cobra.Command {
	return application.rootCommand
}

// Configuration returns the configuration resolved for the last invocation.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	return NewApplication().Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelError),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatStructured),
	}
	defaultValueSets := []map[string]any{
		shared.DefaultConfigurationValues(githubConfigurationKeyConstant),
		reposcmd.DefaultConfigurationValues(reposConfigurationKeyConstant),
		issuescmd.DefaultConfigurationValues(issuesConfigurationKeyConstant),
		clonecmd.DefaultConfigurationValues(cloneConfigurationKeyConstant),
	}
	for _, defaultValueSet := range defaultValueSets {
		for configurationKey, configurationValue := range defaultValueSet {
			defaultValues[configurationKey] = configurationValue
		}
	}

	configurationFilePath := application.homeExpander.Expand(application.configurationFilePath)
	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	executionContext := context.Background()
	if command != nil && command.Context() != nil {
		executionContext = command.Context()
	}
	executionContext = application.commandContextAccessor.WithConfigurationFilePath(executionContext, application.configurationMetadata.ConfigFileUsed)
	executionContext, invocationIdentifier := application.commandContextAccessor.WithInvocationIdentifier(executionContext)

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
		zap.String(invocationIdentifierFieldConstant, invocationIdentifier),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	if command != nil {
		command.SetContext(executionContext)
		if rootCommand := command.Root(); rootCommand != nil {
			rootCommand.SetContext(executionContext)
		}
	}

	return nil
}

func (application *Application) loggerProvider() *zap.Logger {
	return application.logger
}

func (application *Application) githubConfiguration() shared.GitHubConfiguration {
	return application.configuration.GitHub
}

func (application *Application) humanReadableLoggingEnabled() bool {
	logFormatValue := strings.TrimSpace(application.configuration.Common.LogFormat)
	return strings.EqualFold(logFormatValue, string(utils.LogFormatConsole))
}

func (application *Application) runRootCommand(command *cobra.Command, arguments []string) error {
	if application.logger == nil {
		return errors.New(loggerNotInitializedMessageConstant)
	}

	application.logger.Info(
		rootCommandInfoMessageConstant,
		zap.String(logFieldCommandNameConstant, command.Name()),
		zap.Int(logFieldArgumentCountConstant, len(arguments)),
	)

	application.logger.Debug(
		rootCommandDebugMessageConstant,
		zap.Strings(logFieldArgumentsConstant, arguments),
	)

	return command.Help()
}

func (application *Application) flushLogger() error {
	return application.syncLoggerInstance(application.logger)
}

func (application *Application) syncLoggerInstance(logger *zap.Logger) error {
	if logger == nil {
		return nil
	}

	syncError := logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	rootCommand := command.Root()
	if rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet == nil {
			continue
		}

		if flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
