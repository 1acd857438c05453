package clone

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/filesystem"
	"github.com/temirov/ghzero/internal/gitrepo"
	"github.com/temirov/ghzero/internal/result"
)

// Parameter names accepted by the clone component.
const (
	ParameterRepository = "repository"
	ParameterDirectory  = "directory"
	ParameterForce      = "force"
	ParameterFormat     = "format"
)

const (
	componentNameConstant             = "clone"
	componentDescriptionConstant      = "Clone GitHub repositories"
	componentVersionConstant          = "1.0.0"
	componentCategoryConstant         = "repository"
	cloneSubcommandConstant           = "clone"
	terminalPromptVariableConstant    = "GIT_TERMINAL_PROMPT"
	terminalPromptDisabledConstant    = "0"
	commandTemplateConstant           = "git clone %s \"%s\""
	directoryExistsTemplateConstant   = "Directory '%s' already exists. Use force parameter to override."
	repositoryNotFoundMarkerConstant  = "Repository not found"
	permissionDeniedMarkerConstant    = "Permission denied"
	alreadyExistsMarkerConstant       = "already exists"
	unresolvedHostMarkerConstant      = "Could not resolve host"
	repositoryNotFoundMessageConstant = "Repository not found. Check the repository name and your access permissions."
	permissionDeniedMessageConstant   = "Permission denied. Check your GitHub token or SSH key setup."
	directoryNotEmptyMessageConstant  = "Directory already exists and is not empty."
	networkFailureMessageConstant     = "Network error. Check your internet connection."
	cloneFailedTemplateConstant       = "Clone failed: %s"
	invalidRepositoryTemplateConstant = "Invalid repository identifier: %s"
	directoryCheckTemplateConstant    = "unable to inspect directory %s: %w"
	missingExecutorMessageConstant    = "git executor not configured"
	ownerResolutionFailedLogConstant  = "owner resolution failed; using unqualified repository name"
	cloneTargetResolvedLogConstant    = "clone target resolved"
	repositoryFieldNameConstant       = "repository"
	cloneURLFieldNameConstant         = "clone_url"
	directoryFieldNameConstant        = "directory"
	outputLineSeparatorConstant       = "\n"
)

var errExecutorNotConfigured = errors.New(missingExecutorMessageConstant)

// GitExecutor runs git commands.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// OwnerResolver resolves the login used to qualify bare repository names.
type OwnerResolver interface {
	AuthenticatedLogin(executionContext context.Context) (string, error)
}

// Options are the decoded parameters of a clone invocation.
type Options struct {
	Repository string `mapstructure:"repository"`
	Directory  string `mapstructure:"directory"`
	Force      bool   `mapstructure:"force"`
	Format     string `mapstructure:"format"`
}

// Parameters converts options into component parameters.
func (options Options) Parameters() component.Parameters {
	parameters := component.Parameters{
		ParameterRepository: options.Repository,
		ParameterForce:      options.Force,
	}
	if len(strings.TrimSpace(options.Directory)) > 0 {
		parameters[ParameterDirectory] = options.Directory
	}
	if len(options.Format) > 0 {
		parameters[ParameterFormat] = options.Format
	}
	return parameters
}

// Outcome describes a finished clone.
type Outcome struct {
	Repository string   `json:"repository" yaml:"repository"`
	CloneURL   string   `json:"clone_url" yaml:"clone_url"`
	Directory  string   `json:"directory" yaml:"directory"`
	Command    string   `json:"command" yaml:"command"`
	Output     []string `json:"output" yaml:"output"`
	Success    bool     `json:"success" yaml:"success"`
}

// Dependencies wires the collaborators of the clone component.
type Dependencies struct {
	Executor         GitExecutor
	FileSystem       filesystem.FileSystem
	OwnerResolver    OwnerResolver
	WorkingDirectory string
	Token            string
	Logger           *zap.Logger
	// CommandAnnouncer, when set, receives the git command line just before it runs.
	CommandAnnouncer func(commandLine string)
}

// Schema describes the parameters accepted by the clone component.
func Schema() component.Schema {
	return component.Schema{
		Required: []string{ParameterRepository},
		Fields: map[string]component.FieldDefinition{
			ParameterRepository: {Type: component.FieldTypeString, Description: "Repository identifier (owner/repo or URL)"},
			ParameterDirectory:  {Type: component.FieldTypeString, Description: "Target directory for clone"},
			ParameterForce:      {Type: component.FieldTypeBoolean, Default: false, Description: "Force clone even if directory exists"},
			ParameterFormat: {
				Type:        component.FieldTypeString,
				Enum:        []string{"json", "array", "text", "yaml"},
				Default:     "array",
				Description: "Output format",
			},
		},
	}
}

// NewComponent constructs the clone component.
func NewComponent(dependencies Dependencies) *component.Component[Outcome] {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fileSystem := dependencies.FileSystem
	if fileSystem == nil {
		fileSystem = filesystem.OSFileSystem{}
	}
	cloner := repositoryCloner{
		executor:         dependencies.Executor,
		fileSystem:       fileSystem,
		ownerResolver:    dependencies.OwnerResolver,
		workingDirectory: dependencies.WorkingDirectory,
		logger:           logger,
		announce:         dependencies.CommandAnnouncer,
	}
	return component.New(component.Definition[Outcome]{
		Metadata: result.Metadata{
			Name:        componentNameConstant,
			Description: componentDescriptionConstant,
			Version:     componentVersionConstant,
			Category:    componentCategoryConstant,
		},
		Schema:           Schema(),
		SupportedFormats: []string{"json", "array", "text", "yaml"},
		Operation:        cloner.clone,
	}, dependencies.Token, logger)
}

type repositoryCloner struct {
	executor         GitExecutor
	fileSystem       filesystem.FileSystem
	ownerResolver    OwnerResolver
	workingDirectory string
	logger           *zap.Logger
	announce         func(commandLine string)
}

func (cloner repositoryCloner) clone(executionContext context.Context, parameters component.Parameters) (Outcome, error) {
	var options Options
	if decodeError := component.DecodeParameters(parameters, &options); decodeError != nil {
		return Outcome{}, decodeError
	}

	identifier, identifierError := gitrepo.ParseRepositoryIdentifier(options.Repository)
	if identifierError != nil {
		return Outcome{}, errorhandler.ValidationError{Message: fmt.Sprintf(invalidRepositoryTemplateConstant, options.Repository)}
	}

	cloneURL := identifier.CloneURL(cloner.resolveOwner(executionContext, identifier))
	directory := strings.TrimSpace(options.Directory)
	if len(directory) == 0 {
		directory = gitrepo.DirectoryName(identifier.Raw)
	}

	cloner.logger.Debug(
		cloneTargetResolvedLogConstant,
		zap.String(repositoryFieldNameConstant, identifier.Raw),
		zap.String(cloneURLFieldNameConstant, cloneURL),
		zap.String(directoryFieldNameConstant, directory),
	)

	if !options.Force {
		exists, existsError := filesystem.Exists(cloner.fileSystem, filesystem.Resolve(cloner.workingDirectory, directory))
		if existsError != nil {
			return Outcome{}, fmt.Errorf(directoryCheckTemplateConstant, directory, existsError)
		}
		if exists {
			return Outcome{}, fmt.Errorf(directoryExistsTemplateConstant, directory)
		}
	}

	if cloner.executor == nil {
		return Outcome{}, errExecutorNotConfigured
	}

	commandLine := fmt.Sprintf(commandTemplateConstant, cloneURL, directory)
	if cloner.announce != nil {
		cloner.announce(commandLine)
	}

	executionResult, executionError := cloner.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{cloneSubcommandConstant, cloneURL, directory},
		WorkingDirectory:     cloner.workingDirectory,
		EnvironmentVariables: map[string]string{terminalPromptVariableConstant: terminalPromptDisabledConstant},
	})
	if executionError != nil {
		return Outcome{}, ClassifyCloneFailure(executionError)
	}

	return Outcome{
		Repository: options.Repository,
		CloneURL:   cloneURL,
		Directory:  directory,
		Command:    commandLine,
		Output:     outputLines(executionResult.CombinedOutput()),
		Success:    true,
	}, nil
}

func (cloner repositoryCloner) resolveOwner(executionContext context.Context, identifier gitrepo.RepositoryIdentifier) string {
	if !identifier.NeedsOwner() || cloner.ownerResolver == nil {
		return ""
	}
	login, loginError := cloner.ownerResolver.AuthenticatedLogin(executionContext)
	if loginError != nil {
		cloner.logger.Warn(ownerResolutionFailedLogConstant, zap.String(repositoryFieldNameConstant, identifier.Raw), zap.Error(loginError))
		return ""
	}
	return login
}

// ClassifyCloneFailure converts a failed git clone into a user-facing error based on its output.
func ClassifyCloneFailure(executionError error) error {
	var failedError execshell.CommandFailedError
	if !errors.As(executionError, &failedError) {
		return executionError
	}

	combinedOutput := failedError.Result.CombinedOutput()
	switch {
	case strings.Contains(combinedOutput, repositoryNotFoundMarkerConstant):
		return errors.New(repositoryNotFoundMessageConstant)
	case strings.Contains(combinedOutput, permissionDeniedMarkerConstant):
		return errors.New(permissionDeniedMessageConstant)
	case strings.Contains(combinedOutput, alreadyExistsMarkerConstant):
		return errors.New(directoryNotEmptyMessageConstant)
	case strings.Contains(combinedOutput, unresolvedHostMarkerConstant):
		return errors.New(networkFailureMessageConstant)
	default:
		return fmt.Errorf(cloneFailedTemplateConstant, combinedOutput)
	}
}

func outputLines(combinedOutput string) []string {
	if len(combinedOutput) == 0 {
		return []string{}
	}
	return strings.Split(combinedOutput, outputLineSeparatorConstant)
}
