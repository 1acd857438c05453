package issues

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/go-github/v81/github"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/errorhandler"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/gitrepo"
	"github.com/temirov/ghzero/internal/result"
)

// Action selects the issue operation.
type Action string

// Supported actions.
const (
	ActionList   Action = "list"
	ActionCreate Action = "create"
	ActionShow   Action = "show"
)

// Parameter names accepted by the issues component.
const (
	ParameterAction     = "action"
	ParameterRepository = "repository"
	ParameterNumber     = "number"
	ParameterTitle      = "title"
	ParameterBody       = "body"
	ParameterLabels     = "labels"
	ParameterAssignees  = "assignees"
	ParameterState      = "state"
	ParameterLimit      = "limit"
	ParameterFormat     = "format"
)

// Defaults applied when parameters are omitted.
const (
	DefaultAction = string(ActionList)
	DefaultState  = "open"
	DefaultLimit  = 10
	MinimumLimit  = 1
	MaximumLimit  = 100
)

const (
	componentNameConstant           = "issues"
	componentDescriptionConstant    = "Create, list, and manage GitHub issues"
	componentVersionConstant        = "1.0.0"
	componentCategoryConstant       = "issues"
	titleRequiredMessageConstant    = "Title is required for creating issues"
	numberRequiredMessageConstant   = "Issue number is required"
	repositoryFormatMessageConstant = "Repository must be in owner/repo format"
	unknownActionTemplateConstant   = "Unknown action: %s. Use: list, create, show"
	missingServiceMessageConstant   = "issue service not configured"
	actionFieldNameConstant         = "action"
	repositoryFieldNameConstant     = "repository"
	countFieldNameConstant          = "count"
	issueActionLogMessageConstant   = "issue action completed"
)

var errServiceNotConfigured = errors.New(missingServiceMessageConstant)

// StateChoices lists the accepted issue state filters.
var StateChoices = []string{"open", "closed", "all"}

// IssueService performs the GitHub issue calls used by the component.
type IssueService interface {
	ListIssues(executionContext context.Context, owner string, repository string, options githubapi.IssueListOptions) ([]*github.Issue, error)
	CreateIssue(executionContext context.Context, owner string, repository string, request githubapi.IssueCreateRequest) (*github.Issue, error)
	GetIssue(executionContext context.Context, owner string, repository string, number int) (*github.Issue, error)
}

// Options are the decoded parameters of an issues invocation.
type Options struct {
	Action     string   `mapstructure:"action"`
	Repository string   `mapstructure:"repository"`
	Number     int      `mapstructure:"number"`
	Title      string   `mapstructure:"title"`
	Body       string   `mapstructure:"body"`
	Labels     []string `mapstructure:"labels"`
	Assignees  []string `mapstructure:"assignees"`
	State      string   `mapstructure:"state"`
	Limit      int      `mapstructure:"limit"`
	Format     string   `mapstructure:"format"`
}

// DefaultOptions returns the options applied when parameters are omitted.
func DefaultOptions() Options {
	return Options{Action: DefaultAction, State: DefaultState, Limit: DefaultLimit}
}

// Output is the data returned by the issues component: a list for the list action and a
// single record otherwise.
type Output struct {
	Action Action
	Issues []Record
	Issue  *Record
}

// MarshalJSON encodes the list or the single record.
func (output Output) MarshalJSON() ([]byte, error) {
	return json.Marshal(output.value())
}

// MarshalYAML encodes the list or the single record.
func (output Output) MarshalYAML() (any, error) {
	return output.value(), nil
}

func (output Output) value() any {
	if output.Action == ActionList {
		if output.Issues == nil {
			return []Record{}
		}
		return output.Issues
	}
	return output.Issue
}

// Dependencies wires the collaborators of the issues component.
type Dependencies struct {
	Service IssueService
	Token   string
	Logger  *zap.Logger
}

// Schema describes the parameters accepted by the issues component.
func Schema() component.Schema {
	return component.Schema{
		Required: []string{ParameterRepository},
		Fields: map[string]component.FieldDefinition{
			ParameterAction: {
				Type:        component.FieldTypeString,
				Enum:        []string{string(ActionList), string(ActionCreate), string(ActionShow)},
				Default:     DefaultAction,
				Description: "Action to perform",
			},
			ParameterRepository: {Type: component.FieldTypeString, Description: "Repository name (owner/repo)"},
			ParameterNumber:     {Type: component.FieldTypeInteger, Description: "Issue number for show action"},
			ParameterTitle:      {Type: component.FieldTypeString, Description: "Issue title for create action"},
			ParameterBody:       {Type: component.FieldTypeString, Description: "Issue body for create action"},
			ParameterLabels:     {Type: component.FieldTypeArray, Description: "Labels for create action"},
			ParameterAssignees:  {Type: component.FieldTypeArray, Description: "Assignees for create action"},
			ParameterState: {
				Type:        component.FieldTypeString,
				Enum:        StateChoices,
				Default:     DefaultState,
				Description: "Issue state filter for list action",
			},
			ParameterLimit: {
				Type:        component.FieldTypeInteger,
				Minimum:     component.Bound(MinimumLimit),
				Maximum:     component.Bound(MaximumLimit),
				Default:     DefaultLimit,
				Description: "Number of issues to return for list action",
			},
			ParameterFormat: {
				Type:        component.FieldTypeString,
				Enum:        []string{"json", "array", "text", "yaml"},
				Default:     "array",
				Description: "Output format",
			},
		},
	}
}

// NewComponent constructs the issues component.
func NewComponent(dependencies Dependencies) *component.Component[Output] {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	manager := issueManager{service: dependencies.Service, logger: logger}
	return component.New(component.Definition[Output]{
		Metadata: result.Metadata{
			Name:        componentNameConstant,
			Description: componentDescriptionConstant,
			Version:     componentVersionConstant,
			Category:    componentCategoryConstant,
		},
		Schema:           Schema(),
		SupportedFormats: []string{"json", "array", "text", "yaml"},
		Operation:        manager.run,
	}, dependencies.Token, logger)
}

type issueManager struct {
	service IssueService
	logger  *zap.Logger
}

func (manager issueManager) run(executionContext context.Context, parameters component.Parameters) (Output, error) {
	options := DefaultOptions()
	if decodeError := component.DecodeParameters(parameters, &options); decodeError != nil {
		return Output{}, decodeError
	}

	owner, repository, repositoryError := gitrepo.SplitFullName(strings.TrimSpace(options.Repository))
	if repositoryError != nil {
		return Output{}, errorhandler.ValidationError{Message: repositoryFormatMessageConstant}
	}

	action := Action(options.Action)
	switch action {
	case ActionList, ActionCreate, ActionShow:
	default:
		return Output{}, errorhandler.ValidationError{Message: fmt.Sprintf(unknownActionTemplateConstant, options.Action)}
	}

	if action == ActionCreate && len(strings.TrimSpace(options.Title)) == 0 {
		return Output{}, errorhandler.ValidationError{Message: titleRequiredMessageConstant}
	}
	if action == ActionShow && options.Number <= 0 {
		return Output{}, errorhandler.ValidationError{Message: numberRequiredMessageConstant}
	}

	if manager.service == nil {
		return Output{}, errServiceNotConfigured
	}

	var operationOutput Output
	var operationError error
	switch action {
	case ActionList:
		operationOutput, operationError = manager.list(executionContext, owner, repository, options)
	case ActionCreate:
		operationOutput, operationError = manager.create(executionContext, owner, repository, options)
	case ActionShow:
		operationOutput, operationError = manager.show(executionContext, owner, repository, options)
	}
	if operationError != nil {
		return Output{}, operationError
	}

	manager.logger.Debug(
		issueActionLogMessageConstant,
		zap.String(actionFieldNameConstant, string(action)),
		zap.String(repositoryFieldNameConstant, gitrepo.RemoteURL{Owner: owner, Repository: repository}.FullName()),
		zap.Int(countFieldNameConstant, len(operationOutput.Issues)),
	)
	return operationOutput, nil
}

func (manager issueManager) list(executionContext context.Context, owner string, repository string, options Options) (Output, error) {
	issues, listError := manager.service.ListIssues(executionContext, owner, repository, githubapi.IssueListOptions{
		State:   options.State,
		PerPage: options.Limit,
	})
	if listError != nil {
		return Output{}, listError
	}
	return Output{Action: ActionList, Issues: flattenIssues(issues, options.Limit)}, nil
}

func (manager issueManager) create(executionContext context.Context, owner string, repository string, options Options) (Output, error) {
	issue, createError := manager.service.CreateIssue(executionContext, owner, repository, githubapi.IssueCreateRequest{
		Title:     strings.TrimSpace(options.Title),
		Body:      options.Body,
		Labels:    trimValues(options.Labels),
		Assignees: trimValues(options.Assignees),
	})
	if createError != nil {
		return Output{}, createError
	}
	return singleOutput(ActionCreate, issue), nil
}

func (manager issueManager) show(executionContext context.Context, owner string, repository string, options Options) (Output, error) {
	issue, getError := manager.service.GetIssue(executionContext, owner, repository, options.Number)
	if getError != nil {
		return Output{}, getError
	}
	return singleOutput(ActionShow, issue), nil
}

func singleOutput(action Action, issue *github.Issue) Output {
	if issue == nil {
		issue = &github.Issue{}
	}
	record := flattenIssue(issue)
	return Output{Action: action, Issue: &record}
}

func trimValues(values []string) []string {
	trimmed := make([]string, 0, len(values))
	for _, value := range values {
		candidate := strings.TrimSpace(value)
		if len(candidate) == 0 {
			continue
		}
		trimmed = append(trimmed, candidate)
	}
	return trimmed
}
