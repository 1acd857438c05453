package repos

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/go-github/v81/github"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/result"
)

// Parameter names accepted by the repos component.
const (
	ParameterType   = "type"
	ParameterSort   = "sort"
	ParameterLimit  = "limit"
	ParameterFormat = "format"
)

// Defaults applied when parameters are omitted.
const (
	DefaultType           = "all"
	DefaultSort           = "updated"
	DefaultLimit          = 10
	MinimumLimit          = 1
	MaximumLimit          = 100
	componentNameConstant = "repos"
)

const (
	componentDescriptionConstant    = "List and filter GitHub repositories"
	componentVersionConstant        = "1.0.0"
	componentCategoryConstant       = "repository"
	apiErrorMessageTemplateConstant = "GitHub API Error: %v"
	unexpectedFormatMessageConstant = "Unexpected API response format"
	messageKeyConstant              = "message"
	missingFetcherMessageConstant   = "repository fetcher not configured"
	timestampLayoutConstant         = time.RFC3339
	decodedCountLogMessageConstant  = "repositories decoded"
	countFieldNameConstant          = "count"
	limitFieldNameConstant          = "limit"
)

// ErrUnexpectedResponseFormat indicates the repository payload was neither a list nor an error object.
var ErrUnexpectedResponseFormat = errors.New(unexpectedFormatMessageConstant)

var errFetcherNotConfigured = errors.New(missingFetcherMessageConstant)

// TypeChoices lists the accepted repository type filters.
var TypeChoices = []string{"all", "owner", "public", "private", "member"}

// SortChoices lists the accepted repository sort orders.
var SortChoices = []string{"created", "updated", "pushed", "full_name"}

// RepositoryPayloadFetcher retrieves the raw repository listing of the authenticated user.
type RepositoryPayloadFetcher interface {
	FetchRepositoriesPayload(executionContext context.Context, options githubapi.RepositoryListOptions) ([]byte, error)
}

// Record is the flattened representation of a repository.
type Record struct {
	ID              int64   `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	FullName        string  `json:"full_name" yaml:"full_name"`
	Description     *string `json:"description" yaml:"description"`
	Language        *string `json:"language" yaml:"language"`
	Private         bool    `json:"private" yaml:"private"`
	CloneURL        string  `json:"clone_url" yaml:"clone_url"`
	HTMLURL         string  `json:"html_url" yaml:"html_url"`
	CreatedAt       string  `json:"created_at" yaml:"created_at"`
	UpdatedAt       string  `json:"updated_at" yaml:"updated_at"`
	PushedAt        string  `json:"pushed_at" yaml:"pushed_at"`
	StargazersCount int     `json:"stargazers_count" yaml:"stargazers_count"`
	WatchersCount   int     `json:"watchers_count" yaml:"watchers_count"`
	ForksCount      int     `json:"forks_count" yaml:"forks_count"`
}

// Options are the decoded parameters of a repository listing.
type Options struct {
	Type   string `mapstructure:"type"`
	Sort   string `mapstructure:"sort"`
	Limit  int    `mapstructure:"limit"`
	Format string `mapstructure:"format"`
}

// DefaultOptions returns the options applied when parameters are omitted.
func DefaultOptions() Options {
	return Options{Type: DefaultType, Sort: DefaultSort, Limit: DefaultLimit}
}

// Parameters converts options into component parameters.
func (options Options) Parameters() component.Parameters {
	parameters := component.Parameters{
		ParameterType:  options.Type,
		ParameterSort:  options.Sort,
		ParameterLimit: options.Limit,
	}
	if len(options.Format) > 0 {
		parameters[ParameterFormat] = options.Format
	}
	return parameters
}

// Dependencies wires the collaborators of the repos component.
type Dependencies struct {
	Fetcher RepositoryPayloadFetcher
	Token   string
	Logger  *zap.Logger
}

// Schema describes the parameters accepted by the repos component.
func Schema() component.Schema {
	return component.Schema{
		Fields: map[string]component.FieldDefinition{
			ParameterType: {
				Type:        component.FieldTypeString,
				Enum:        TypeChoices,
				Default:     DefaultType,
				Description: "Repository type filter",
			},
			ParameterSort: {
				Type:        component.FieldTypeString,
				Enum:        SortChoices,
				Default:     DefaultSort,
				Description: "Sort repositories by",
			},
			ParameterLimit: {
				Type:        component.FieldTypeInteger,
				Minimum:     component.Bound(MinimumLimit),
				Maximum:     component.Bound(MaximumLimit),
				Default:     DefaultLimit,
				Description: "Number of repositories to return",
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

// NewComponent constructs the repos component.
func NewComponent(dependencies Dependencies) *component.Component[[]Record] {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	lister := repositoryLister{fetcher: dependencies.Fetcher, logger: logger}
	return component.New(component.Definition[[]Record]{
		Metadata: result.Metadata{
			Name:        componentNameConstant,
			Description: componentDescriptionConstant,
			Version:     componentVersionConstant,
			Category:    componentCategoryConstant,
		},
		Schema:           Schema(),
		SupportedFormats: []string{"json", "array", "text", "yaml"},
		Operation:        lister.list,
	}, dependencies.Token, logger)
}

type repositoryLister struct {
	fetcher RepositoryPayloadFetcher
	logger  *zap.Logger
}

func (lister repositoryLister) list(executionContext context.Context, parameters component.Parameters) ([]Record, error) {
	if lister.fetcher == nil {
		return nil, errFetcherNotConfigured
	}

	options := DefaultOptions()
	if decodeError := component.DecodeParameters(parameters, &options); decodeError != nil {
		return nil, decodeError
	}

	payload, fetchError := lister.fetcher.FetchRepositoriesPayload(executionContext, githubapi.RepositoryListOptions{
		Type:    githubapi.ParseRepositoryType(options.Type),
		Sort:    githubapi.ParseRepositorySort(options.Sort),
		PerPage: options.Limit,
	})
	if fetchError != nil {
		return nil, fetchError
	}

	records, decodeError := DecodeRepositoriesPayload(payload, options.Limit)
	if decodeError != nil {
		return nil, decodeError
	}
	lister.logger.Debug(decodedCountLogMessageConstant, zap.Int(countFieldNameConstant, len(records)), zap.Int(limitFieldNameConstant, options.Limit))
	return records, nil
}

// DecodeRepositoriesPayload interprets a raw GET /user/repos body. Error objects become errors, empty
// payloads yield no records, and at most limit records are returned when limit is positive.
func DecodeRepositoriesPayload(payload []byte, limit int) ([]Record, error) {
	trimmedPayload := bytes.TrimSpace(payload)
	if len(trimmedPayload) == 0 {
		return []Record{}, nil
	}

	var generic any
	if decodeError := json.Unmarshal(trimmedPayload, &generic); decodeError != nil {
		return nil, ErrUnexpectedResponseFormat
	}

	switch typed := generic.(type) {
	case nil:
		return []Record{}, nil
	case map[string]any:
		if message, hasMessage := typed[messageKeyConstant]; hasMessage {
			return nil, fmt.Errorf(apiErrorMessageTemplateConstant, message)
		}
		if len(typed) == 0 {
			return []Record{}, nil
		}
		return nil, ErrUnexpectedResponseFormat
	case []any:
		if len(typed) == 0 {
			return []Record{}, nil
		}
	default:
		return nil, ErrUnexpectedResponseFormat
	}

	var repositories []*github.Repository
	if decodeError := json.Unmarshal(trimmedPayload, &repositories); decodeError != nil {
		return nil, ErrUnexpectedResponseFormat
	}

	if limit > 0 && len(repositories) > limit {
		repositories = repositories[:limit]
	}

	records := make([]Record, 0, len(repositories))
	for _, repository := range repositories {
		if repository == nil {
			return nil, ErrUnexpectedResponseFormat
		}
		records = append(records, flattenRepository(repository))
	}
	return records, nil
}

func flattenRepository(repository *github.Repository) Record {
	return Record{
		ID:              repository.GetID(),
		Name:            repository.GetName(),
		FullName:        repository.GetFullName(),
		Description:     repository.Description,
		Language:        repository.Language,
		Private:         repository.GetPrivate(),
		CloneURL:        repository.GetCloneURL(),
		HTMLURL:         repository.GetHTMLURL(),
		CreatedAt:       formatTimestamp(repository.CreatedAt),
		UpdatedAt:       formatTimestamp(repository.UpdatedAt),
		PushedAt:        formatTimestamp(repository.PushedAt),
		StargazersCount: repository.GetStargazersCount(),
		WatchersCount:   repository.GetWatchersCount(),
		ForksCount:      repository.GetForksCount(),
	}
}

func formatTimestamp(timestamp *github.Timestamp) string {
	if timestamp == nil || timestamp.IsZero() {
		return ""
	}
	return timestamp.UTC().Format(timestampLayoutConstant)
}
