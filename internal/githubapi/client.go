package githubapi

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v81/github"
	"github.com/google/go-querystring/query"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const (
	userRepositoriesEndpointConstant             = "user/repos"
	endpointWithQueryTemplateConstant            = "%s?%s"
	trailingSlashConstant                        = "/"
	invalidBaseURLTemplateConstant               = "invalid GitHub base URL %q: %w"
	apiErrorTemplateConstant                     = "GitHub API Error: %s"
	apiErrorWithStatusTemplateConstant           = "GitHub API Error: %s (%d)"
	networkErrorTemplateConstant                 = "network error: %v"
	invalidInputErrorTemplateConstant            = "%s: %s"
	requiredValueMessageConstant                 = "value required"
	positiveValueMessageConstant                 = "must be positive"
	ownerFieldNameConstant                       = "owner"
	repositoryFieldNameConstant                  = "repository"
	titleFieldNameConstant                       = "title"
	numberFieldNameConstant                      = "number"
	requestLogMessageConstant                    = "github api request"
	operationFieldNameConstant                   = "operation"
	fetchRepositoriesOperationNameConstant       = OperationName("FetchRepositories")
	listIssuesOperationNameConstant              = OperationName("ListIssues")
	createIssueOperationNameConstant             = OperationName("CreateIssue")
	getIssueOperationNameConstant                = OperationName("GetIssue")
	authenticatedLoginOperationNameConstant      = OperationName("AuthenticatedLogin")
	repositoryQueryEncodingErrorTemplateConstant = "unable to encode repository query: %w"
)

// OperationName identifies a GitHub API operation for logging.
type OperationName string

// Configuration describes how to reach the GitHub REST API.
type Configuration struct {
	Token      string
	BaseURL    string
	HTTPClient *http.Client
}

// Client wraps the go-github client with the calls consumed by the components.
type Client struct {
	github *github.Client
	logger *zap.Logger
}

// InvalidInputError surfaces validation issues for operation inputs.
type InvalidInputError struct {
	FieldName string
	Message   string
}

// Error describes the invalid input.
func (inputError InvalidInputError) Error() string {
	return fmt.Sprintf(invalidInputErrorTemplateConstant, inputError.FieldName, inputError.Message)
}

// APIError reports an error response returned by GitHub.
type APIError struct {
	StatusCode int
	Message    string
	Cause      error
}

// Error describes the API failure.
func (apiError APIError) Error() string {
	if apiError.StatusCode == 0 {
		return fmt.Sprintf(apiErrorTemplateConstant, apiError.Message)
	}
	return fmt.Sprintf(apiErrorWithStatusTemplateConstant, apiError.Message, apiError.StatusCode)
}

// Unwrap exposes the underlying go-github error.
func (apiError APIError) Unwrap() error {
	return apiError.Cause
}

// NetworkError reports a transport failure before GitHub produced a response.
type NetworkError struct {
	Cause error
}

// Error describes the transport failure.
func (networkError NetworkError) Error() string {
	return fmt.Sprintf(networkErrorTemplateConstant, networkError.Cause)
}

// Unwrap exposes the underlying transport error.
func (networkError NetworkError) Unwrap() error {
	return networkError.Cause
}

// NewClient constructs a Client authenticated with a static token.
func NewClient(executionContext context.Context, configuration Configuration, logger *zap.Logger) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := configuration.HTTPClient
	trimmedToken := strings.TrimSpace(configuration.Token)
	if len(trimmedToken) > 0 {
		tokenContext := executionContext
		if httpClient != nil {
			tokenContext = context.WithValue(executionContext, oauth2.HTTPClient, httpClient)
		}
		httpClient = oauth2.NewClient(tokenContext, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: trimmedToken}))
	}

	githubClient := github.NewClient(httpClient)

	trimmedBaseURL := strings.TrimSpace(configuration.BaseURL)
	if len(trimmedBaseURL) > 0 {
		if !strings.HasSuffix(trimmedBaseURL, trailingSlashConstant) {
			trimmedBaseURL += trailingSlashConstant
		}
		parsedBaseURL, parseError := url.Parse(trimmedBaseURL)
		if parseError != nil {
			return nil, fmt.Errorf(invalidBaseURLTemplateConstant, configuration.BaseURL, parseError)
		}
		githubClient.BaseURL = parsedBaseURL
	}

	return &Client{github: githubClient, logger: logger}, nil
}

// FetchRepositoriesPayload returns the raw body of GET /user/repos for the authenticated user.
func (client *Client) FetchRepositoriesPayload(executionContext context.Context, options RepositoryListOptions) ([]byte, error) {
	client.logRequest(fetchRepositoriesOperationNameConstant)

	queryValues, encodingError := query.Values(options)
	if encodingError != nil {
		return nil, fmt.Errorf(repositoryQueryEncodingErrorTemplateConstant, encodingError)
	}

	endpoint := userRepositoriesEndpointConstant
	if encodedQuery := queryValues.Encode(); len(encodedQuery) > 0 {
		endpoint = fmt.Sprintf(endpointWithQueryTemplateConstant, endpoint, encodedQuery)
	}

	request, requestError := client.github.NewRequest(http.MethodGet, endpoint, nil)
	if requestError != nil {
		return nil, requestError
	}

	var payload bytes.Buffer
	if _, doError := client.github.Do(executionContext, request, &payload); doError != nil {
		return nil, normalizeError(doError)
	}

	return payload.Bytes(), nil
}

// ListIssues lists issues of a repository.
func (client *Client) ListIssues(executionContext context.Context, owner string, repository string, options IssueListOptions) ([]*github.Issue, error) {
	if inputError := requireRepository(owner, repository); inputError != nil {
		return nil, inputError
	}
	client.logRequest(listIssuesOperationNameConstant)

	issues, _, listError := client.github.Issues.ListByRepo(executionContext, owner, repository, &github.IssueListByRepoOptions{
		State:       strings.TrimSpace(options.State),
		ListOptions: github.ListOptions{PerPage: options.PerPage},
	})
	if listError != nil {
		return nil, normalizeError(listError)
	}
	return issues, nil
}

// CreateIssue opens an issue in a repository.
func (client *Client) CreateIssue(executionContext context.Context, owner string, repository string, request IssueCreateRequest) (*github.Issue, error) {
	if inputError := requireRepository(owner, repository); inputError != nil {
		return nil, inputError
	}
	if len(strings.TrimSpace(request.Title)) == 0 {
		return nil, InvalidInputError{FieldName: titleFieldNameConstant, Message: requiredValueMessageConstant}
	}
	client.logRequest(createIssueOperationNameConstant)

	issueRequest := &github.IssueRequest{Title: github.Ptr(request.Title)}
	if len(request.Body) > 0 {
		issueRequest.Body = github.Ptr(request.Body)
	}
	if len(request.Labels) > 0 {
		issueRequest.Labels = github.Ptr(append([]string(nil), request.Labels...))
	}
	if len(request.Assignees) > 0 {
		issueRequest.Assignees = github.Ptr(append([]string(nil), request.Assignees...))
	}

	issue, _, createError := client.github.Issues.Create(executionContext, owner, repository, issueRequest)
	if createError != nil {
		return nil, normalizeError(createError)
	}
	return issue, nil
}

// GetIssue fetches a single issue by number.
func (client *Client) GetIssue(executionContext context.Context, owner string, repository string, number int) (*github.Issue, error) {
	if inputError := requireRepository(owner, repository); inputError != nil {
		return nil, inputError
	}
	if number <= 0 {
		return nil, InvalidInputError{FieldName: numberFieldNameConstant, Message: positiveValueMessageConstant}
	}
	client.logRequest(getIssueOperationNameConstant)

	issue, _, getError := client.github.Issues.Get(executionContext, owner, repository, number)
	if getError != nil {
		return nil, normalizeError(getError)
	}
	return issue, nil
}

// AuthenticatedLogin resolves the login of the token owner.
func (client *Client) AuthenticatedLogin(executionContext context.Context) (string, error) {
	client.logRequest(authenticatedLoginOperationNameConstant)

	user, _, userError := client.github.Users.Get(executionContext, "")
	if userError != nil {
		return "", normalizeError(userError)
	}
	return user.GetLogin(), nil
}

func (client *Client) logRequest(operation OperationName) {
	client.logger.Debug(requestLogMessageConstant, zap.String(operationFieldNameConstant, string(operation)))
}

func requireRepository(owner string, repository string) error {
	if len(strings.TrimSpace(owner)) == 0 {
		return InvalidInputError{FieldName: ownerFieldNameConstant, Message: requiredValueMessageConstant}
	}
	if len(strings.TrimSpace(repository)) == 0 {
		return InvalidInputError{FieldName: repositoryFieldNameConstant, Message: requiredValueMessageConstant}
	}
	return nil
}

func normalizeError(failure error) error {
	var errorResponse *github.ErrorResponse
	if errors.As(failure, &errorResponse) {
		return APIError{StatusCode: statusCode(errorResponse.Response), Message: errorResponse.Message, Cause: failure}
	}

	var rateLimitError *github.RateLimitError
	if errors.As(failure, &rateLimitError) {
		return APIError{StatusCode: statusCode(rateLimitError.Response), Message: rateLimitError.Message, Cause: failure}
	}

	var urlError *url.Error
	if errors.As(failure, &urlError) {
		return NetworkError{Cause: failure}
	}

	return failure
}

func statusCode(response *http.Response) int {
	if response == nil {
		return 0
	}
	return response.StatusCode
}
