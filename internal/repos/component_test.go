package repos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/result"
)

const testTokenConstant = "test-token"

type stubPayloadFetcher struct {
	payload        []byte
	err            error
	calls          int
	receivedOption githubapi.RepositoryListOptions
}

func (fetcher *stubPayloadFetcher) FetchRepositoriesPayload(_ context.Context, options githubapi.RepositoryListOptions) ([]byte, error) {
	fetcher.calls++
	fetcher.receivedOption = options
	return fetcher.payload, fetcher.err
}

func buildRepositoryPayload(testInstance *testing.T, count int, private bool) []byte {
	testInstance.Helper()
	repositories := make([]map[string]any, 0, count)
	for index := 0; index < count; index++ {
		repositories = append(repositories, map[string]any{
			"id":               index + 1,
			"name":             fmt.Sprintf("project-%d", index),
			"full_name":        fmt.Sprintf("octocat/project-%d", index),
			"private":          private,
			"clone_url":        fmt.Sprintf("https://github.com/octocat/project-%d.git", index),
			"html_url":         fmt.Sprintf("https://github.com/octocat/project-%d", index),
			"created_at":       "2024-01-02T03:04:05Z",
			"updated_at":       "2024-02-03T04:05:06Z",
			"stargazers_count": index,
			"language":         "Go",
		})
	}
	payload, marshalError := json.Marshal(repositories)
	require.NoError(testInstance, marshalError)
	return payload
}

func TestComponentListsPublicRepositories(testInstance *testing.T) {
	fetcher := &stubPayloadFetcher{payload: buildRepositoryPayload(testInstance, 5, false)}
	reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Token: testTokenConstant})

	envelope := reposComponent.Execute(context.Background(), component.Parameters{
		ParameterType:  "public",
		ParameterLimit: 5,
	})

	require.True(testInstance, envelope.IsSuccess(), envelope.ErrorMessage())
	records := envelope.Data()
	require.Len(testInstance, records, 5)
	for _, record := range records {
		require.NotEmpty(testInstance, record.FullName)
		require.False(testInstance, record.Private)
		require.Nil(testInstance, record.Description)
	}
	require.Equal(testInstance, "2024-01-02T03:04:05Z", records[0].CreatedAt)
	require.Empty(testInstance, records[0].PushedAt)
	require.Equal(testInstance, githubapi.RepositoryTypePublic, fetcher.receivedOption.Type)
	require.Equal(testInstance, githubapi.RepositorySortUpdated, fetcher.receivedOption.Sort)
	require.Equal(testInstance, 5, fetcher.receivedOption.PerPage)
	require.Equal(testInstance, "repos", envelope.Metadata().Name)
	require.Equal(testInstance, "repository", envelope.Metadata().Category)
}

func TestComponentTruncatesToLimit(testInstance *testing.T) {
	fetcher := &stubPayloadFetcher{payload: buildRepositoryPayload(testInstance, 8, true)}
	reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Token: testTokenConstant})

	envelope := reposComponent.Execute(context.Background(), component.Parameters{ParameterLimit: 3})

	require.True(testInstance, envelope.IsSuccess())
	require.Len(testInstance, envelope.Data(), 3)
	require.True(testInstance, envelope.Data()[0].Private)
}

func TestComponentRequiresToken(testInstance *testing.T) {
	fetcher := &stubPayloadFetcher{payload: buildRepositoryPayload(testInstance, 1, false)}
	reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Logger: zap.NewNop()})

	envelope := reposComponent.Execute(context.Background(), component.Parameters{})

	require.False(testInstance, envelope.IsSuccess())
	require.Equal(testInstance, result.ErrorCodeTokenMissing, envelope.ErrorCode())
	require.Contains(testInstance, envelope.ErrorMessage(), "GITHUB_TOKEN")
	require.Zero(testInstance, fetcher.calls)
}

func TestComponentRejectsInvalidParameters(testInstance *testing.T) {
	testCases := []struct {
		name       string
		parameters component.Parameters
	}{
		{name: "UnknownType", parameters: component.Parameters{ParameterType: "forked"}},
		{name: "UnknownSort", parameters: component.Parameters{ParameterSort: "stars"}},
		{name: "LimitTooLow", parameters: component.Parameters{ParameterLimit: 0}},
		{name: "LimitTooHigh", parameters: component.Parameters{ParameterLimit: 101}},
		{name: "LimitWrongType", parameters: component.Parameters{ParameterLimit: "ten"}},
		{name: "UnknownFormat", parameters: component.Parameters{ParameterFormat: "xml"}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			fetcher := &stubPayloadFetcher{}
			reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Token: testTokenConstant})

			envelope := reposComponent.Execute(context.Background(), testCase.parameters)

			require.False(testInstance, envelope.IsSuccess())
			require.Equal(testInstance, result.ErrorCodeValidationFailed, envelope.ErrorCode())
			require.Zero(testInstance, fetcher.calls)
		})
	}
}

func TestComponentClassifiesFetchErrors(testInstance *testing.T) {
	fetcher := &stubPayloadFetcher{err: githubapi.NetworkError{Cause: errors.New("dial tcp: connection refused")}}
	reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Token: testTokenConstant})

	envelope := reposComponent.Execute(context.Background(), component.Parameters{})

	require.False(testInstance, envelope.IsSuccess())
	require.Equal(testInstance, result.ErrorCodeNetworkError, envelope.ErrorCode())
}

func TestComponentReportsAPIErrorObject(testInstance *testing.T) {
	fetcher := &stubPayloadFetcher{payload: []byte(`{"message":"Not Found","documentation_url":"https://docs.github.com"}`)}
	reposComponent := NewComponent(Dependencies{Fetcher: fetcher, Token: testTokenConstant})

	envelope := reposComponent.Execute(context.Background(), component.Parameters{})

	require.False(testInstance, envelope.IsSuccess())
	require.Equal(testInstance, result.ErrorCodeNotFound, envelope.ErrorCode())
	require.Equal(testInstance, "Not Found", envelope.ErrorMessage())
}

func TestDecodeRepositoriesPayload(testInstance *testing.T) {
	testCases := []struct {
		name          string
		payload       string
		expectedCount int
		expectedError string
	}{
		{name: "EmptyBody", payload: "", expectedCount: 0},
		{name: "WhitespaceBody", payload: "  \n", expectedCount: 0},
		{name: "Null", payload: "null", expectedCount: 0},
		{name: "EmptyList", payload: "[]", expectedCount: 0},
		{name: "EmptyObject", payload: "{}", expectedCount: 0},
		{name: "ErrorObject", payload: `{"message":"Bad credentials"}`, expectedError: "GitHub API Error: Bad credentials"},
		{name: "OtherObject", payload: `{"id":1}`, expectedError: "Unexpected API response format"},
		{name: "Scalar", payload: `"text"`, expectedError: "Unexpected API response format"},
		{name: "Garbage", payload: "<html>", expectedError: "Unexpected API response format"},
		{name: "ListOfScalars", payload: "[1,2]", expectedError: "Unexpected API response format"},
		{name: "ListWithNull", payload: "[null]", expectedError: "Unexpected API response format"},
		{name: "SingleRepository", payload: `[{"id":7,"full_name":"octocat/hello"}]`, expectedCount: 1},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			records, decodeError := DecodeRepositoriesPayload([]byte(testCase.payload), DefaultLimit)
			if len(testCase.expectedError) > 0 {
				require.EqualError(testInstance, decodeError, testCase.expectedError)
				return
			}
			require.NoError(testInstance, decodeError)
			require.NotNil(testInstance, records)
			require.Len(testInstance, records, testCase.expectedCount)
		})
	}
}

func TestRecordEncodesSnakeCaseFields(testInstance *testing.T) {
	records, decodeError := DecodeRepositoriesPayload([]byte(`[{"id":7,"name":"hello","full_name":"octocat/hello","description":"demo","forks_count":2}]`), 1)
	require.NoError(testInstance, decodeError)

	encoded, marshalError := json.Marshal(records[0])
	require.NoError(testInstance, marshalError)

	var fields map[string]any
	require.NoError(testInstance, json.Unmarshal(encoded, &fields))
	for _, key := range []string{"id", "name", "full_name", "description", "language", "private", "clone_url", "html_url", "created_at", "updated_at", "pushed_at", "stargazers_count", "watchers_count", "forks_count"} {
		require.Contains(testInstance, fields, key)
	}
	require.Len(testInstance, fields, 14)
	require.Equal(testInstance, "demo", fields["description"])
	require.Nil(testInstance, fields["language"])
}
