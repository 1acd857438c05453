package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/gitrepo"
)

func TestRepositoryIdentifierCloneURL(testInstance *testing.T) {
	testCases := []struct {
		name              string
		identifier        string
		defaultOwner      string
		expectedKind      gitrepo.IdentifierKind
		expectedCloneURL  string
		expectedDirectory string
	}{
		{name: "https_url", identifier: "https://github.com/octo/hello.git", expectedKind: gitrepo.IdentifierKindURL, expectedCloneURL: "https://github.com/octo/hello.git", expectedDirectory: "hello"},
		{name: "http_url", identifier: "http://example.com/octo/hello", expectedKind: gitrepo.IdentifierKindURL, expectedCloneURL: "http://example.com/octo/hello", expectedDirectory: "hello"},
		{name: "scp_url", identifier: "git@github.com:octo/hello.git", expectedKind: gitrepo.IdentifierKindURL, expectedCloneURL: "git@github.com:octo/hello.git", expectedDirectory: "hello"},
		{name: "ssh_url", identifier: "ssh://git@github.com/octo/hello.git", expectedKind: gitrepo.IdentifierKindURL, expectedCloneURL: "ssh://git@github.com/octo/hello.git", expectedDirectory: "hello"},
		{name: "full_name", identifier: "octo/hello", expectedKind: gitrepo.IdentifierKindFullName, expectedCloneURL: "https://github.com/octo/hello.git", expectedDirectory: "hello"},
		{name: "full_name_with_suffix", identifier: "octo/hello.git", expectedKind: gitrepo.IdentifierKindFullName, expectedCloneURL: "https://github.com/octo/hello.git", expectedDirectory: "hello"},
		{name: "bare_name", identifier: "hello", expectedKind: gitrepo.IdentifierKindName, expectedCloneURL: "https://github.com/hello.git", expectedDirectory: "hello"},
		{name: "bare_name_with_owner", identifier: "hello", defaultOwner: "octocat", expectedKind: gitrepo.IdentifierKindName, expectedCloneURL: "https://github.com/octocat/hello.git", expectedDirectory: "hello"},
		{name: "bare_name_with_padded_owner", identifier: "hello", defaultOwner: "  octocat ", expectedKind: gitrepo.IdentifierKindName, expectedCloneURL: "https://github.com/octocat/hello.git", expectedDirectory: "hello"},
		{name: "full_name_ignores_owner", identifier: "octo/hello", defaultOwner: "octocat", expectedKind: gitrepo.IdentifierKindFullName, expectedCloneURL: "https://github.com/octo/hello.git", expectedDirectory: "hello"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			identifier, parseError := gitrepo.ParseRepositoryIdentifier(testCase.identifier)
			require.NoError(testInstance, parseError)
			require.Equal(testInstance, testCase.expectedKind, identifier.Kind)
			require.Equal(testInstance, testCase.expectedCloneURL, identifier.CloneURL(testCase.defaultOwner))
			require.Equal(testInstance, testCase.expectedDirectory, gitrepo.DirectoryName(testCase.identifier))
		})
	}
}

func TestRepositoryIdentifierCloneURLMatchesFormattedRemote(testInstance *testing.T) {
	identifier, parseError := gitrepo.ParseRepositoryIdentifier("octo/hello")
	require.NoError(testInstance, parseError)

	formattedURL, formatError := gitrepo.FormatRemoteURL(gitrepo.RemoteURL{Protocol: gitrepo.RemoteProtocolHTTPS, Host: gitrepo.GitHubHost, Owner: "octo", Repository: "hello"})
	require.NoError(testInstance, formatError)
	require.Equal(testInstance, formattedURL, identifier.CloneURL(""))
}

func TestParseRepositoryIdentifierRejectsMalformedInput(testInstance *testing.T) {
	for _, identifier := range []string{"", "  ", "octo/", "/hello", "octo/hello/extra"} {
		_, parseError := gitrepo.ParseRepositoryIdentifier(identifier)
		require.Error(testInstance, parseError, identifier)
	}
}

func TestNeedsOwner(testInstance *testing.T) {
	bareName, _ := gitrepo.ParseRepositoryIdentifier("hello")
	fullName, _ := gitrepo.ParseRepositoryIdentifier("octo/hello")
	require.True(testInstance, bareName.NeedsOwner())
	require.False(testInstance, fullName.NeedsOwner())
}
