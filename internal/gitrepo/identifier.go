package gitrepo

import (
	"path"
	"strings"
)

// IdentifierKind classifies how a repository was named on the command line.
type IdentifierKind int

// Identifier kinds.
const (
	IdentifierKindURL IdentifierKind = iota
	IdentifierKindFullName
	IdentifierKindName
)

var cloneURLPrefixes = []string{
	httpsProtocolPrefixConstant,
	httpProtocolPrefixConstant,
	sshProtocolPrefixConstant,
	gitUserPrefixConstant,
}

// RepositoryIdentifier is a parsed clone target: a URL, an owner/repository pair, or a bare name.
type RepositoryIdentifier struct {
	Raw   string
	Kind  IdentifierKind
	Owner string
	Name  string
}

// ParseRepositoryIdentifier classifies a repository identifier.
func ParseRepositoryIdentifier(value string) (RepositoryIdentifier, error) {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return RepositoryIdentifier{}, RemoteURLParseError{Input: value, Message: requiredValueMessageConstant}
	}

	for _, prefix := range cloneURLPrefixes {
		if strings.HasPrefix(trimmedValue, prefix) {
			return RepositoryIdentifier{Raw: trimmedValue, Kind: IdentifierKindURL, Name: DirectoryName(trimmedValue)}, nil
		}
	}

	if strings.Contains(trimmedValue, pathSeparatorConstant) {
		owner, repository, splitError := SplitFullName(trimmedValue)
		if splitError != nil {
			return RepositoryIdentifier{}, splitError
		}
		return RepositoryIdentifier{Raw: trimmedValue, Kind: IdentifierKindFullName, Owner: owner, Name: repository}, nil
	}

	return RepositoryIdentifier{Raw: trimmedValue, Kind: IdentifierKindName, Name: strings.TrimSuffix(trimmedValue, gitSuffixConstant)}, nil
}

// NeedsOwner reports whether the identifier is a bare name without an owner.
func (identifier RepositoryIdentifier) NeedsOwner() bool {
	return identifier.Kind == IdentifierKindName
}

// CloneURL resolves the identifier to a clone URL. URLs are returned unchanged; names without an
// owner are qualified with defaultOwner when it is set.
func (identifier RepositoryIdentifier) CloneURL(defaultOwner string) string {
	switch identifier.Kind {
	case IdentifierKindURL:
		return identifier.Raw
	case IdentifierKindFullName:
		return gitHubHTTPSURL(identifier.Owner, identifier.Name)
	default:
		return gitHubHTTPSURL(strings.TrimSpace(defaultOwner), identifier.Name)
	}
}

// DirectoryName returns the base name of a repository identifier without the .git suffix.
func DirectoryName(value string) string {
	trimmedValue := strings.TrimRight(strings.TrimSpace(value), pathSeparatorConstant)
	if colonIndex := strings.LastIndex(trimmedValue, sshPathDelimiterConstant); colonIndex != -1 && !strings.Contains(trimmedValue[colonIndex:], pathSeparatorConstant) {
		trimmedValue = trimmedValue[colonIndex+1:]
	}
	return strings.TrimSuffix(path.Base(trimmedValue), gitSuffixConstant)
}

// gitHubHTTPSURL builds the github.com https remote. Without an owner the name is placed directly
// under the host.
func gitHubHTTPSURL(owner string, repository string) string {
	if len(owner) > 0 {
		formattedURL, formatError := FormatRemoteURL(RemoteURL{Protocol: RemoteProtocolHTTPS, Host: GitHubHost, Owner: owner, Repository: repository})
		if formatError == nil {
			return formattedURL
		}
	}
	return httpsProtocolPrefixConstant + GitHubHost + pathSeparatorConstant + repository + gitSuffixConstant
}
