package gitrepo

import (
	"fmt"
	"strings"
)

const (
	sshProtocolPrefixConstant           = "ssh://"
	sshUserDelimiterConstant            = "@"
	sshPathDelimiterConstant            = ":"
	httpsProtocolPrefixConstant         = "https://"
	httpProtocolPrefixConstant          = "http://"
	gitUserPrefixConstant               = "git@"
	pathSeparatorConstant               = "/"
	gitSuffixConstant                   = ".git"
	remoteURLParseErrorTemplateConstant = "%s: %s"
	requiredValueMessageConstant        = "value required"
	invalidRemoteURLMessageConstant     = "invalid remote url"
	unknownProtocolMessageConstant      = "unsupported remote protocol"
	sshRemoteTemplateConstant           = "git@%s:%s/%s.git"
	httpsRemoteTemplateConstant         = "https://%s/%s/%s.git"
	fullNameTemplateConstant            = "%s/%s"
)

// GitHubHost is the host name of public GitHub remotes.
const GitHubHost = "github.com"

// RemoteProtocol enumerates supported git remote protocols.
type RemoteProtocol string

// Supported remote protocols.
const (
	RemoteProtocolSSH   RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS RemoteProtocol = RemoteProtocol("https")
)

// RemoteURL represents a structured git remote URL.
type RemoteURL struct {
	Protocol   RemoteProtocol
	Host       string
	Owner      string
	Repository string
}

// FullName returns the owner/repository form of the remote.
func (remote RemoteURL) FullName() string {
	return fmt.Sprintf(fullNameTemplateConstant, remote.Owner, remote.Repository)
}

// IsGitHub reports whether the remote is hosted on github.com.
func (remote RemoteURL) IsGitHub() bool {
	return strings.EqualFold(remote.Host, GitHubHost)
}

// RemoteURLParseError indicates a remote string could not be parsed.
type RemoteURLParseError struct {
	Input   string
	Message string
}

// Error describes the parse failure.
func (parseError RemoteURLParseError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, parseError.Input, parseError.Message)
}

// UnsupportedProtocolError indicates the provided protocol cannot be formatted.
type UnsupportedProtocolError struct {
	Protocol RemoteProtocol
}

// Error describes the unsupported protocol.
func (protocolError UnsupportedProtocolError) Error() string {
	return fmt.Sprintf(remoteURLParseErrorTemplateConstant, protocolError.Protocol, unknownProtocolMessageConstant)
}

// ParseRemoteURL converts a textual remote URL into a structured representation.
// Plain http remotes are reported with the https protocol.
func ParseRemoteURL(remote string) (RemoteURL, error) {
	trimmedRemote := strings.TrimSpace(remote)
	if len(trimmedRemote) == 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: requiredValueMessageConstant}
	}

	switch {
	case strings.HasPrefix(trimmedRemote, sshProtocolPrefixConstant):
		return parseSSHRemote(strings.TrimPrefix(trimmedRemote, sshProtocolPrefixConstant))
	case strings.HasPrefix(trimmedRemote, gitUserPrefixConstant):
		return parseSSHRemote(trimmedRemote)
	case strings.HasPrefix(trimmedRemote, httpsProtocolPrefixConstant):
		return parseHTTPSRemote(strings.TrimPrefix(trimmedRemote, httpsProtocolPrefixConstant))
	case strings.HasPrefix(trimmedRemote, httpProtocolPrefixConstant):
		return parseHTTPSRemote(strings.TrimPrefix(trimmedRemote, httpProtocolPrefixConstant))
	default:
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
}

func parseSSHRemote(remote string) (RemoteURL, error) {
	userSplitIndex := strings.Index(remote, sshUserDelimiterConstant)
	if userSplitIndex == -1 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
	hostAndPath := remote[userSplitIndex+1:]

	var host string
	var path string
	if pathSplitIndex := strings.Index(hostAndPath, sshPathDelimiterConstant); pathSplitIndex != -1 {
		host = hostAndPath[:pathSplitIndex]
		path = hostAndPath[pathSplitIndex+1:]
	} else {
		slashIndex := strings.Index(hostAndPath, pathSeparatorConstant)
		if slashIndex == -1 {
			return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
		}
		host = hostAndPath[:slashIndex]
		path = hostAndPath[slashIndex+1:]
	}

	owner, repository, parseError := SplitFullName(path)
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolSSH, Host: host, Owner: owner, Repository: repository}, nil
}

func parseHTTPSRemote(remote string) (RemoteURL, error) {
	hostSplitIndex := strings.Index(remote, pathSeparatorConstant)
	if hostSplitIndex <= 0 {
		return RemoteURL{}, RemoteURLParseError{Input: remote, Message: invalidRemoteURLMessageConstant}
	}
	host := remote[:hostSplitIndex]
	if credentialIndex := strings.LastIndex(host, sshUserDelimiterConstant); credentialIndex != -1 {
		host = host[credentialIndex+1:]
	}

	owner, repository, parseError := SplitFullName(strings.TrimSuffix(remote[hostSplitIndex+1:], pathSeparatorConstant))
	if parseError != nil {
		return RemoteURL{}, parseError
	}
	return RemoteURL{Protocol: RemoteProtocolHTTPS, Host: host, Owner: owner, Repository: repository}, nil
}

// SplitFullName separates an owner/repository pair, dropping an optional .git suffix.
func SplitFullName(fullName string) (string, string, error) {
	segments := strings.Split(strings.TrimSpace(fullName), pathSeparatorConstant)
	if len(segments) != 2 || len(strings.TrimSpace(segments[0])) == 0 {
		return "", "", RemoteURLParseError{Input: fullName, Message: invalidRemoteURLMessageConstant}
	}
	repository := strings.TrimSuffix(strings.TrimSpace(segments[1]), gitSuffixConstant)
	if len(repository) == 0 {
		return "", "", RemoteURLParseError{Input: fullName, Message: invalidRemoteURLMessageConstant}
	}
	return strings.TrimSpace(segments[0]), repository, nil
}

// FormatRemoteURL creates a textual remote URL from a structured representation.
func FormatRemoteURL(remote RemoteURL) (string, error) {
	if len(strings.TrimSpace(remote.Host)) == 0 {
		return "", RemoteURLParseError{Input: remote.Host, Message: requiredValueMessageConstant}
	}
	if len(strings.TrimSpace(remote.Owner)) == 0 || len(strings.TrimSpace(remote.Repository)) == 0 {
		return "", RemoteURLParseError{Input: remote.FullName(), Message: requiredValueMessageConstant}
	}

	switch remote.Protocol {
	case RemoteProtocolSSH:
		return fmt.Sprintf(sshRemoteTemplateConstant, remote.Host, remote.Owner, remote.Repository), nil
	case RemoteProtocolHTTPS:
		return fmt.Sprintf(httpsRemoteTemplateConstant, remote.Host, remote.Owner, remote.Repository), nil
	default:
		return "", UnsupportedProtocolError{Protocol: remote.Protocol}
	}
}
