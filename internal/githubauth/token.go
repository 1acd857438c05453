package githubauth

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names consulted for the GitHub token, in preference order.
const (
	EnvGitHubToken    = "GITHUB_TOKEN"
	EnvGitHubCLIToken = "GH_TOKEN"
	EnvGitHubAPIToken = "GITHUB_API_TOKEN"
)

// DefaultDotEnvPath is the dotenv file consulted after the process environment.
const DefaultDotEnvPath = ".env"

var tokenPreference = []string{
	EnvGitHubToken,
	EnvGitHubCLIToken,
	EnvGitHubAPIToken,
}

// TokenSource identifies where a resolved token was found.
type TokenSource string

// Token source enumerations.
const (
	TokenSourceNone        TokenSource = ""
	TokenSourceEnvironment TokenSource = "environment"
	TokenSourceDotEnv      TokenSource = "dotenv"
)

// Resolution reports the resolved token together with the variable and source it came from.
type Resolution struct {
	Token    string
	Variable string
	Source   TokenSource
}

// Found reports whether a token was resolved.
func (resolution Resolution) Found() bool {
	return len(resolution.Token) > 0
}

// Resolver locates the GitHub token once per invocation.
type Resolver struct {
	LookupEnvironment func(string) (string, bool)
	DotEnvPath        string
}

// NewResolver returns a Resolver backed by the process environment and ./.env.
func NewResolver() Resolver {
	return Resolver{LookupEnvironment: os.LookupEnv, DotEnvPath: DefaultDotEnvPath}
}

// Resolve returns the first non-empty token from the environment, falling back to the dotenv file.
// A missing dotenv file is not an error.
func (resolver Resolver) Resolve() (Resolution, error) {
	lookupEnvironment := resolver.LookupEnvironment
	if lookupEnvironment == nil {
		lookupEnvironment = os.LookupEnv
	}
	if resolution, found := firstToken(lookupEnvironment, TokenSourceEnvironment); found {
		return resolution, nil
	}

	if len(resolver.DotEnvPath) == 0 {
		return Resolution{}, nil
	}
	dotEnvValues, readError := godotenv.Read(resolver.DotEnvPath)
	if readError != nil {
		if errors.Is(readError, fs.ErrNotExist) {
			return Resolution{}, nil
		}
		return Resolution{}, readError
	}
	resolution, _ := firstToken(mapLookup(dotEnvValues), TokenSourceDotEnv)
	return resolution, nil
}

func firstToken(lookupEnvironment func(string) (string, bool), source TokenSource) (Resolution, bool) {
	for _, variable := range tokenPreference {
		value, exists := lookupEnvironment(variable)
		if !exists {
			continue
		}
		value = strings.TrimSpace(value)
		if len(value) > 0 {
			return Resolution{Token: value, Variable: variable, Source: source}, true
		}
	}
	return Resolution{}, false
}

func mapLookup(environment map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		value, exists := environment[key]
		return value, exists
	}
}
