package dependencies_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/filesystem"
	"github.com/temirov/ghzero/internal/githubapi"
	"github.com/temirov/ghzero/internal/githubauth"
	"github.com/temirov/ghzero/internal/prompt"
)

type stubTokenResolver struct {
	resolution githubauth.Resolution
	err        error
}

func (resolver stubTokenResolver) Resolve() (githubauth.Resolution, error) {
	return resolver.resolution, resolver.err
}

type stubGitExecutor struct{}

func (stubGitExecutor) ExecuteGit(context.Context, execshell.CommandDetails) (execshell.ExecutionResult, error) {
	return execshell.ExecutionResult{}, nil
}

func TestResolveGitExecutor(testInstance *testing.T) {
	existing := stubGitExecutor{}
	resolved, resolveError := dependencies.ResolveGitExecutor(existing, zap.NewNop(), false)
	require.NoError(testInstance, resolveError)
	require.Equal(testInstance, existing, resolved)

	defaultExecutor, defaultError := dependencies.ResolveGitExecutor(nil, zap.NewNop(), true)
	require.NoError(testInstance, defaultError)
	require.IsType(testInstance, &execshell.ShellExecutor{}, defaultExecutor)

	_, missingLoggerError := dependencies.ResolveGitExecutor(nil, nil, false)
	require.ErrorIs(testInstance, missingLoggerError, execshell.ErrLoggerNotConfigured)
}

func TestResolveToken(testInstance *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	token := dependencies.ResolveToken(stubTokenResolver{resolution: githubauth.Resolution{Token: "abc", Variable: githubauth.EnvGitHubToken, Source: githubauth.TokenSourceEnvironment}}, logger)
	require.Equal(testInstance, "abc", token)
	require.Equal(testInstance, 1, recorded.FilterMessage("github token resolved").Len())

	failedToken := dependencies.ResolveToken(stubTokenResolver{err: errors.New("unreadable .env")}, logger)
	require.Empty(testInstance, failedToken)
	require.Equal(testInstance, 1, recorded.FilterMessage("github token resolution failed").Len())

	require.Empty(testInstance, dependencies.ResolveToken(stubTokenResolver{}, nil))
}

func TestResolveDefaults(testInstance *testing.T) {
	require.Equal(testInstance, filesystem.OSFileSystem{}, dependencies.ResolveFileSystem(nil))
	require.IsType(testInstance, githubauth.Resolver{}, dependencies.ResolveTokenResolver(nil))
	require.IsType(testInstance, &prompt.IOPrompter{}, dependencies.ResolvePrompter(nil, strings.NewReader(""), &strings.Builder{}))

	client, clientError := dependencies.ResolveGitHubClient(context.Background(), nil, githubapi.Configuration{Token: "abc"}, zap.NewNop())
	require.NoError(testInstance, clientError)
	require.IsType(testInstance, &githubapi.Client{}, client)
}
