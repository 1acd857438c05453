package utils_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/temirov/ghzero/internal/utils"
)

func TestCommandContextAccessorConfigurationFilePath(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	_, missing := accessor.ConfigurationFilePath(context.Background())
	require.False(testInstance, missing)

	updatedContext := accessor.WithConfigurationFilePath(nil, "/tmp/config.yaml")
	configurationFilePath, available := accessor.ConfigurationFilePath(updatedContext)
	require.True(testInstance, available)
	require.Equal(testInstance, "/tmp/config.yaml", configurationFilePath)
}

func TestCommandContextAccessorInvocationIdentifier(testInstance *testing.T) {
	accessor := utils.NewCommandContextAccessor()

	firstContext, firstIdentifier := accessor.WithInvocationIdentifier(context.Background())
	_, parseError := uuid.Parse(firstIdentifier)
	require.NoError(testInstance, parseError)

	storedIdentifier, available := accessor.InvocationIdentifier(firstContext)
	require.True(testInstance, available)
	require.Equal(testInstance, firstIdentifier, storedIdentifier)

	sameContext, repeatedIdentifier := accessor.WithInvocationIdentifier(firstContext)
	require.Equal(testInstance, firstIdentifier, repeatedIdentifier)
	require.Equal(testInstance, firstContext, sameContext)

	_, otherIdentifier := accessor.WithInvocationIdentifier(context.Background())
	require.NotEqual(testInstance, firstIdentifier, otherIdentifier)
}
