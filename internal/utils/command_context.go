package utils

import (
	"context"

	"github.com/google/uuid"
)

const (
	configurationFilePathContextKeyConstant = commandContextKey("configurationFilePath")
	invocationIdentifierContextKeyConstant  = commandContextKey("invocationIdentifier")
)

type commandContextKey string

// CommandContextAccessor manages values stored in command execution contexts.
type CommandContextAccessor struct{}

// NewCommandContextAccessor constructs a CommandContextAccessor instance.
func NewCommandContextAccessor() CommandContextAccessor {
	return CommandContextAccessor{}
}

// WithConfigurationFilePath attaches the configuration file path to the provided context.
func (accessor CommandContextAccessor) WithConfigurationFilePath(parentContext context.Context, configurationFilePath string) context.Context {
	return context.WithValue(ensureContext(parentContext), configurationFilePathContextKeyConstant, configurationFilePath)
}

// ConfigurationFilePath extracts the configuration file path from the provided context.
func (accessor CommandContextAccessor) ConfigurationFilePath(executionContext context.Context) (string, bool) {
	return stringValue(executionContext, configurationFilePathContextKeyConstant)
}

// WithInvocationIdentifier attaches a fresh invocation identifier unless the context already carries one.
func (accessor CommandContextAccessor) WithInvocationIdentifier(parentContext context.Context) (context.Context, string) {
	parentContext = ensureContext(parentContext)
	if existing, exists := accessor.InvocationIdentifier(parentContext); exists {
		return parentContext, existing
	}
	invocationIdentifier := uuid.NewString()
	return context.WithValue(parentContext, invocationIdentifierContextKeyConstant, invocationIdentifier), invocationIdentifier
}

// InvocationIdentifier extracts the invocation identifier from the provided context.
func (accessor CommandContextAccessor) InvocationIdentifier(executionContext context.Context) (string, bool) {
	return stringValue(executionContext, invocationIdentifierContextKeyConstant)
}

func ensureContext(parentContext context.Context) context.Context {
	if parentContext == nil {
		return context.Background()
	}
	return parentContext
}

func stringValue(executionContext context.Context, key commandContextKey) (string, bool) {
	if executionContext == nil {
		return "", false
	}
	value, available := executionContext.Value(key).(string)
	if !available || len(value) == 0 {
		return "", false
	}
	return value, true
}
