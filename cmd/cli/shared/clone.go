package shared

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/clone"
	"github.com/temirov/ghzero/internal/component"
	"github.com/temirov/ghzero/internal/dependencies"
	"github.com/temirov/ghzero/internal/filesystem"
)

// CloneCollaborators wires the local side of a clone: git, the filesystem and the target root.
type CloneCollaborators struct {
	GitExecutor      dependencies.GitExecutor
	FileSystem       filesystem.FileSystem
	WorkingDirectory string
	HumanReadable    bool
	CommandAnnouncer func(commandLine string)
}

// NewCloneComponent constructs the clone component for an opened session.
func NewCloneComponent(session Session, collaborators CloneCollaborators, logger *zap.Logger) (*component.Component[clone.Outcome], error) {
	gitExecutor, executorError := dependencies.ResolveGitExecutor(collaborators.GitExecutor, logger, collaborators.HumanReadable)
	if executorError != nil {
		return nil, executorError
	}

	var ownerResolver clone.OwnerResolver
	if session.Client != nil {
		ownerResolver = session.Client
	}

	return clone.NewComponent(clone.Dependencies{
		Executor:         gitExecutor,
		FileSystem:       dependencies.ResolveFileSystem(collaborators.FileSystem),
		OwnerResolver:    ownerResolver,
		WorkingDirectory: ResolveWorkingDirectory(collaborators.WorkingDirectory),
		Token:            session.Token,
		Logger:           logger,
		CommandAnnouncer: collaborators.CommandAnnouncer,
	}), nil
}

// Context returns the command context or a background context when none is set.
func Context(command *cobra.Command) context.Context {
	if command == nil || command.Context() == nil {
		return context.Background()
	}
	return command.Context()
}
