// Package dependencies resolves the default collaborators shared by the CLI commands.
package dependencies
