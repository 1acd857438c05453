// Package gitrepo parses GitHub remote URLs and repository identifiers and
// detects the GitHub repository of a working tree from its origin remote.
package gitrepo
