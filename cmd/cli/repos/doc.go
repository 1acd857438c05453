// Package repos builds the repos command, which lists the authenticated user's repositories and
// optionally clones one of them interactively.
package repos
