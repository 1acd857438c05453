// Package githubapi adapts the go-github client to the calls used by the
// repository, issue, and clone components and normalizes its failures.
package githubapi
