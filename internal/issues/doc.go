// Package issues lists, creates and shows GitHub issues of a single repository.
package issues
