// Package issues builds the issues command, which lists, creates and shows GitHub issues for a
// repository named on the command line or detected from the origin remote of the working tree.
package issues
