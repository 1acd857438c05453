// Package flags provides shared flag helpers for Cobra commands: choice usage strings and yes/no toggles.
package flags
