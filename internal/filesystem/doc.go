// Package filesystem provides the operating system filesystem behind a small interface.
package filesystem
