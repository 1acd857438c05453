// Package execshell runs git as a child process with structured logging.
//
// ShellExecutor wraps a CommandRunner, turns non-zero exit codes into
// CommandFailedError values and notifies CommandEventObserver implementations
// as each command starts and finishes. ProcessRunner is the os/exec backed
// runner used outside of tests.
package execshell
