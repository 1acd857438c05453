package ui_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/temirov/ghzero/internal/execshell"
	"github.com/temirov/ghzero/internal/ui"
)

const (
	testCloneURLConstant            = "https://github.com/octocat/hello-world.git"
	testCloneDirectoryConstant      = "hello-world"
	testStandardErrorMessage        = "fatal: repository not found"
	testExecutionFailureReason      = "executable file not found"
	testStartMessageExpectation     = "Cloning " + testCloneURLConstant + " into " + testCloneDirectoryConstant
	testSuccessMessageExpectation   = "Cloned " + testCloneURLConstant + " into " + testCloneDirectoryConstant
	testFailureMessageExpectation   = "Failed to clone " + testCloneURLConstant + " into " + testCloneDirectoryConstant + " (exit code 128: " + testStandardErrorMessage + ")"
	testExecutionFailureExpectation = "Unable to clone " + testCloneURLConstant + " into " + testCloneDirectoryConstant + ": " + testExecutionFailureReason
	testElapsedFieldConstant        = "elapsed"
)

type steppingClock struct {
	current time.Time
	step    time.Duration
}

func (clock *steppingClock) now() time.Time {
	reading := clock.current
	clock.current = clock.current.Add(clock.step)
	return reading
}

func TestProgressLoggerReportsCloneLifecycle(testInstance *testing.T) {
	cloneCommand := execshell.ShellCommand{
		Name:    execshell.CommandGit,
		Details: execshell.CommandDetails{Arguments: []string{"clone", testCloneURLConstant, testCloneDirectoryConstant}},
	}

	testCases := []struct {
		name            string
		finish          func(*ui.ProgressLogger)
		expectedLevel   zapcore.Level
		expectedMessage string
	}{
		{
			name: "success",
			finish: func(progressLogger *ui.ProgressLogger) {
				progressLogger.CommandCompleted(cloneCommand, execshell.ExecutionResult{})
			},
			expectedLevel:   zapcore.InfoLevel,
			expectedMessage: testSuccessMessageExpectation,
		},
		{
			name: "non_zero_exit",
			finish: func(progressLogger *ui.ProgressLogger) {
				progressLogger.CommandCompleted(cloneCommand, execshell.ExecutionResult{ExitCode: 128, StandardError: testStandardErrorMessage})
			},
			expectedLevel:   zapcore.WarnLevel,
			expectedMessage: testFailureMessageExpectation,
		},
		{
			name: "execution_failure",
			finish: func(progressLogger *ui.ProgressLogger) {
				progressLogger.CommandExecutionFailed(cloneCommand, errors.New(testExecutionFailureReason))
			},
			expectedLevel:   zapcore.ErrorLevel,
			expectedMessage: testExecutionFailureExpectation,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			observerCore, observedLogs := observer.New(zapcore.DebugLevel)
			clock := &steppingClock{current: time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC), step: 2 * time.Second}
			progressLogger := ui.NewProgressLoggerWithClock(zap.New(observerCore), clock.now)

			progressLogger.CommandStarted(cloneCommand)
			testCase.finish(progressLogger)

			entries := observedLogs.All()
			require.Len(testInstance, entries, 2)
			require.Equal(testInstance, zapcore.InfoLevel, entries[0].Level)
			require.Equal(testInstance, testStartMessageExpectation, entries[0].Message)
			require.Equal(testInstance, testCase.expectedLevel, entries[1].Level)
			require.Equal(testInstance, testCase.expectedMessage, entries[1].Message)
			require.Equal(testInstance, 2*time.Second, entries[1].ContextMap()[testElapsedFieldConstant])
		})
	}
}

func TestProgressLoggerWithoutStart(testInstance *testing.T) {
	observerCore, observedLogs := observer.New(zapcore.DebugLevel)
	progressLogger := ui.NewProgressLogger(zap.New(observerCore))

	progressLogger.CommandCompleted(execshell.ShellCommand{Name: execshell.CommandGit}, execshell.ExecutionResult{})

	entries := observedLogs.All()
	require.Len(testInstance, entries, 1)
	require.Equal(testInstance, time.Duration(0), entries[0].ContextMap()[testElapsedFieldConstant])
}

func TestNilProgressLoggerIsSafe(testInstance *testing.T) {
	var progressLogger *ui.ProgressLogger
	require.NotPanics(testInstance, func() {
		progressLogger.CommandStarted(execshell.ShellCommand{})
		progressLogger.CommandCompleted(execshell.ShellCommand{}, execshell.ExecutionResult{})
		progressLogger.CommandExecutionFailed(execshell.ShellCommand{}, nil)
	})
}
