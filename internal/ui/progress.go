package ui

import (
	"time"

	"go.uber.org/zap"

	"github.com/temirov/ghzero/internal/execshell"
)

const elapsedFieldNameConstant = "elapsed"

// Clock reports the current time.
type Clock func() time.Time

// ProgressLogger renders git lifecycle events as console log lines and records how long each
// command took. Commands are expected to run one at a time.
type ProgressLogger struct {
	logger    *zap.Logger
	formatter execshell.CommandMessageFormatter
	clock     Clock
	startedAt time.Time
}

// NewProgressLogger constructs a ProgressLogger backed by logger.
func NewProgressLogger(logger *zap.Logger) *ProgressLogger {
	return NewProgressLoggerWithClock(logger, time.Now)
}

// NewProgressLoggerWithClock constructs a ProgressLogger that measures durations with clock.
func NewProgressLoggerWithClock(logger *zap.Logger, clock Clock) *ProgressLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = time.Now
	}
	return &ProgressLogger{logger: logger, clock: clock}
}

// CommandStarted logs the command description and starts its timer.
func (progressLogger *ProgressLogger) CommandStarted(command execshell.ShellCommand) {
	if progressLogger == nil {
		return
	}
	progressLogger.startedAt = progressLogger.clock()
	progressLogger.logger.Info(progressLogger.formatter.BuildStartedMessage(command))
}

// CommandCompleted logs success at info level and a non-zero exit at warn level.
func (progressLogger *ProgressLogger) CommandCompleted(command execshell.ShellCommand, result execshell.ExecutionResult) {
	if progressLogger == nil {
		return
	}
	elapsedField := progressLogger.elapsed()
	if result.ExitCode == 0 {
		progressLogger.logger.Info(progressLogger.formatter.BuildSuccessMessage(command, result), elapsedField)
		return
	}
	progressLogger.logger.Warn(progressLogger.formatter.BuildFailureMessage(command, result), elapsedField)
}

// CommandExecutionFailed logs a command that never produced a result.
func (progressLogger *ProgressLogger) CommandExecutionFailed(command execshell.ShellCommand, failure error) {
	if progressLogger == nil {
		return
	}
	progressLogger.logger.Error(progressLogger.formatter.BuildExecutionFailureMessage(command, failure), progressLogger.elapsed())
}

func (progressLogger *ProgressLogger) elapsed() zap.Field {
	if progressLogger.startedAt.IsZero() {
		return zap.Duration(elapsedFieldNameConstant, 0)
	}
	return zap.Duration(elapsedFieldNameConstant, progressLogger.clock().Sub(progressLogger.startedAt))
}
