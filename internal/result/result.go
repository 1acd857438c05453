package result

import (
	"encoding/json"
	"errors"
	"time"
)

const (
	unknownErrorMessageConstant        = "Unknown error"
	envelopeMissingSuccessFlagMessage  = "result envelope requires a success flag"
	failureEnvelopeMissingErrorMessage = "failure envelope requires an error object"
)

// ErrorCode enumerates the classified failure categories surfaced as exit statuses.
type ErrorCode int

// Error code enumerations.
const (
	ErrorCodeUnknown          ErrorCode = 1
	ErrorCodeTokenMissing     ErrorCode = 401
	ErrorCodePermissionDenied ErrorCode = 403
	ErrorCodeNotFound         ErrorCode = 404
	ErrorCodeValidationFailed ErrorCode = 422
	ErrorCodeAPIError         ErrorCode = 500
	ErrorCodeNetworkError     ErrorCode = 503
)

// Metadata describes the component that produced a successful result.
type Metadata struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Version     string `json:"version,omitempty" yaml:"version,omitempty"`
	Category    string `json:"category,omitempty" yaml:"category,omitempty"`
}

// FailureDetails carries the classified message and code of a failed result.
type FailureDetails struct {
	Message string    `json:"message"`
	Code    ErrorCode `json:"code"`
}

// Result is the envelope returned by every component execution. Exactly one of
// the success payload or the failure details is populated.
type Result[T any] struct {
	succeeded bool
	data      T
	metadata  Metadata
	failure   *FailureDetails
	timestamp time.Time
}

// Success wraps data and metadata into a successful result.
func Success[T any](data T, metadata Metadata) Result[T] {
	return Result[T]{succeeded: true, data: data, metadata: metadata, timestamp: time.Now().UTC()}
}

// Failure wraps a message and code into a failed result. A zero code is recorded as ErrorCodeUnknown.
func Failure[T any](message string, code ErrorCode) Result[T] {
	if code == 0 {
		code = ErrorCodeUnknown
	}
	return Result[T]{failure: &FailureDetails{Message: message, Code: code}, timestamp: time.Now().UTC()}
}

// IsSuccess reports whether the result carries a success payload.
func (envelope Result[T]) IsSuccess() bool {
	return envelope.succeeded
}

// Data returns the success payload or the zero value of T for failures.
func (envelope Result[T]) Data() T {
	if !envelope.IsSuccess() {
		var empty T
		return empty
	}
	return envelope.data
}

// Metadata returns the component metadata attached to a successful result.
func (envelope Result[T]) Metadata() Metadata {
	return envelope.metadata
}

// ErrorMessage returns the failure message or a fixed placeholder when none is set.
func (envelope Result[T]) ErrorMessage() string {
	if envelope.failure == nil || len(envelope.failure.Message) == 0 {
		return unknownErrorMessageConstant
	}
	return envelope.failure.Message
}

// ErrorCode returns the failure code, defaulting to ErrorCodeUnknown.
func (envelope Result[T]) ErrorCode() ErrorCode {
	if envelope.failure == nil || envelope.failure.Code == 0 {
		return ErrorCodeUnknown
	}
	return envelope.failure.Code
}

// Timestamp reports when the result was created.
func (envelope Result[T]) Timestamp() time.Time {
	return envelope.timestamp
}

type successEnvelope[T any] struct {
	Success   bool      `json:"success"`
	Data      T         `json:"data"`
	Metadata  Metadata  `json:"metadata"`
	Timestamp time.Time `json:"timestamp"`
}

type failureEnvelope struct {
	Success   bool            `json:"success"`
	Error     *FailureDetails `json:"error"`
	Timestamp time.Time       `json:"timestamp"`
}

// MarshalJSON encodes the populated variant of the envelope.
func (envelope Result[T]) MarshalJSON() ([]byte, error) {
	if !envelope.succeeded {
		return json.Marshal(failureEnvelope{Success: false, Error: envelope.failure, Timestamp: envelope.timestamp})
	}
	return json.Marshal(successEnvelope[T]{Success: true, Data: envelope.data, Metadata: envelope.metadata, Timestamp: envelope.timestamp})
}

// UnmarshalJSON decodes either envelope variant.
func (envelope *Result[T]) UnmarshalJSON(payload []byte) error {
	var discriminator struct {
		Success *bool `json:"success"`
	}
	if decodeError := json.Unmarshal(payload, &discriminator); decodeError != nil {
		return decodeError
	}
	if discriminator.Success == nil {
		return errors.New(envelopeMissingSuccessFlagMessage)
	}

	if *discriminator.Success {
		var decoded successEnvelope[T]
		if decodeError := json.Unmarshal(payload, &decoded); decodeError != nil {
			return decodeError
		}
		*envelope = Result[T]{succeeded: true, data: decoded.Data, metadata: decoded.Metadata, timestamp: decoded.Timestamp}
		return nil
	}

	var decoded failureEnvelope
	if decodeError := json.Unmarshal(payload, &decoded); decodeError != nil {
		return decodeError
	}
	if decoded.Error == nil {
		return errors.New(failureEnvelopeMissingErrorMessage)
	}
	*envelope = Result[T]{failure: decoded.Error, timestamp: decoded.Timestamp}
	return nil
}
