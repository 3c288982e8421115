package trivia

import (
	"errors"
	"fmt"
)

// ErrorCode represents a categorized error type.
type ErrorCode int

const (
	// Protocol errors (from server error frames)
	ErrorUnknown ErrorCode = iota
	ErrorGameNotFound
	ErrorGameFull
	ErrorGameAlreadyStarted
	ErrorInvalidCode
	ErrorUserNotFound
	ErrorNotHost
	ErrorInternalServer

	// Client-side errors
	ErrorConnection
	ErrorDisconnected
	ErrorTimeout
	ErrorInvalidIdentity
	ErrorSerialization
	ErrorReconnectFailed
)

// String returns the string representation of an ErrorCode.
func (e ErrorCode) String() string {
	switch e {
	case ErrorUnknown:
		return "unknown"
	case ErrorGameNotFound:
		return "game_not_found"
	case ErrorGameFull:
		return "game_full"
	case ErrorGameAlreadyStarted:
		return "game_already_started"
	case ErrorInvalidCode:
		return "invalid_code"
	case ErrorUserNotFound:
		return "user_not_found"
	case ErrorNotHost:
		return "not_host"
	case ErrorInternalServer:
		return "internal_error"
	case ErrorConnection:
		return "connection_error"
	case ErrorDisconnected:
		return "disconnected"
	case ErrorTimeout:
		return "timeout"
	case ErrorInvalidIdentity:
		return "invalid_identity"
	case ErrorSerialization:
		return "serialization_error"
	case ErrorReconnectFailed:
		return "reconnect_failed"
	default:
		return fmt.Sprintf("unknown_code_%d", e)
	}
}

// ParseErrorCode converts a protocol error code string to ErrorCode.
func ParseErrorCode(code string) ErrorCode {
	switch code {
	case "game_not_found":
		return ErrorGameNotFound
	case "game_full":
		return ErrorGameFull
	case "game_already_started":
		return ErrorGameAlreadyStarted
	case "invalid_code":
		return ErrorInvalidCode
	case "user_not_found":
		return ErrorUserNotFound
	case "not_host":
		return ErrorNotHost
	case "internal_error":
		return ErrorInternalServer
	default:
		return ErrorUnknown
	}
}

// TriviaError is a structured error with code and context.
type TriviaError struct {
	Code    ErrorCode
	Message string
	Wrapped error
}

// Error implements the error interface.
func (e *TriviaError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %s (wrapped: %v)", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error for errors.Unwrap support.
func (e *TriviaError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface for error comparison.
func (e *TriviaError) Is(target error) bool {
	t, ok := target.(*TriviaError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new TriviaError with the given code and message.
func NewError(code ErrorCode, message string) *TriviaError {
	return &TriviaError{
		Code:    code,
		Message: message,
	}
}

// WrapError wraps an existing error with a TriviaError.
func WrapError(code ErrorCode, message string, err error) *TriviaError {
	return &TriviaError{
		Code:    code,
		Message: message,
		Wrapped: err,
	}
}

// FromProtocolError converts an error frame to a TriviaError.
func FromProtocolError(e *ProtocolError) *TriviaError {
	if e == nil {
		return nil
	}
	return &TriviaError{
		Code:    ParseErrorCode(e.Code),
		Message: e.Detail,
	}
}

// IsProtocolError checks if an error originated from a server error frame.
func IsProtocolError(err error) bool {
	if err == nil {
		return false
	}
	var te *TriviaError
	if !errors.As(err, &te) {
		return false
	}
	return te.Code >= ErrorGameNotFound && te.Code <= ErrorInternalServer
}

// IsConnectionError checks if an error is a transport-level error.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var te *TriviaError
	if !errors.As(err, &te) {
		return false
	}
	return te.Code == ErrorConnection || te.Code == ErrorDisconnected || te.Code == ErrorTimeout || te.Code == ErrorReconnectFailed
}
