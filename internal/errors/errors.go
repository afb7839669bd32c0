package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error by where it came from and how the CLI reports it.
type Kind string

const (
	KindAPI           Kind = "API"
	KindConfig        Kind = "CONFIG"
	KindIO            Kind = "IO"
	KindInvalidInput  Kind = "INVALID_INPUT"
	KindUserCancelled Kind = "USER_CANCELLED"
	KindMissingAPIKey Kind = "MISSING_API_KEY"
)

// APIKeyEnv is the environment variable holding the API key on first run.
const APIKeyEnv = "OPENAI_API_KEY"

// Error is the single error type surfaced to the top level.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindAPI:
		return fmt.Sprintf("OpenAI API error: %s", e.detail())
	case KindConfig:
		return fmt.Sprintf("Configuration error: %s", e.detail())
	case KindIO:
		return fmt.Sprintf("IO error: %s", e.detail())
	case KindUserCancelled:
		return "User cancelled the operation"
	case KindInvalidInput:
		return fmt.Sprintf("Invalid input: %s", e.detail())
	case KindMissingAPIKey:
		return fmt.Sprintf("API key not found. Please set %s environment variable", APIKeyEnv)
	default:
		return e.detail()
	}
}

func (e *Error) detail() string {
	switch {
	case e.Message != "" && e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	case e.Message != "":
		return e.Message
	case e.Cause != nil:
		return e.Cause.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap supports errors.Is / errors.As on the cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so sentinel values like
// ErrNoResponse compare by kind and message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message && t.Cause == nil
}

// ErrNoResponse is returned when the model produced no choice or no content.
var ErrNoResponse = &Error{Kind: KindConfig, Message: "No response from AI"}

func API(cause error) *Error {
	return &Error{Kind: KindAPI, Cause: cause}
}

func Config(format string, args ...any) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// WrapConfig attaches a config-class kind to an underlying error.
func WrapConfig(cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: KindConfig, Cause: cause}
}

func IO(cause error) *Error {
	if cause == nil {
		return nil
	}
	return &Error{Kind: KindIO, Cause: cause}
}

func InvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func UserCancelled(cause error) *Error {
	return &Error{Kind: KindUserCancelled, Cause: cause}
}

func MissingAPIKey() *Error {
	return &Error{Kind: KindMissingAPIKey}
}

// KindOf returns the kind of the first *Error in err's chain, or "".
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
