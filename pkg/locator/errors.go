package locator

import (
	"errors"
	"fmt"
)

// Kind classifies a locator failure.
type Kind string

const (
	// KindEmpty indicates a missing required input.
	KindEmpty Kind = "empty"
	// KindInvalidFormat indicates a malformed postal code.
	KindInvalidFormat Kind = "invalid_format"
	// KindNotFound indicates a provider answered definitively with no match.
	KindNotFound Kind = "not_found"
	// KindProviderError indicates a transport or parsing failure talking to
	// a provider.
	KindProviderError Kind = "provider_error"
	// KindInternal indicates an unexpected state, such as missing required
	// distance data in an otherwise successful response.
	KindInternal Kind = "internal"
)

// Error is a typed failure from the locator engine or one of its providers.
type Error struct {
	Provider   string
	Kind       Kind
	Message    string
	StatusCode int
	Cause      error
}

// Error implements the error interface.
func (e *Error) Error() string {
	prefix := "locator"
	if e.Provider != "" {
		prefix = e.Provider
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", prefix, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", prefix, e.Kind, e.Message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches on Kind so sentinel-style checks work across providers.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// E creates a new Error.
func E(provider string, kind Kind, message string) *Error {
	return &Error{
		Provider: provider,
		Kind:     kind,
		Message:  message,
	}
}

// WithCause adds a cause to the error.
func (e *Error) WithCause(err error) *Error {
	e.Cause = err
	return e
}

// WithStatusCode adds an upstream HTTP status code to the error.
func (e *Error) WithStatusCode(code int) *Error {
	e.StatusCode = code
	return e
}

// KindOf extracts the Kind from err, or KindInternal when err is not a
// locator Error.
func KindOf(err error) Kind {
	var lerr *Error
	if errors.As(err, &lerr) {
		return lerr.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a definitive no-match answer.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsClientFault reports whether err is caused by the caller's input.
func IsClientFault(err error) bool {
	switch KindOf(err) {
	case KindEmpty, KindInvalidFormat:
		return true
	}
	return false
}
