package service

import "errors"

var (
	// ErrInvalidArgument classifies malformed or missing input detected before any side effect
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrResidentNotFound is returned when no resident has the requested ID
	ErrResidentNotFound = errors.New("resident not found")
	// ErrUsernameNotFound is returned when no account has the requested username
	ErrUsernameNotFound = errors.New("username not found")
	// ErrInvalidCredentials is returned by login for a wrong username or password
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnknownRole is returned when a requested role does not exist. It is an invalid argument.
	ErrUnknownRole = &ValidationError{Field: "roles", Message: "unknown role"}
)

// ValidationError carries the human-readable reason of an invalid argument
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidArgument) match every validation error
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalidArgument(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// notFoundError wraps a lookup failure while keeping its message
type notFoundError struct {
	kind  error
	cause error
}

func (e *notFoundError) Error() string {
	if e.cause == nil {
		return e.kind.Error()
	}
	return e.kind.Error() + ": " + e.cause.Error()
}

func (e *notFoundError) Is(target error) bool {
	return target == e.kind
}

func (e *notFoundError) Unwrap() error {
	return e.cause
}
