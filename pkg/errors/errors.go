// Package errors defines the error taxonomy for the authsim engine.
// It provides one sentinel per rejection class, error wrapping
// functionality, and helper constructors for errors that carry the
// offending entity name. Callers classify errors with errors.Is.
package errors

import "fmt"

// Common error types.
var (
	// Recoverable rejection classes. A command that fails with one of
	// these is logged to the audit trail and the run continues with no
	// state mutated.
	ErrInvalidInput       = fmt.Errorf("invalid input")
	ErrAlreadyExists      = fmt.Errorf("already exists")
	ErrNotFound           = fmt.Errorf("not found")
	ErrUnauthenticated    = fmt.Errorf("no user is logged in")
	ErrAlreadyLoggedIn    = fmt.Errorf("another user is already logged in")
	ErrNotLoggedIn        = fmt.Errorf("no active session")
	ErrInvalidCredentials = fmt.Errorf("invalid username or password")
	ErrForbidden          = fmt.Errorf("operation not permitted")
	ErrProtected          = fmt.Errorf("file name is reserved")

	// Fatal classes. Either of these aborts the run immediately.
	ErrStorage   = fmt.Errorf("storage failure")
	ErrBootstrap = fmt.Errorf("first command must create the root account")

	// Script decoding errors.
	ErrUnknownVerb = fmt.Errorf("unknown command verb")

	// Config errors.
	ErrEmptyConfigPath  = fmt.Errorf("config file path cannot be empty")
	ErrConfigParse      = fmt.Errorf("failed to parse config")
	ErrConfigValidation = fmt.Errorf("invalid configuration")
	ErrConfigEncode     = fmt.Errorf("failed to encode config")
	ErrConfigDirectory  = fmt.Errorf("failed to create config directory")
	ErrInvalidLogLevel  = fmt.Errorf("invalid log level")
	ErrFormatVersion    = fmt.Errorf("unsupported state format version")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// ErrAccountExistsWithName is a helper to create a wrapped error naming the duplicate account.
func ErrAccountExistsWithName(name string) error {
	return fmt.Errorf("account '%s': %w", name, ErrAlreadyExists)
}

// ErrGroupExistsWithName is a helper to create a wrapped error naming the duplicate group.
func ErrGroupExistsWithName(name string) error {
	return fmt.Errorf("group '%s': %w", name, ErrAlreadyExists)
}

// ErrFileExistsWithName is a helper to create a wrapped error naming the duplicate file.
func ErrFileExistsWithName(name string) error {
	return fmt.Errorf("file '%s': %w", name, ErrAlreadyExists)
}

// ErrAccountNotFoundWithName is a helper to create a wrapped error naming the missing account.
func ErrAccountNotFoundWithName(name string) error {
	return fmt.Errorf("account '%s': %w", name, ErrNotFound)
}

// ErrGroupNotFoundWithName is a helper to create a wrapped error naming the missing group.
func ErrGroupNotFoundWithName(name string) error {
	return fmt.Errorf("group '%s': %w", name, ErrNotFound)
}

// ErrFileNotFoundWithName is a helper to create a wrapped error naming the missing file.
func ErrFileNotFoundWithName(name string) error {
	return fmt.Errorf("file '%s': %w", name, ErrNotFound)
}

// ErrProtectedWithName is a helper to create a wrapped error naming the reserved file.
func ErrProtectedWithName(name string) error {
	return fmt.Errorf("file '%s': %w", name, ErrProtected)
}

// ErrUnknownVerbWithName is a helper to create a wrapped error naming the unrecognized verb.
func ErrUnknownVerbWithName(verb string) error {
	return fmt.Errorf("'%s': %w", verb, ErrUnknownVerb)
}

// ErrInvalidLogLevelWithDetails is a helper to create a wrapped error with the invalid level and valid options.
func ErrInvalidLogLevelWithDetails(level string) error {
	return fmt.Errorf("%w: '%s', must be one of: error, warn, info, debug", ErrInvalidLogLevel, level)
}
