// Package common defines shared sentinel errors and small helpers used across
// the chat application layers. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrAlreadyExists  = errors.New("already exists")

	// ErrStorage wraps any failure reading or writing the durable collections.
	ErrStorage = errors.New("storage error")

	// ErrUpstream wraps failures of the external completion endpoint.
	ErrUpstream = errors.New("completion endpoint error")

	// ErrValidation is the parent of every *ValidationError.
	ErrValidation = errors.New("validation error")

	ErrInvalidToken = errors.New("invalid token")
)

// ValidationError is a user-facing input error detected before any store
// access. errors.Is(err, ErrValidation) holds for every value of this type.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation errors.
var (
	ErrMissingFields         = &ValidationError{Code: "missing_fields", Message: "Please fill in all fields"}
	ErrTermsNotAccepted      = &ValidationError{Code: "terms_not_accepted", Message: "Please agree to terms first"}
	ErrPasswordMismatch      = &ValidationError{Code: "password_mismatch", Message: "Passwords don't match"}
	ErrPasswordTooShort      = &ValidationError{Code: "password_too_short", Message: "Password must be at least 6 characters"}
	ErrEmptyMessage          = &ValidationError{Code: "empty_message", Message: "Message is empty"}
	ErrUnknownModel          = &ValidationError{Code: "unknown_model", Message: "Unknown model"}
	ErrTemperatureRange      = &ValidationError{Code: "temperature_range", Message: "Temperature must be between 0.0 and 1.0"}
	ErrUnsupportedAttachment = &ValidationError{Code: "unsupported_attachment", Message: "Unsupported file type"}
)

// UserMessage returns the text to show an end user for err. Validation, auth
// and conflict errors carry their own message; everything else is reported
// generically.
func UserMessage(err error) string {
	var ve *ValidationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &ve):
		return ve.Message
	case errors.Is(err, ErrorUnauthorized):
		return "Invalid email or password"
	case errors.Is(err, ErrAlreadyExists):
		return "User already exists"
	case errors.Is(err, ErrorNotFound):
		return "Not found"
	case errors.Is(err, ErrUpstream):
		return "The assistant is unavailable right now, please try again"
	default:
		return "Something went wrong, please try again"
	}
}
