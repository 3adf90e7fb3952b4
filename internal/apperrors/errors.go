// Package apperrors defines the error taxonomy shared by the store and the
// HTTP handlers. Each type maps to exactly one status code at the transport
// boundary; the store never needs to know about HTTP.
package apperrors

import "fmt"

// ValidationError covers missing required fields, unknown fields and
// otherwise malformed payloads.
type ValidationError struct {
	Message     string
	Description string
}

func (e *ValidationError) Error() string {
	if e.Description != "" {
		return e.Message + ": " + e.Description
	}
	return e.Message
}

// MissingRequired reports that a payload lacks one of the mandatory fields.
func MissingRequired(entity string, fields []string) *ValidationError {
	return &ValidationError{
		Message:     entity + "_missing_required",
		Description: fmt.Sprintf("Must have the fields %v", fields),
	}
}

// UnknownFields reports that a payload carries fields outside the whitelist.
func UnknownFields(fields []string) *ValidationError {
	return &ValidationError{
		Message:     "bad_entry",
		Description: fmt.Sprintf("Can only have the fields %v", fields),
	}
}

// AuthenticationError means the caller could not be identified: bad
// credentials or a bad/expired token.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

// AuthorizationError means the caller is known but lacks the rights for the
// requested operation.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string { return e.Message }

// NotFoundError means an entity id or name referenced by the request does not
// exist, including ids inside relationship batches.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func UnknownUserID(id uint) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Error: unknown user id %d", id)}
}

func UnknownProjectID(id uint) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Error: unknown project id %d", id)}
}

// ConflictError means a uniqueness constraint was violated: duplicate
// username/email/id on create, or a duplicate relationship link.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }
