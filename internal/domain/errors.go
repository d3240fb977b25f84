package domain

import (
	"errors"
	"fmt"
)

// Stable error codes shared between the repository, service and HTTP layers
const (
	CodeUserNotFound      = "USER_NOT_FOUND"
	CodeEmailTaken        = "EMAIL_ALREADY_EXISTS"
	CodeTierNotFound      = "TIER_NOT_FOUND"
	CodeWorkspaceNotFound = "WORKSPACE_NOT_FOUND"
	CodeSlugTaken         = "SLUG_ALREADY_EXISTS"
	CodeMemberNotFound    = "MEMBER_NOT_FOUND"
	CodeMemberExists      = "MEMBER_ALREADY_EXISTS"
	CodeMemberLimit       = "WORKSPACE_MEMBER_LIMIT_EXCEEDED"
)

// ErrorKind categorizes an Error for HTTP status mapping
type ErrorKind string

const (
	KindBadRequest      ErrorKind = "BAD_REQUEST"
	KindUnauthorized    ErrorKind = "UNAUTHORIZED"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindValidation      ErrorKind = "VALIDATION"
	KindConflict        ErrorKind = "CONFLICT"
	KindTooManyRequests ErrorKind = "TOO_MANY_REQUESTS"
	KindDatabase        ErrorKind = "DATABASE"
	KindInternal        ErrorKind = "INTERNAL"
)

// FieldError is a single structured validation failure
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// Error is a typed business error. It is raised at the point of detection and
// propagates unmodified to the central HTTP error handler, which maps Kind to
// a status code. The cause, if any, is logged but never sent to the caller.
type Error struct {
	Kind    ErrorKind
	Code    string
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// BadRequest creates an invalid-input or business-rule-violation error
func BadRequest(code, message string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

// Unauthorized creates a missing-identity or access-denial error
func Unauthorized(code, message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message}
}

// NotFound creates an absent-entity error
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict creates a duplicate-resource error
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// TooManyRequests creates a rate-limit error
func TooManyRequests(code, message string) *Error {
	return &Error{Kind: KindTooManyRequests, Code: code, Message: message}
}

// Validation creates a structured field-validation error
func Validation(message string, fields []FieldError) *Error {
	return &Error{Kind: KindValidation, Code: "VALIDATION_FAILED", Message: message, Fields: fields}
}

// Database wraps a storage failure
func Database(message string, cause error) *Error {
	return &Error{Kind: KindDatabase, Code: "DATABASE_ERROR", Message: message, cause: cause}
}

// Internal wraps an unexpected failure so internal details never leak out
func Internal(code, message string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: message, cause: cause}
}

// KindOf returns the kind of err, or KindInternal for untyped errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// CodeOf returns the stable code of err, or empty for untyped errors
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
