package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap targets of the typed errors below.
// Callers classify errors with errors.Is against these values.
var (
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrObjectNotFound  = errors.New("object not found")
	ErrValidation      = errors.New("validation failed")
	ErrInvalidStatus   = errors.New("status is invalid")
	ErrStoreFailure    = errors.New("store operation failed")
)

// sanitize collapses newlines in error detail strings so that a single
// error always renders as a single log line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\r", " "), "\n", " ")
}

// ValueIsRequiredError indicates that a required value was missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a supplied value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given
// parameter name and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValidationError reports every request field that was missing or invalid.
// It is raised at the lifecycle engine boundary before anything is persisted.
type ValidationError struct {
	Fields []string
	Cause  error
}

// NewValidationError creates a ValidationError enumerating the failing fields.
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an
// underlying cause.
func NewValidationErrorWithCause(cause error, fields ...string) *ValidationError {
	return &ValidationError{Fields: fields, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)",
			ErrValidation, strings.Join(e.Fields, ", "), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValidation, strings.Join(e.Fields, ", ")))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// InvalidStatusError indicates an order status value outside the enumerated set.
type InvalidStatusError struct {
	Status string
	Cause  error
}

// NewInvalidStatusError creates an InvalidStatusError for the given status value.
func NewInvalidStatusError(status string) *InvalidStatusError {
	return &InvalidStatusError{Status: status}
}

// NewInvalidStatusErrorWithCause creates an InvalidStatusError wrapping an
// underlying cause.
func NewInvalidStatusErrorWithCause(status string, cause error) *InvalidStatusError {
	return &InvalidStatusError{Status: status, Cause: cause}
}

func (e *InvalidStatusError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidStatus, e.Status, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidStatus, e.Status))
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// StoreFailureError indicates that an underlying persistence operation failed.
// The operation name identifies what was attempted; the cause carries the
// driver error. Messages never include connection credentials.
type StoreFailureError struct {
	Op    string
	Cause error
}

// NewStoreFailureError creates a StoreFailureError for the given operation.
func NewStoreFailureError(op string, cause error) *StoreFailureError {
	return &StoreFailureError{Op: op, Cause: cause}
}

func (e *StoreFailureError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrStoreFailure, e.Op, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrStoreFailure, e.Op))
}

func (e *StoreFailureError) Unwrap() error {
	return ErrStoreFailure
}
