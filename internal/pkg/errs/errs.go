package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classifying failures with errors.Is.
// Every typed error in this package unwraps to exactly one of these.
var (
	// ErrObjectNotFound indicates an entity is absent or belongs to another
	// tenant. The two cases are deliberately indistinguishable to callers.
	ErrObjectNotFound = errors.New("object not found")

	// ErrValueIsInvalid indicates a malformed or out-of-domain input value.
	ErrValueIsInvalid = errors.New("value is invalid")

	// ErrValueIsRequired indicates a required input value is missing.
	ErrValueIsRequired = errors.New("value is required")

	// ErrPreconditionFailed indicates a named workflow guard did not hold.
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrConflict indicates a concurrent-mutation guard lost a race.
	ErrConflict = errors.New("conflict")

	// ErrStorageUnavailable indicates a transient infrastructure failure.
	// Operations rejected with it are safe to retry.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// sanitize strips newlines from values interpolated into error messages
// so a single rejection always renders as a single log line.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "\r", " ")
}

// ObjectNotFoundError reports a missing entity. ParamName names the lookup
// key, ID carries the value that was searched for.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError without a cause.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping an
// underlying cause, typically a storage-level error.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a malformed input value.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping the
// validation failure that triggered it.
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

// ValueIsRequiredError reports a missing required input value.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError without a cause.
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

// PreconditionFailedError reports that a named workflow guard did not hold.
// Guard carries a stable, human-readable name of the failed guard so callers
// always learn which precondition rejected the operation.
type PreconditionFailedError struct {
	Guard string
	Cause error
}

// NewPreconditionFailedError creates a PreconditionFailedError for the named guard.
func NewPreconditionFailedError(guard string) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: guard}
}

// NewPreconditionFailedErrorWithCause creates a PreconditionFailedError
// wrapping the state that violated the guard.
func NewPreconditionFailedErrorWithCause(guard string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Guard: guard, Cause: cause}
}

func (e *PreconditionFailedError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrPreconditionFailed, e.Guard, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Guard))
}

func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// ConflictError reports a lost concurrent-mutation race. ParamName names the
// contended entity, ID identifies the record whose compare-and-set failed.
type ConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConflictError creates a ConflictError without a cause.
func NewConflictError(paramName string, id any) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id}
}

// NewConflictErrorWithCause creates a ConflictError wrapping an underlying cause.
func NewConflictErrorWithCause(paramName string, id any, cause error) *ConflictError {
	return &ConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently (cause: %s)",
			ErrConflict, e.ParamName, fmt.Sprint(e.ID), e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s %s was modified concurrently",
		ErrConflict, e.ParamName, fmt.Sprint(e.ID)))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// StorageUnavailableError reports a transient storage failure during an
// operation. CompletedWrites lists the writes that committed before the
// failure so a caller or reconciler can decide whether to retry or repair.
type StorageUnavailableError struct {
	CompletedWrites []string
	Cause           error
}

// NewStorageUnavailableError creates a StorageUnavailableError wrapping the
// infrastructure failure. completedWrites may be empty when the operation
// failed before any write committed.
func NewStorageUnavailableError(cause error, completedWrites ...string) *StorageUnavailableError {
	return &StorageUnavailableError{CompletedWrites: completedWrites, Cause: cause}
}

func (e *StorageUnavailableError) Error() string {
	msg := ErrStorageUnavailable.Error()
	if len(e.CompletedWrites) > 0 {
		msg = fmt.Sprintf("%s: completed writes: %s", msg, strings.Join(e.CompletedWrites, ", "))
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return sanitize(msg)
}

func (e *StorageUnavailableError) Unwrap() error {
	return ErrStorageUnavailable
}
