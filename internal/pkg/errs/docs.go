// Package errs provides standardized error types for the aquaserve application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the rejection taxonomy of the workflow engine:
//   - ObjectNotFoundError: entity absent or outside the caller's tenant
//     (the two cases are indistinguishable to avoid existence leaks)
//   - ValueIsInvalidError / ValueIsRequiredError: malformed or missing input
//   - PreconditionFailedError: a named transition guard did not hold
//   - ConflictError: a concurrent-mutation guard lost a race
//   - StorageUnavailableError: transient infrastructure failure, safe to retry
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrPreconditionFailed)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Guard failures are always typed, local rejections; they never cross the
// workflow boundary as unannotated errors, and every rejection names the
// guard or entity that produced it.
package errs
