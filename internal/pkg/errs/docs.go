// Package errs provides standardized error types for the back-office
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ObjectAlreadyExistsError: For uniqueness violations
//   - InvalidStateTransitionError: For lifecycle operations attempted
//     from a state that forbids them
//   - ReferenceNotFoundError: For dangling references to foreign aggregates
//   - ObjectInUseError: For deletions blocked by referencing objects
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The HTTP boundary relies on these sentinels to map a failure to the
// right status code, so handlers must never collapse them into generic
// errors.
package errs
