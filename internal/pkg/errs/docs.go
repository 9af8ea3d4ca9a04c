// Package errs provides standardized error types for the AgriLink dispatch core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value lies outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// These types cover the "invalid input" half of the error taxonomy: they are
// rejected before any state change and map to client errors at the HTTP layer.
// Precondition races (a lot already matched, an offer deactivated between
// selection and commit) are expressed as sentinel errors in the application
// layer, not here, because they are expected concurrent outcomes rather than
// malformed input.
package errs
