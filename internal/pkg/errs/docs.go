// Package errs provides standardized error types for the bottleshop backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ConflictError: For when a write loses against an already applied change
//   - UnauthorizedError: For when the caller has no authority over an object
//   - UpstreamFailureError: For when a dependency outside the service fails
//   - Other specialized error types for specific validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The sentinel anchors are what the HTTP adapter classifies on: validation
// failures map to 400, unauthorized to 403, not-found to 404, conflicts to
// 409, and upstream failures to 502.
package errs
