// Package errs provides standardized error types for the order service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value or its length exceeds its bounds
//   - ObjectNotFoundError: For when an object cannot be found
//   - EditConflictError: For when an object exists but is frozen for edits
//   - StatusTransitionError: For when a lifecycle status would move backwards
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The three value errors together form the validation class; IsValidation
// reports membership so that adapters can map them to a single response kind.
package errs
