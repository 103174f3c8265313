// Package apperrors holds the error taxonomy of fibmod and the mapping from
// errors to process exit codes.
//
// Errors are wrapped with fmt.Errorf and %w. Types that carry a cause
// implement Unwrap so that errors.Is and errors.As see through them.
package apperrors
