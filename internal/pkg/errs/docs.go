// Package errs provides standardized error types shared across the
// application.
//
// Each error kind follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying error details
//   - constructor functions with and without an underlying cause
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// Domain-specific failures (insufficient stock, terminal order status) are
// declared as sentinels in their aggregate packages; this package covers the
// generic lookup-miss and validation cases.
package errs
