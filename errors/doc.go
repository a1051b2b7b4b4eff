// Package errors provides the structured error type used when a validation
// result has to travel as a Go error.
//
// An AppError carries a machine-readable code, a human-readable message, the
// recommended HTTP status and optional details, and renders as an RFC 7807
// style body through ToResponse.
package errors
