package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidType indicates the input is not of the expected kind.
	ErrCodeInvalidType ErrorCode = "INVALID_TYPE"
	// ErrCodeMissingField indicates a required value is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)
