package validation

import (
	"strings"

	"github.com/kbukum/validify/errors"
)

// Kind identifies the constraint family a violation belongs to.
type Kind string

const (
	KindBase     Kind = "base"
	KindMin      Kind = "min"
	KindMax      Kind = "max"
	KindEmpty    Kind = "empty"
	KindPattern  Kind = "pattern"
	KindRequired Kind = "required"
	KindInteger  Kind = "integer"
	KindDecimal  Kind = "decimal"
)

// Reference names attached to violations. They identify the rule that fired
// and carry no meaning for control flow.
const (
	RefStringType     = "StringTypeReference"
	RefStringLength   = "StringLengthReference"
	RefStringEmpty    = "StringEmptyReference"
	RefStringPattern  = "StringPatternReference"
	RefStringRequired = "StringRequiredReference"
	RefRegExpPattern  = "RegExpPatternReference"
	RefNumberType     = "NumberTypeReference"
	RefNumberMin      = "NumberMinReference"
	RefNumberRequired = "NumberRequiredReference"
	RefNumberInteger  = "NumberIntegerReference"
	RefNumberDecimal  = "NumberDecimalReference"
)

// Code maps the kind to a machine-readable error code.
func (k Kind) Code() errors.ErrorCode {
	switch k {
	case KindBase:
		return errors.ErrCodeInvalidType
	case KindRequired, KindEmpty:
		return errors.ErrCodeMissingField
	case KindPattern:
		return errors.ErrCodeInvalidFormat
	default:
		return errors.ErrCodeInvalidInput
	}
}

// Violation is one recorded constraint failure.
type Violation struct {
	// Field is reserved for multi-field composition; validators leave it empty.
	Field     string `json:"field,omitempty"`
	Kind      Kind   `json:"type"`
	Reference string `json:"name"`
	Message   string `json:"message"`
}

// Result holds the violations of one validator in evaluation order.
type Result struct {
	Errors []Violation `json:"errors"`
}

// Valid reports whether the result carries no violations. A nil result is valid.
func (r *Result) Valid() bool {
	return r == nil || len(r.Errors) == 0
}

// Has reports whether a violation of the given kind was recorded.
func (r *Result) Has(kind Kind) bool {
	if r == nil {
		return false
	}
	for _, v := range r.Errors {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// Messages returns the violation messages in order.
func (r *Result) Messages() []string {
	if r == nil {
		return nil
	}
	messages := make([]string, len(r.Errors))
	for i, v := range r.Errors {
		messages[i] = v.Message
	}
	return messages
}

// Err returns an *errors.AppError describing every violation, or nil if the
// result is valid.
func (r *Result) Err() error {
	if r.Valid() {
		return nil
	}

	codes := make([]errors.ErrorCode, len(r.Errors))
	for i, v := range r.Errors {
		codes[i] = v.Kind.Code()
	}

	return errors.Validation(strings.Join(r.Messages(), "; ")).WithDetails(map[string]any{
		"violations": append([]Violation(nil), r.Errors...),
		"codes":      codes,
	})
}
