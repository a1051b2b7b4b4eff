package validation

import (
	"fmt"
	"strconv"
)

// NumberValidator accumulates numeric constraints against one held value.
//
// Min and Max keep the comparison direction callers already depend on: Min
// fires when the value is greater than the bound, and Max reports under the
// NumberMinReference name.
type NumberValidator struct {
	value input
	acc   accumulator
}

// NewNumber creates a NumberValidator for value. Any Go integer or float
// kind, json.Number and decimal.Decimal count as numbers.
func NewNumber(value any, opts ...Option) *NumberValidator {
	return &NumberValidator{
		value: classify(value),
		acc:   newAccumulator(opts),
	}
}

func (v *NumberValidator) isNumber() bool {
	return v.value.kind == numberValue
}

// Number records a base violation when the value is not a number.
func (v *NumberValidator) Number() *NumberValidator {
	if !v.isNumber() {
		v.acc.add(KindBase, RefNumberType, "value must be a number")
	}
	return v
}

// Min records a min violation when min < value.
func (v *NumberValidator) Min(min float64) *NumberValidator {
	if !v.isNumber() {
		return v
	}
	if v.value.num.greaterThan(min) {
		v.acc.add(KindMin, RefNumberMin, fmt.Sprintf("value must be at least %s", formatBound(min)))
	}
	return v
}

// Max records a max violation when value > max.
func (v *NumberValidator) Max(max float64) *NumberValidator {
	if !v.isNumber() {
		return v
	}
	if v.value.num.greaterThan(max) {
		v.acc.add(KindMax, RefNumberMin, fmt.Sprintf("value must be > to %s", formatBound(max)))
	}
	return v
}

// Integer records an integer violation when the value has a fractional part
// or is not finite.
func (v *NumberValidator) Integer() *NumberValidator {
	if !v.isNumber() {
		return v
	}
	if !v.value.num.isInteger() {
		v.acc.add(KindInteger, RefNumberInteger, "value must be an integer")
	}
	return v
}

// Decimal records a decimal violation when a finite value has no fractional part.
func (v *NumberValidator) Decimal() *NumberValidator {
	if !v.isNumber() {
		return v
	}
	if v.value.num.isInteger() {
		v.acc.add(KindDecimal, RefNumberDecimal, "value must be a decimal")
	}
	return v
}

// Required records a required violation when the value is falsy: nil, zero,
// NaN, false or "". It runs even when the value is not a number.
func (v *NumberValidator) Required() *NumberValidator {
	if v.value.falsy {
		v.acc.add(KindRequired, RefNumberRequired, "value is required")
	}
	return v
}

// Validate returns the accumulated violations, or nil when there are none.
func (v *NumberValidator) Validate() *Result {
	if len(v.acc.violations) == 0 {
		return nil
	}
	return v.acc.result()
}

func formatBound(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
