package validation

import (
	"fmt"
	"regexp"

	"github.com/kbukum/validify/util"
)

// TextValidator accumulates string constraints against one held value.
// Length and emptiness checks ignore every whitespace character.
type TextValidator struct {
	value input
	acc   accumulator
}

// NewText creates a TextValidator for value. Non-string values are accepted
// and reported as a base violation by the first constraint that needs text.
func NewText(value any, opts ...Option) *TextValidator {
	return &TextValidator{
		value: classify(value),
		acc:   newAccumulator(opts),
	}
}

// isText is the type gate. It records at most one base violation.
func (v *TextValidator) isText() bool {
	if v.value.kind == textValue {
		return true
	}
	if !v.acc.has(KindBase) {
		v.acc.add(KindBase, RefStringType, "value must be a string")
	}
	return false
}

// MinLength requires at least min non-whitespace characters.
func (v *TextValidator) MinLength(min int) *TextValidator {
	if !v.isText() {
		return v
	}
	if util.RuneLen(v.value.text) < min {
		v.acc.add(KindMin, RefStringLength, fmt.Sprintf("value must be at least %d", min))
	}
	return v
}

// MaxLength allows at most max non-whitespace characters.
func (v *TextValidator) MaxLength(max int) *TextValidator {
	if !v.isText() {
		return v
	}
	if util.RuneLen(v.value.text) > max {
		v.acc.add(KindMax, RefStringLength, fmt.Sprintf("value must not be > %d", max))
	}
	return v
}

// NotEmpty rejects values that are empty or whitespace only.
func (v *TextValidator) NotEmpty() *TextValidator {
	if !v.isText() {
		return v
	}
	if util.StripSpace(v.value.text) == "" {
		v.acc.add(KindEmpty, RefStringEmpty, "value can't be empty")
	}
	return v
}

// Pattern requires the value, whitespace included, to match re. A nil re is
// recorded as an invalid pattern.
func (v *TextValidator) Pattern(re *regexp.Regexp) *TextValidator {
	if !v.isText() {
		return v
	}
	v.match(re)
	return v
}

// PatternString compiles expr and behaves like Pattern. An expression that
// does not compile is recorded as an invalid pattern.
func (v *TextValidator) PatternString(expr string) *TextValidator {
	if !v.isText() {
		return v
	}
	// re is nil when expr does not compile
	re, _ := regexp.Compile(expr)
	v.match(re)
	return v
}

func (v *TextValidator) match(re *regexp.Regexp) {
	if re == nil {
		v.acc.add(KindPattern, RefRegExpPattern, "regex is invalid")
		return
	}
	if !re.MatchString(v.value.text) {
		v.acc.add(KindPattern, RefStringPattern, "value is incorrect format")
	}
}

// Required rejects the empty string. Whitespace-only text passes; use
// NotEmpty for that.
func (v *TextValidator) Required() *TextValidator {
	if !v.isText() {
		return v
	}
	if v.value.falsy {
		v.acc.add(KindRequired, RefStringRequired, "value is required")
	}
	return v
}

// CustomMessage replaces the message of violations already recorded for the
// empty, min, max and required kinds. Other keys, and kinds with no recorded
// violation, are ignored.
func (v *TextValidator) CustomMessage(messages Messages) *TextValidator {
	for _, kind := range textOverridable {
		if msg, ok := messages[kind]; ok {
			v.acc.rewrite(kind, msg)
		}
	}
	return v
}

// Validate runs the type gate and returns the accumulated violations. The
// result is never nil; check Valid to decide pass or fail.
func (v *TextValidator) Validate() *Result {
	v.isText()
	return v.acc.result()
}
