package validation

import (
	"github.com/kbukum/validify/logger"
)

// accumulator is the violation list owned by a single validator.
type accumulator struct {
	violations []Violation
	log        *logger.Logger
}

func newAccumulator(opts []Option) accumulator {
	o := options{log: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	return accumulator{log: o.log}
}

func (a *accumulator) add(kind Kind, reference, message string) {
	a.violations = append(a.violations, Violation{
		Kind:      kind,
		Reference: reference,
		Message:   message,
	})
	if a.log.DebugEnabled() {
		a.log.Debug("constraint violated", logger.Fields(
			logger.FieldKind, string(kind),
			logger.FieldReference, reference,
		))
	}
}

func (a *accumulator) has(kind Kind) bool {
	for _, v := range a.violations {
		if v.Kind == kind {
			return true
		}
	}
	return false
}

// rewrite replaces the message of every violation of kind, keeping its
// position, kind and reference. It never adds a violation.
func (a *accumulator) rewrite(kind Kind, message string) bool {
	found := false
	for i := range a.violations {
		if a.violations[i].Kind == kind {
			a.violations[i].Message = message
			found = true
		}
	}
	if found && a.log.DebugEnabled() {
		a.log.Debug("message overridden", logger.Fields(logger.FieldKind, string(kind)))
	}
	return found
}

func (a *accumulator) result() *Result {
	return &Result{Errors: append(make([]Violation, 0, len(a.violations)), a.violations...)}
}
