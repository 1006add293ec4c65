package deco

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// fieldViolation is one invalid configuration field.
type fieldViolation struct {
	Field  string
	Reason string
}

func (v fieldViolation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

// ConfigError reports one or more invalid configuration fields. spec.md
// §7 specifies a single (field, reason) pair; this aggregates every
// violated invariant found during one Validate() call via
// hashicorp/go-multierror, so a caller fixing a config does not have to
// resubmit once per violation. Field()/Reason() return the first
// violation for callers that only care about one.
type ConfigError struct {
	merr *multierror.Error
}

func newConfigError() *ConfigError {
	return &ConfigError{merr: &multierror.Error{}}
}

func (e *ConfigError) add(field, reason string) {
	e.merr = multierror.Append(e.merr, fieldViolation{Field: field, Reason: reason})
}

func (e *ConfigError) empty() bool {
	return e.merr == nil || len(e.merr.Errors) == 0
}

// Field returns the field name of the first violation.
func (e *ConfigError) Field() string {
	if e.empty() {
		return ""
	}
	return e.merr.Errors[0].(fieldViolation).Field
}

// Reason returns the reason string of the first violation.
func (e *ConfigError) Reason() string {
	if e.empty() {
		return ""
	}
	return e.merr.Errors[0].(fieldViolation).Reason
}

// Violations returns every invalid field and reason, in the order found.
func (e *ConfigError) Violations() []string {
	if e.empty() {
		return nil
	}
	out := make([]string, len(e.merr.Errors))
	for i, err := range e.merr.Errors {
		out[i] = err.Error()
	}
	return out
}

func (e *ConfigError) Error() string {
	if e.empty() {
		return "invalid configuration"
	}
	return "invalid configuration: " + strings.Join(e.Violations(), "; ")
}

// DepthError reports a recorded depth outside the allowed range.
type DepthError struct {
	DepthM       float64
	MinM, MaxM   float64
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("depth %.1f m out of range [%.1f, %.1f]", e.DepthM, e.MinM, e.MaxM)
}

// DecoErrorKind distinguishes the deco-planner validation failures.
type DecoErrorKind int

const (
	// EmptyGasList means deco() was called with no gases.
	EmptyGasList DecoErrorKind = iota
	// CurrentGasNotInList means the dive's current gas is absent from
	// the supplied gas list.
	CurrentGasNotInList
	// UnsupportedCeilingType is a defensive case for an unrecognized
	// Config.CeilingType value.
	UnsupportedCeilingType
)

// DecoError reports a deco-planning precondition failure.
type DecoError struct {
	Kind   DecoErrorKind
	Detail string
}

func (e *DecoError) Error() string {
	switch e.Kind {
	case EmptyGasList:
		return "deco: gas list is empty"
	case CurrentGasNotInList:
		return "deco: current gas is not in the supplied gas list"
	case UnsupportedCeilingType:
		return fmt.Sprintf("deco: unsupported ceiling type: %s", e.Detail)
	default:
		return "deco: invalid request"
	}
}
