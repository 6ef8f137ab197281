// Package compilestate implements the immutable CompileState snapshot:
// the diagnostic and default-declaration policy in force at a particular
// point in a source file. Every token emitted by the lexer carries a
// shared reference to the CompileState that was active at its site, so a
// diagnostic raised against that token later is always judged under the
// rules that applied there - not whatever rules are active "now".
package compilestate

import (
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/fault"
	"github.com/zaxc/corec/semver"
)

// DeprecateContext selects which call sites a deprecate window applies to.
type DeprecateContext int

const (
	DeprecateImport DeprecateContext = iota
	DeprecateAll
	DeprecateLocal
)

func (c DeprecateContext) String() string {
	switch c {
	case DeprecateImport:
		return "import"
	case DeprecateAll:
		return "all"
	case DeprecateLocal:
		return "local"
	default:
		return "local"
	}
}

// Deprecate describes an active deprecation window installed by the
// deprecate directive.
type Deprecate struct {
	Context    DeprecateContext
	ForceError bool
	Min        *semver.Version
	Max        *semver.Version
}

// VariableDefaults holds the default declaration policy for variables.
type VariableDefaults struct {
	Varies  bool // varies vs final
	Mutable bool // mutable vs immutable
}

// TypeDefaults holds the default declaration policy for types.
type TypeDefaults struct {
	Mutable  bool
	Constant bool // constant vs inconstant
}

// FunctionDefaults holds the default declaration policy for functions.
type FunctionDefaults struct {
	Constant bool // constant vs inconstant
}

// State is an immutable (once published) snapshot of every piece of
// policy a directive can mutate. It is never shared mutably once a token
// has taken a reference to it: every mutating directive produces a fresh
// State via Fork and installs that as the new "active" pointer, while
// already-emitted tokens keep referring to their original snapshot.
type State struct {
	Errors          *fault.Registry[diag.ErrorCode]
	Warnings        *fault.Registry[diag.WarningCode]
	Panics          *fault.Registry[diag.PanicCode]
	Informationals  *fault.Registry[diag.InformationalCode]

	TabStopWidth int

	VariableDefault VariableDefaults
	TypeDefault     TypeDefaults
	FunctionDefault FunctionDefaults

	Deprecate *Deprecate
	Export    bool
}

// New builds the root CompileState with every category enabled, an
// 8-column tab stop, and the language's baseline default declarations.
func New() *State {
	return &State{
		Errors:         fault.New[diag.ErrorCode](diag.TotalErrorCodes()),
		Warnings:       fault.New[diag.WarningCode](diag.TotalWarningCodes()),
		Panics:         fault.New[diag.PanicCode](diag.TotalPanicCodes()),
		Informationals: fault.New[diag.InformationalCode](diag.TotalInformationalCodes()),
		TabStopWidth:   8,
		VariableDefault: VariableDefaults{Varies: true, Mutable: true},
		TypeDefault:     TypeDefaults{Mutable: true, Constant: false},
		FunctionDefault: FunctionDefaults{Constant: false},
	}
}

// Fork clones the diagnostic arrays (current state only, stacks reset to
// empty) and copies the default-declaration and deprecate records by
// value, producing an independent State a directive can now mutate
// in-place before publishing it as the new active pointer. The parent is
// left completely untouched.
func Fork(parent *State) *State {
	clone := &State{
		Errors:          parent.Errors.Fork(),
		Warnings:        parent.Warnings.Fork(),
		Panics:          parent.Panics.Fork(),
		Informationals:  parent.Informationals.Fork(),
		TabStopWidth:    parent.TabStopWidth,
		VariableDefault: parent.VariableDefault,
		TypeDefault:     parent.TypeDefault,
		FunctionDefault: parent.FunctionDefault,
		Export:          parent.Export,
	}
	if parent.Deprecate != nil {
		d := *parent.Deprecate
		clone.Deprecate = &d
	}
	return clone
}

// IsWarningAnError consults the warnings registry's force-as-error bit.
func (s *State) IsWarningAnError(code diag.WarningCode) bool {
	return s.Warnings.At(code).ForceAsError
}
