// Package diag defines the fixed diagnostic taxonomy shared by every layer
// of the compiler front end: the closed enumerations of error, warning,
// panic and informational categories, their IANA-style names, and their
// message templates. The Diagnostic value that carries a category to a
// callback lives in package reporter.
package diag

import "fmt"

// ErrorCode identifies one of the fixed error categories. Errors are
// recorded and compilation continues; a "fatal" error (SourceNotFound on
// a command-line source) is reported with reporter.SeverityFatal, not by
// a distinct Go type.
//
// This also declares OutputFailure, which the reference implementation's
// asset/source copy path raises (see its Parser.cpp) but which was never
// added to its own error enum table — the same kind of omission as
// NewlineAfterContinuation below for warnings.
type ErrorCode int

const (
	ErrorDirective ErrorCode = iota
	MissingArgument
	LiteralContainsInvalidSequence
	IncompatibleDirective
	DeprecateDirective
	ImportedModuleNotFound
	ImportedModuleFailure
	SourceNotFound
	AssetNotFound
	WildCharacterMismatch
	FinalFunctionPointsToNothing
	DereferencePointerToNothing
	TokenExpected
	TokenUnexpected
	AsConversionNotCompatible
	SoaAosIncompatible
	ConstantOverflow
	NeedsDereferencing
	IncompatibleTypes
	NoViableOuterTypeCast
	FunctionNotFound
	TypeNotFound
	FunctionCandidateNotFound
	FunctionCandidateAmbiguous
	OutercastAmbiguous
	ExceptAmbiguous
	EnumToUnderlyingNeedsAsOperator
	EnumToIncompatibleType
	RangeIteratorNotFound
	NamedScopeNotFound
	NamedScopeInaccessible
	LineDirectiveWithoutFile
	BadAlignment
	DuplicateCase
	ConditionExpectsBoolean
	MissingEndOfComments
	CompilesDirectiveError
	RequiresDirectiveError
	ValueNotCaptured
	OutputFailure
	totalErrorCodes
)

var errorNames = [totalErrorCodes]string{
	ErrorDirective:                  "error-directive",
	MissingArgument:                 "missing-argument",
	LiteralContainsInvalidSequence:  "literal-contains-invalid-sequence",
	IncompatibleDirective:           "incompatible-directive",
	DeprecateDirective:              "deprecate-directive",
	ImportedModuleNotFound:          "imported-module-not-found",
	ImportedModuleFailure:           "imported-module-failure",
	SourceNotFound:                  "source-not-found",
	AssetNotFound:                   "asset-not-found",
	WildCharacterMismatch:           "wild-character-mismatch",
	FinalFunctionPointsToNothing:    "final-function-points-to-nothing",
	DereferencePointerToNothing:     "dereference-pointer-to-nothing",
	TokenExpected:                   "token-expected",
	TokenUnexpected:                 "token-unexpected",
	AsConversionNotCompatible:       "as-conversion-not-compatible",
	SoaAosIncompatible:              "soa-aos-incompatible",
	ConstantOverflow:                "constant-overflow",
	NeedsDereferencing:              "needs-dereferencing",
	IncompatibleTypes:               "incompatible-types",
	NoViableOuterTypeCast:           "no-viable-outer-type-cast",
	FunctionNotFound:                "function-not-found",
	TypeNotFound:                    "type-not-found",
	FunctionCandidateNotFound:       "function-candidate-not-found",
	FunctionCandidateAmbiguous:      "function-candidate-ambiguous",
	OutercastAmbiguous:              "outercast-ambiguous",
	ExceptAmbiguous:                 "except-ambiguous",
	EnumToUnderlyingNeedsAsOperator: "enum-to-underlying-needs-as-operator",
	EnumToIncompatibleType:          "enum-to-incompatible-type",
	RangeIteratorNotFound:           "range-iterator-not-found",
	NamedScopeNotFound:              "named-scope-not-found",
	NamedScopeInaccessible:          "named-scope-inaccessible",
	LineDirectiveWithoutFile:        "line-directive-without-file",
	BadAlignment:                    "bad-alignment",
	DuplicateCase:                   "duplicate-case",
	ConditionExpectsBoolean:         "condition-expects-boolean",
	MissingEndOfComments:            "missing-end-of-comments",
	CompilesDirectiveError:          "compiles-directive-error",
	RequiresDirectiveError:          "requires-directive-error",
	ValueNotCaptured:                "value-not-captured",
	OutputFailure:                   "output-failure",
}

// String implements fmt.Stringer, returning the IANA-style name.
func (c ErrorCode) String() string {
	if c < 0 || c >= totalErrorCodes {
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
	return errorNames[c]
}

// TotalErrorCodes reports the size of the closed error enumeration.
func TotalErrorCodes() int { return int(totalErrorCodes) }

// LookupErrorCode resolves an IANA-style name (as written in a directive's
// bare category option, e.g. "constant-overflow") back to its ErrorCode.
func LookupErrorCode(name string) (ErrorCode, bool) {
	for i := ErrorCode(0); i < totalErrorCodes; i++ {
		if errorNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// WarningCode identifies one of the fixed warning categories. Unlike the
// original source this declares NewlineAfterContinuation, which the
// reference implementation raises from its tokenizer but never added to
// its own enum table.
type WarningCode int

const (
	WarningDirective WarningCode = iota
	ToDo
	IntrinsicTypeCastOverflow
	SwitchEnum
	SwitchEnumDefault
	ConditionNotBoolean
	SwitchBoolean
	ShiftCountOverflow
	ShiftNegative
	DanglingReferenceOrPointer
	DeprecateDirectiveWarning
	DirectiveNotUnderstood
	SourceNotFoundWarning
	AssetNotFoundWarning
	Shadowing
	UninitializedData
	LifetimeLinkageToUnrelatedPointer
	NamingConvention
	ResultNotCaptured
	VariableDeclaredButNotUsed
	DuplicateSpecifier
	SpecifierIgnored
	TaskNotDeep
	PromiseNotDeep
	UnknownDirective
	UnknownDirectiveArgument
	Forever
	DivideByZero
	AlwaysTrue
	AlwaysFalse
	FloatEqual
	SizeofZero
	CpuAlignmentNotSupported
	UpgradeDirective
	StatementSeparatorOperatorRedundant
	ExportDisabledFromExportNever
	RedundantAccessViaSelf
	RedundantAccessViaOwn
	BadStyle
	NewlineAfterContinuation
	UnmatchedPush
	totalWarningCodes
)

var warningNames = [totalWarningCodes]string{
	WarningDirective:                     "warning-directive",
	ToDo:                                 "to-do",
	IntrinsicTypeCastOverflow:            "intrinsic-type-cast-overflow",
	SwitchEnum:                           "switch-enum",
	SwitchEnumDefault:                    "switch-enum-default",
	ConditionNotBoolean:                  "condition-not-boolean",
	SwitchBoolean:                        "switch-boolean",
	ShiftCountOverflow:                   "shift-count-overflow",
	ShiftNegative:                        "shift-negative",
	DanglingReferenceOrPointer:           "dangling-reference-or-pointer",
	DeprecateDirectiveWarning:            "deprecate-directive",
	DirectiveNotUnderstood:               "directive-not-understood",
	SourceNotFoundWarning:                "source-not-found",
	AssetNotFoundWarning:                 "asset-not-found",
	Shadowing:                            "shadowing",
	UninitializedData:                    "uninitialized-data",
	LifetimeLinkageToUnrelatedPointer:    "lifetime-linkage-to-unrelated-pointer",
	NamingConvention:                     "naming-convention",
	ResultNotCaptured:                    "result-not-captured",
	VariableDeclaredButNotUsed:           "variable-declared-but-not-used",
	DuplicateSpecifier:                   "duplicate-specifier",
	SpecifierIgnored:                     "specifier-ignored",
	TaskNotDeep:                          "task-not-deep",
	PromiseNotDeep:                       "promise-not-deep",
	UnknownDirective:                     "unknown-directive",
	UnknownDirectiveArgument:             "unknown-directive-argument",
	Forever:                              "forever",
	DivideByZero:                         "divide-by-zero",
	AlwaysTrue:                           "always-true",
	AlwaysFalse:                          "always-false",
	FloatEqual:                           "float-equal",
	SizeofZero:                           "sizeof-zero",
	CpuAlignmentNotSupported:             "cpu-alignment-not-supported",
	UpgradeDirective:                     "upgrade-directive",
	StatementSeparatorOperatorRedundant:  "statement-separator-operator-redundant",
	ExportDisabledFromExportNever:        "export-disabled-from-export-never",
	RedundantAccessViaSelf:               "redundant-access-via-self",
	RedundantAccessViaOwn:                "redundant-access-via-own",
	BadStyle:                             "bad-style",
	NewlineAfterContinuation:             "newline-after-continuation",
	UnmatchedPush:                        "unmatched-push",
}

func (c WarningCode) String() string {
	if c < 0 || c >= totalWarningCodes {
		return fmt.Sprintf("WarningCode(%d)", int(c))
	}
	return warningNames[c]
}

// TotalWarningCodes reports the size of the closed warning enumeration.
func TotalWarningCodes() int { return int(totalWarningCodes) }

// LookupWarningCode resolves an IANA-style name back to its WarningCode.
func LookupWarningCode(name string) (WarningCode, bool) {
	for i := WarningCode(0); i < totalWarningCodes; i++ {
		if warningNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// PanicCode identifies one of the fixed panic categories. None of these
// are raised by the lexer or parser driver described by this module; they
// exist so the fault registry's push/pop/lock machinery is uniform across
// all four severities, and so downstream semantic stages have a home for
// them.
type PanicCode int

const (
	OutOfMemory PanicCode = iota
	IntrinsicTypeCastOverflowPanic
	StringConversionContainsIllegalSequence
	ReferenceFromPointerToNothing
	PointerToNothingAccessed
	NotAllPointersDeallocatedDuringAllocatorCleanup
	ImpossibleSwitchValue
	ImpossibleIfValue
	ImpossibleCodeFlow
	LazyAlreadyComplete
	ValuePolymorphicFunctionNotFound
	totalPanicCodes
)

var panicNames = [totalPanicCodes]string{
	OutOfMemory:                                      "out-of-memory",
	IntrinsicTypeCastOverflowPanic:                   "intrinsic-type-cast-overflow",
	StringConversionContainsIllegalSequence:          "string-conversion-contains-illegal-sequence",
	ReferenceFromPointerToNothing:                    "reference-from-pointer-to-nothing",
	PointerToNothingAccessed:                         "pointer-to-nothing-accessed",
	NotAllPointersDeallocatedDuringAllocatorCleanup:  "not-all-pointers-deallocated-during-allocator-cleanup",
	ImpossibleSwitchValue:                            "impossible-switch-value",
	ImpossibleIfValue:                                "impossible-if-value",
	ImpossibleCodeFlow:                               "impossible-code-flow",
	LazyAlreadyComplete:                              "lazy-already-complete",
	ValuePolymorphicFunctionNotFound:                 "value-polymorphic-function-not-found",
}

func (c PanicCode) String() string {
	if c < 0 || c >= totalPanicCodes {
		return fmt.Sprintf("PanicCode(%d)", int(c))
	}
	return panicNames[c]
}

// TotalPanicCodes reports the size of the closed panic enumeration.
func TotalPanicCodes() int { return int(totalPanicCodes) }

// LookupPanicCode resolves an IANA-style name back to its PanicCode.
func LookupPanicCode(name string) (PanicCode, bool) {
	for i := PanicCode(0); i < totalPanicCodes; i++ {
		if panicNames[i] == name {
			return i, true
		}
	}
	return 0, false
}

// InformationalCode identifies the single informational category.
type InformationalCode int

const (
	InfoToDo InformationalCode = iota
	totalInformationalCodes
)

var informationalNames = [totalInformationalCodes]string{
	InfoToDo: "to-do",
}

func (c InformationalCode) String() string {
	if c < 0 || c >= totalInformationalCodes {
		return fmt.Sprintf("InformationalCode(%d)", int(c))
	}
	return informationalNames[c]
}

// TotalInformationalCodes reports the size of the closed informational enumeration.
func TotalInformationalCodes() int { return int(totalInformationalCodes) }
