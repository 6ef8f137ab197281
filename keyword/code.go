// Package keyword implements the closed keyword enumeration and the
// exact-spelling lookup the lexer/parser use to decide whether a scanned
// identifier-shaped literal is one of the language's reserved words.
//
// Unlike operator.Lut, keyword lookup has no length buckets or conflict
// sets: every keyword has a unique spelling and a literal token either
// matches one exactly or it doesn't.
package keyword

import "fmt"

// Code identifies one of the fixed keyword spellings.
type Code int

const (
	Aos Code = iota
	Alias
	Atomic
	Await
	Break
	Build
	Case
	Channel
	Continue
	Collect
	Constant
	Deep
	Default
	Defer
	Discard
	Each
	Else
	Extension
	Except
	Export
	False
	For
	Forever
	Handle
	Hidden
	Hint
	If
	In
	Is
	Immutable
	Import
	Inconstant
	Keyword
	Lazy
	Managed
	Mutable
	Mutator
	Once
	Operator
	Override
	Own
	Private
	Promise
	Redo
	Return
	Requires
	Scope
	Soa
	Suspend
	Switch
	Task
	True
	Type
	Union
	Until
	Using
	Varies
	Void
	Weak
	While
	Yield
	totalCodes
)

var spelling = [totalCodes]string{
	Aos:        "aos",
	Alias:      "alias",
	Atomic:     "atomic",
	Await:      "await",
	Break:      "break",
	Build:      "build",
	Case:       "case",
	Channel:    "channel",
	Continue:   "continue",
	Collect:    "collect",
	Constant:   "constant",
	Deep:       "deep",
	Default:    "default",
	Defer:      "defer",
	Discard:    "discard",
	Each:       "each",
	Else:       "else",
	Extension:  "extension",
	Except:     "except",
	Export:     "export",
	False:      "false",
	For:        "for",
	Forever:    "forever",
	Handle:     "handle",
	Hidden:     "hidden",
	Hint:       "hint",
	If:         "if",
	In:         "in",
	Is:         "is",
	Immutable:  "immutable",
	Import:     "import",
	Inconstant: "inconstant",
	Keyword:    "keyword",
	Lazy:       "lazy",
	Managed:    "managed",
	Mutable:    "mutable",
	Mutator:    "mutator",
	Once:       "once",
	Operator:   "operator",
	Override:   "override",
	Own:        "own",
	Private:    "private",
	Promise:    "promise",
	Redo:       "redo",
	Return:     "return",
	Requires:   "requires",
	Scope:      "scope",
	Soa:        "soa",
	Suspend:    "suspend",
	Switch:     "switch",
	Task:       "task",
	True:       "true",
	Type:       "type",
	Union:      "union",
	Until:      "until",
	Using:      "using",
	Varies:     "varies",
	Void:       "void",
	Weak:       "weak",
	While:      "while",
	Yield:      "yield",
}

func (c Code) String() string {
	if c < 0 || c >= totalCodes {
		return fmt.Sprintf("keyword.Code(%d)", int(c))
	}
	return spelling[c]
}

// TotalCodes reports the size of the closed keyword enumeration.
func TotalCodes() int { return int(totalCodes) }

var byName map[string]Code

func init() {
	byName = make(map[string]Code, totalCodes)
	for c := Code(0); c < totalCodes; c++ {
		byName[spelling[c]] = c
	}
}

// Lookup reports whether text is one of the reserved keyword spellings,
// returning its code.
func Lookup(text string) (Code, bool) {
	c, ok := byName[text]
	return c, ok
}
