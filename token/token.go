package token

import (
	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/keyword"
	"github.com/zaxc/corec/operator"
)

// Token is one lexeme produced by the tokenizer. A Token is immutable
// with respect to every field set at construction time; the two
// exceptions are Alias and AliasSearched, which the parser's alias
// resolver fills in lazily after the token has already been emitted and
// handed to callers (see the package doc on why that's safe even though
// every other field is treated as read-only from then on).
type Token struct {
	Kind Kind

	// OriginalText is exactly what was read from the byte stream.
	// Text is OriginalText with quote or comment delimiters stripped (or,
	// for a whitespace Separator, just the run's first newline byte) and
	// is what the grammar actually compares against keyword/operator
	// spellings.
	OriginalText string
	Text         string

	// Origin is this lexeme's position as reported to the user: the true
	// file offset translated through any [[file=]]/[[line=]] remap
	// directives active at that point. ActualOrigin is the untranslated
	// position in the file the tokenizer is actually reading - what a
	// debugger attached to the compiler itself would want.
	Origin       Location
	ActualOrigin Location

	HasOperatorCode bool
	OperatorCode    operator.Code

	HasKeywordCode bool
	KeywordCode    keyword.Code

	// ForcedSeparator marks a Separator token scanned from a literal ';',
	// as opposed to one produced by a newline.
	ForcedSeparator bool

	// State is the CompileState snapshot that was active when this
	// token was produced. It never changes after construction: later
	// directives fork a new State and leave this pointer alone, which
	// is the entire mechanism behind "a directive's effect never
	// retroactively touches tokens already emitted."
	State *compilestate.State

	// Alias and AliasSearched are the parser's memoized alias
	// resolution result for this token, filled in no more than once.
	Alias         *Token
	AliasSearched bool
}

// IsOperator reports whether tok's operator code is code or one of
// code's spelling-conflict alternatives (see operator.Lut.IsOrAlternative).
func (t *Token) IsOperator(lut *operator.Lut, code operator.Code) bool {
	if !t.HasOperatorCode {
		return false
	}
	return lut.IsOrAlternative(t.OperatorCode, code)
}

// IsKeyword reports whether tok is a literal carrying the given keyword
// code.
func (t *Token) IsKeyword(code keyword.Code) bool {
	return t.HasKeywordCode && t.KeywordCode == code
}
