// Package tokenizer implements the lazy streaming tokenizer described in
// spec §4: a single source buffer is projected one token at a time into a
// token.TokenList, with every token stamped with the CompileState snapshot
// in force at its lexical site. Grounded on
// _examples/original_source/src/Tokenizer.cpp, adapted from the per-byte
// cursor style there into Go, and shaped after the rune-reader/handler
// idiom of _examples/bufbuild-protocompile/parser/lexer.go.
package tokenizer

import (
	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/token"
)

// StateFunc returns the CompileState currently in force. The tokenizer
// stamps its result onto every token it mints (spec §1(c)) and reads its
// TabStopWidth field while advancing the cursor through a tab.
type StateFunc func() *compilestate.State

// Tokenizer lazily projects one source file's bytes into a token.TokenList.
// Tokens are materialized on demand (At/PeekFront/PopFront/Empty), never
// all at once, matching spec §4's "lazy streaming" requirement.
type Tokenizer struct {
	actualFile string
	originFile string

	buf []byte
	cur cursor

	cache   *token.TokenList
	lut     *operator.Lut
	stateFn StateFunc
	handler *reporter.Handler

	// SkipComments, when true, suppresses both Comment tokens and the
	// Separator a comment's embedded newline would otherwise produce.
	SkipComments bool

	bomChecked    bool
	done          bool
	fileDirective bool
}

// New builds a Tokenizer over buf. filePath names the file for both
// Origin and ActualOrigin until a [[file=]] directive installs a
// different apparent name via SetOriginFile.
func New(filePath string, buf []byte, lut *operator.Lut, stateFn StateFunc, handler *reporter.Handler) *Tokenizer {
	return &Tokenizer{
		actualFile: filePath,
		originFile: filePath,
		buf:        buf,
		cur:        cursor{originLine: 1, actualLine: 1, column: 1, lineSkip: 1},
		cache:      token.NewList(),
		lut:        lut,
		stateFn:    stateFn,
		handler:    handler,
	}
}

// FilePath returns the tokenizer's true (actual) file path.
func (t *Tokenizer) FilePath() string { return t.actualFile }

// SetOriginFile installs the apparent file name that subsequently minted
// tokens report via Origin ([[file=]]). ActualOrigin keeps reporting the
// tokenizer's real file regardless.
func (t *Tokenizer) SetOriginFile(name string) {
	t.originFile = name
	t.fileDirective = true
}

// OriginFileWasSet reports whether a [[file=]] directive has installed
// an apparent file name for this tokenizer yet. The parser driver
// consults this to raise LineDirectiveWithoutFile for a [[line=]] that
// precedes any [[file=]] in the same source (spec §4.7's directive
// table).
func (t *Tokenizer) OriginFileWasSet() bool { return t.fileDirective }

// SetOriginLine reassigns the apparent line number the next minted token
// reports, and installs lineSkip as the amount the apparent line advances
// per subsequent source newline ([[line=]]'s increment option; default 1).
func (t *Tokenizer) SetOriginLine(line, lineSkip int) {
	t.cur.originLine = line
	if lineSkip <= 0 {
		lineSkip = 1
	}
	t.cur.lineSkip = lineSkip
}

// Cache exposes the underlying TokenList directly, for callers that need
// to splice ranges out of it once a span has been materialized with
// EnsureAhead.
func (t *Tokenizer) Cache() *token.TokenList { return t.cache }

// EnsureAhead primes until the cache holds at least n tokens, or input is
// exhausted. Callers extract a concrete token range only after ensuring
// it is fully materialized.
func (t *Tokenizer) EnsureAhead(n int) int {
	for !t.done && t.cache.Len() < n {
		t.primeNext()
	}
	return t.cache.Len()
}

// Empty reports whether the tokenizer has nothing left to offer: its
// cache is drained and the underlying buffer is exhausted. Laziness means
// this can only be known by attempting to prime one more token.
func (t *Tokenizer) Empty() bool {
	return t.EnsureAhead(1) == 0
}

// At ensures the n'th (0-based) not-yet-materialized token is primed and
// returns it.
func (t *Tokenizer) At(n int) (*token.Token, bool) {
	if t.EnsureAhead(n+1) <= n {
		return nil, false
	}
	return t.cache.At(n).Token(), true
}

// PeekFront ensures at least one token is primed and returns it without
// removing it from the cache.
func (t *Tokenizer) PeekFront() (*token.Token, bool) {
	return t.At(0)
}

// PopFront ensures at least one token is primed, then removes and returns
// it - the operation the parser driver uses to consume tokens off the
// front of the stream.
func (t *Tokenizer) PopFront() (*token.Token, bool) {
	if t.EnsureAhead(1) == 0 {
		return nil, false
	}
	return t.cache.PopFront()
}

// Clear abandons the remainder of the source: every cached token is
// dropped, and any bytes not yet scanned are walked purely to keep the
// cursor's line/column bookkeeping correct for any diagnostic reported
// afterward (e.g. an end-of-file location). No further tokens are ever
// produced once Clear has run.
func (t *Tokenizer) Clear() {
	t.cache.Clear()
	for t.cur.pos < len(t.buf) {
		t.advanceByte()
	}
	t.done = true
}

func (t *Tokenizer) currentTabWidth() int {
	if st := t.stateFn(); st != nil && st.TabStopWidth > 0 {
		return st.TabStopWidth
	}
	return 8
}

func (t *Tokenizer) advanceByte() byte {
	b := t.buf[t.cur.pos]
	t.cur.count(b, t.currentTabWidth())
	t.cur.pos++
	return b
}

func (t *Tokenizer) advanceN(n int) {
	for i := 0; i < n; i++ {
		t.advanceByte()
	}
}

func (t *Tokenizer) peekByte(offset int) (byte, bool) {
	i := t.cur.pos + offset
	if i < 0 || i >= len(t.buf) {
		return 0, false
	}
	return t.buf[i], true
}

func (t *Tokenizer) hasPrefixBytes(s string) bool {
	end := t.cur.pos + len(s)
	if end > len(t.buf) {
		return false
	}
	return string(t.buf[t.cur.pos:end]) == s
}

func (t *Tokenizer) originLocations() (origin, actual token.Location) {
	origin = token.Location{File: t.originFile, Line: t.cur.originLine, Column: t.cur.column}
	actual = token.Location{File: t.actualFile, Line: t.cur.actualLine, Column: t.cur.column}
	return
}

func (t *Tokenizer) newToken(kind token.Kind, origin, actual token.Location) *token.Token {
	return &token.Token{
		Kind:         kind,
		Origin:       origin,
		ActualOrigin: actual,
		State:        t.stateFn(),
	}
}

func (t *Tokenizer) reportError(code diag.ErrorCode, loc token.Location, args map[string]string) {
	st := t.stateFn()
	if st != nil && !st.Errors.At(code).Enabled {
		return
	}
	t.handler.Report(reporter.Diagnostic{
		Severity: reporter.SeverityError,
		Name:     code.String(),
		Message:  diag.Format(code.Template(), args),
		Location: loc,
		State:    st,
	})
}

func (t *Tokenizer) reportWarning(code diag.WarningCode, loc token.Location, args map[string]string) {
	st := t.stateFn()
	sev := reporter.SeverityWarning
	if st != nil {
		w := st.Warnings.At(code)
		if !w.Enabled {
			return
		}
		if w.ForceAsError {
			sev = reporter.SeverityError
		}
	}
	t.handler.Report(reporter.Diagnostic{
		Severity: sev,
		Name:     code.String(),
		Message:  diag.Format(code.Template(), args),
		Location: loc,
		State:    st,
	})
}

// primeNext runs one lazy step: it appends at least one token to the
// cache (a comment with an embedded newline adds a Comment and a
// Separator; an illegal byte run adds its Literal and keeps scanning),
// or observes end of input and sets t.done, per spec §4.4's
// numbered scanner priority (whitespace, comment, quote, literal,
// number, operator-or-continuation, illegal byte run).
func (t *Tokenizer) primeNext() {
	if !t.bomChecked {
		t.bomChecked = true
		if len(t.buf) >= 3 && t.buf[0] == 0xEF && t.buf[1] == 0xBB && t.buf[2] == 0xBF {
			t.cur.pos = 3
		}
	}

	for {
		origin, actual := t.originLocations()

		if original, text, hadNewline, ok := t.scanWhitespace(); ok {
			if hadNewline {
				tok := t.newToken(token.Separator, origin, actual)
				tok.OriginalText, tok.Text = original, text
				t.cache.PushBack(tok)
				return
			}
			continue
		}

		if cres, ok := t.scanComment(); ok {
			if !t.SkipComments {
				tok := t.newToken(token.Comment, origin, actual)
				tok.OriginalText, tok.Text = cres.original, cres.text
				t.cache.PushBack(tok)
			}
			if !cres.foundEnding {
				t.reportError(diag.MissingEndOfComments, origin, map[string]string{"location": origin.String()})
			}
			if !t.SkipComments {
				if cres.hadNewline {
					sep := t.newToken(token.Separator, origin, actual)
					sep.OriginalText, sep.Text = cres.original, "\n"
					t.cache.PushBack(sep)
				}
				return
			}
			continue
		}

		if qres, ok := t.scanQuote(); ok {
			tok := t.newToken(token.Quote, origin, actual)
			tok.OriginalText, tok.Text = qres.original, qres.text
			t.cache.PushBack(tok)
			if !qres.foundEnding {
				t.reportError(diag.LiteralContainsInvalidSequence, origin, map[string]string{"text": qres.original})
			}
			return
		}

		if lit, ok := t.scanLiteral(); ok {
			tok := t.newToken(token.Literal, origin, actual)
			tok.OriginalText, tok.Text = lit, lit
			t.cache.PushBack(tok)
			return
		}

		if num, illegal, ok := t.scanNumber(); ok {
			tok := t.newToken(token.Number, origin, actual)
			tok.OriginalText, tok.Text = num, num
			t.cache.PushBack(tok)
			if illegal {
				t.reportError(diag.ConstantOverflow, origin, map[string]string{"text": num})
			}
			return
		}

		if code, sym, ok := t.scanOperator(); ok {
			if code == operator.Continuation {
				t.consumeContinuation()
				continue
			}
			kind := token.Operator
			forced := false
			if code == operator.StatementSeparator {
				kind = token.Separator
				forced = true
			}
			tok := t.newToken(kind, origin, actual)
			tok.OriginalText, tok.Text = sym, sym
			if kind == token.Operator {
				tok.HasOperatorCode, tok.OperatorCode = true, code
			} else {
				tok.ForcedSeparator = forced
			}
			t.cache.PushBack(tok)
			return
		}

		if run, ok := t.scanIllegalRun(); ok {
			tok := t.newToken(token.Literal, origin, actual)
			tok.OriginalText, tok.Text = run, run
			t.cache.PushBack(tok)
			t.reportError(diag.LiteralContainsInvalidSequence, origin, map[string]string{"text": run})
			continue
		}

		t.done = true
		return
	}
}

// consumeContinuation implements the "\" continuation rule (spec §4.4
// item 7): comments and whitespace are discarded, without minting any
// token, until either a newline is found (normal resume) or real content
// begins on the same line (NewlineAfterContinuation warning against that
// content's position).
func (t *Tokenizer) consumeContinuation() {
	foundNewline := false
	for {
		if _, ok := t.scanComment(); ok {
			continue
		}
		if _, _, hadNewline, ok := t.scanWhitespace(); ok {
			if hadNewline {
				foundNewline = true
				break
			}
			continue
		}
		break
	}
	if !foundNewline {
		origin, _ := t.originLocations()
		t.reportWarning(diag.NewlineAfterContinuation, origin, nil)
	}
}
