package tokenizer

import "github.com/zaxc/corec/operator"

// commentResult is the shared return shape for the three comment forms.
// original is the full matched text including delimiters; text is the
// interior (no delimiters); hadNewline reports whether the apparent
// (origin) line changed while scanning a block comment - line comments
// never set it, since they stop before consuming their terminator.
type commentResult struct {
	original, text string
	hadNewline     bool
	foundEnding    bool
}

type quoteResult struct {
	original, text string
	foundEnding    bool
}

// scanWhitespace consumes a maximal run of space/control bytes. If the
// run contains a '\n' or '\v', text collapses to just that first such
// byte (and hadNewline is true) while original keeps the full run;
// otherwise text equals original.
func (t *Tokenizer) scanWhitespace() (original, text string, hadNewline, ok bool) {
	start := t.cur.pos
	var newlineByte byte
	sawNewline := false
	for {
		b, have := t.peekByte(0)
		if !have || !isWhitespaceByte(b) {
			break
		}
		if !sawNewline && (b == '\n' || b == '\v') {
			sawNewline = true
			newlineByte = b
		}
		t.advanceByte()
	}
	if t.cur.pos == start {
		return "", "", false, false
	}
	original = string(t.buf[start:t.cur.pos])
	if sawNewline {
		text = string(newlineByte)
	} else {
		text = original
	}
	return original, text, sawNewline, true
}

// scanComment tries each comment form in priority order: line, nested
// block, flat block.
func (t *Tokenizer) scanComment() (commentResult, bool) {
	if r, ok := t.scanLineComment(); ok {
		return r, true
	}
	if r, ok := t.scanNestedComment(); ok {
		return r, true
	}
	if r, ok := t.scanFlatComment(); ok {
		return r, true
	}
	return commentResult{}, false
}

// scanLineComment consumes "// ... " up to but not including the
// terminating newline (or EOF), which is left for the whitespace scanner
// to pick up as a separate Separator token.
func (t *Tokenizer) scanLineComment() (commentResult, bool) {
	if !t.hasPrefixBytes("//") {
		return commentResult{}, false
	}
	start := t.cur.pos
	t.advanceN(2)
	textStart := t.cur.pos
	for {
		b, have := t.peekByte(0)
		if !have || b == '\n' || b == '\r' {
			break
		}
		t.advanceByte()
	}
	original := string(t.buf[start:t.cur.pos])
	text := string(t.buf[textStart:t.cur.pos])
	return commentResult{original: original, text: text, foundEnding: true}, true
}

// scanNestedComment consumes a "/** ... **/" comment, where inner "/**"
// occurrences nest and the matching count of "**/" occurrences is
// required to close it.
func (t *Tokenizer) scanNestedComment() (commentResult, bool) {
	if !t.hasPrefixBytes("/**") {
		return commentResult{}, false
	}
	startLine := t.cur.originLine
	start := t.cur.pos
	t.advanceN(3)
	textStart := t.cur.pos
	depth := 1
	textEnd := -1
	for t.cur.pos < len(t.buf) {
		switch {
		case t.hasPrefixBytes("/**"):
			depth++
			t.advanceN(3)
		case t.hasPrefixBytes("**/"):
			depth--
			if depth == 0 {
				textEnd = t.cur.pos
				t.advanceN(3)
			} else {
				t.advanceN(3)
			}
		default:
			t.advanceByte()
		}
		if textEnd >= 0 {
			break
		}
	}
	foundEnding := textEnd >= 0
	if !foundEnding {
		textEnd = t.cur.pos
	}
	original := string(t.buf[start:t.cur.pos])
	text := string(t.buf[textStart:textEnd])
	return commentResult{original: original, text: text, hadNewline: t.cur.originLine != startLine, foundEnding: foundEnding}, true
}

// scanFlatComment consumes a non-nesting "/* ... */" comment.
func (t *Tokenizer) scanFlatComment() (commentResult, bool) {
	if !t.hasPrefixBytes("/*") {
		return commentResult{}, false
	}
	startLine := t.cur.originLine
	start := t.cur.pos
	t.advanceN(2)
	textStart := t.cur.pos
	textEnd := -1
	for t.cur.pos < len(t.buf) {
		if t.hasPrefixBytes("*/") {
			textEnd = t.cur.pos
			t.advanceN(2)
			break
		}
		t.advanceByte()
	}
	foundEnding := textEnd >= 0
	if !foundEnding {
		textEnd = t.cur.pos
	}
	original := string(t.buf[start:t.cur.pos])
	text := string(t.buf[textStart:textEnd])
	return commentResult{original: original, text: text, hadNewline: t.cur.originLine != startLine, foundEnding: foundEnding}, true
}

// scanQuote extracts raw text between a matching pair of ' or " quote
// bytes. No escape-sequence processing happens here: unlike a string
// literal lexer, this tokenizer's job is only to find the quoted span;
// interpreting escapes is the out-of-scope grammar stage's job. An
// unterminated quote (hits newline/EOF before its closing delimiter)
// still yields a Quote token, plus a LiteralContainsInvalidSequence error.
func (t *Tokenizer) scanQuote() (quoteResult, bool) {
	b, have := t.peekByte(0)
	if !have || (b != '\'' && b != '"') {
		return quoteResult{}, false
	}
	quote := b
	start := t.cur.pos
	t.advanceByte()
	textStart := t.cur.pos
	textEnd := -1
	for {
		cb, have := t.peekByte(0)
		if !have {
			break
		}
		if cb == quote {
			textEnd = t.cur.pos
			t.advanceByte()
			break
		}
		if cb == '\n' || cb == '\r' || cb == '\v' {
			break
		}
		t.advanceByte()
	}
	foundEnding := textEnd >= 0
	if !foundEnding {
		textEnd = t.cur.pos
	}
	original := string(t.buf[start:t.cur.pos])
	text := string(t.buf[textStart:textEnd])
	return quoteResult{original: original, text: text, foundEnding: foundEnding}, true
}

func isLiteralByte(b byte) bool {
	return b >= 0x80 || b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

func isFirstLiteralByte(b byte) bool {
	if b >= '0' && b <= '9' {
		return false
	}
	return isLiteralByte(b)
}

// scanLiteral consumes a maximal run of identifier bytes: ASCII letters,
// digits (not first), underscore, or any non-ASCII (UTF-8 lead/continuation)
// byte.
func (t *Tokenizer) scanLiteral() (string, bool) {
	b, have := t.peekByte(0)
	if !have || !isFirstLiteralByte(b) {
		return "", false
	}
	start := t.cur.pos
	t.advanceByte()
	for {
		nb, have := t.peekByte(0)
		if !have || !isLiteralByte(nb) {
			break
		}
		t.advanceByte()
	}
	return string(t.buf[start:t.cur.pos]), true
}

// scanNumber consumes a digit-led or '.'-led (must be followed by a
// digit) numeric literal, tracking the handful of mid-scan states spec
// §4.4 calls out: a second '.' or second e/E truncates the token early
// (illegal=true, the offending byte is left for the next token); a
// trailing sign is legal only immediately after e/E; ending on e/E/sign
// with no following digit is also illegal.
func (t *Tokenizer) scanNumber() (text string, illegal, ok bool) {
	b, have := t.peekByte(0)
	if !have {
		return "", false, false
	}
	startsNumber := b >= '0' && b <= '9'
	if !startsNumber && b == '.' {
		nb, have2 := t.peekByte(1)
		startsNumber = have2 && nb >= '0' && nb <= '9'
	}
	if !startsNumber {
		return "", false, false
	}

	start := t.cur.pos
	foundDot, foundE, foundSign := false, false, false
	lastWasE := false
	lastWasLegal := false

loop:
	for {
		cb, have := t.peekByte(0)
		if !have || cb >= 0x80 {
			break
		}
		switch {
		case cb >= '0' && cb <= '9':
			lastWasE, lastWasLegal = false, true
			t.advanceByte()
		case cb == '.':
			if foundDot || foundE {
				illegal = true
				break loop
			}
			foundDot, lastWasLegal, lastWasE = true, true, false
			t.advanceByte()
		case cb == 'e' || cb == 'E':
			if foundE {
				illegal = true
				break loop
			}
			foundE, lastWasE, lastWasLegal = true, true, false
			t.advanceByte()
		case cb == '+' || cb == '-':
			if foundSign || !lastWasE {
				break loop
			}
			foundSign, lastWasLegal, lastWasE = true, false, false
			t.advanceByte()
		default:
			break loop
		}
	}
	if !lastWasLegal {
		illegal = true
	}
	return string(t.buf[start:t.cur.pos]), illegal, true
}

// scanOperator looks up the longest matching operator spelling at the
// cursor and advances past it. The column advances by the spelling's
// byte length directly (not the per-byte count algorithm), since no
// operator spelling contains a newline or other positional control byte.
func (t *Tokenizer) scanOperator() (operator.Code, string, bool) {
	code, ok := t.lut.Lookup(t.buf[t.cur.pos:])
	if !ok {
		return 0, "", false
	}
	sym := t.lut.Symbol(code)
	n := len(sym)
	t.cur.column += n
	t.cur.pos += n
	return code, sym, true
}

// scanIllegalRun consumes a maximal run of one repeated illegal byte, the
// fallback when nothing else recognizes the byte at the cursor.
func (t *Tokenizer) scanIllegalRun() (string, bool) {
	b, have := t.peekByte(0)
	if !have {
		return "", false
	}
	start := t.cur.pos
	for {
		nb, have := t.peekByte(0)
		if !have || nb != b {
			break
		}
		t.advanceByte()
	}
	return string(t.buf[start:t.cur.pos]), true
}
