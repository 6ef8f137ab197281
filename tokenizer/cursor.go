package tokenizer

// cursor tracks the tokenizer's position in the byte buffer: the raw
// byte offset, the reported (origin) and true (actual) line, the shared
// column (origin and actual columns never diverge - only file/line do,
// via [[file=]]/[[line=]] remapping), the pending UTF-8 continuation
// byte count, and the origin-line step applied per source newline
// (lineSkip, installed by [[line=increment=]]).
type cursor struct {
	pos int

	originLine   int
	actualLine   int
	column       int
	continuation int
	lineSkip     int
}

// isControlByte mirrors the C locale's iscntrl: true for bytes below
//0x20 and for DEL (0x7f).
func isControlByte(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// isWhitespaceByte mirrors the original tokenizer's isspace-or-iscntrl
// test: every ASCII byte at or below ' ' plus DEL counts as
// "whitespace or control" for the whitespace scanner, even bytes (like
// NUL) that count() itself treats as having no positional effect.
func isWhitespaceByte(b byte) bool {
	return b < 0x80 && (b <= ' ' || b == 0x7f)
}

// continuationsFor reports how many more UTF-8 continuation bytes follow
// a leading byte with the high bit set, by its prefix: 110xxxxx -> 1,
// 1110xxxx -> 2, 11110xxx -> 3. A byte that doesn't match any of those
// prefixes (a bare/invalid continuation byte appearing where a leading
// byte was expected) contributes zero further continuations.
func continuationsFor(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 1
	case b&0xF0 == 0xE0:
		return 2
	case b&0xF8 == 0xF0:
		return 3
	default:
		return 0
	}
}

// count advances c by one byte b, per spec §4.4's per-byte cursor
// algorithm. tabStopWidth is read fresh from the active CompileState by
// the caller (Tokenizer.currentTabWidth), since tab-stop width is policy
// that can change at a directive boundary.
func (c *cursor) count(b byte, tabStopWidth int) {
	switch {
	case b&0x80 != 0:
		if c.continuation > 0 {
			c.continuation--
			return
		}
		c.continuation = continuationsFor(b)
		c.column++
	case !isControlByte(b):
		c.column++
	default:
		switch b {
		case '\r':
			c.column = 1
		case '\n', '\f':
			c.originLine += c.lineSkip
			c.column = 1
			c.actualLine++
		case '\v':
			c.originLine += c.lineSkip
			c.actualLine++
		case '\t':
			if tabStopWidth <= 0 {
				tabStopWidth = 8
			}
			c.column = c.column + tabStopWidth - ((c.column - 1) % tabStopWidth)
		case '\b':
			if c.column > 1 {
				c.column--
			}
		}
		// any other control byte: no effect, matching spec's "other
		// control: no effect".
	}
}
