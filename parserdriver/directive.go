package parserdriver

import (
	"strings"

	"github.com/zaxc/corec/token"
	"github.com/zaxc/corec/tokenizer"
)

// ValueKind classifies a directive value or option value, per spec §4.7's
// "VALUE is a literal, a number, a run of adjacent quote tokens
// concatenated into one string, or an arbitrary sub-sequence extracted
// for later resolution".
type ValueKind int

const (
	ValueNone ValueKind = iota
	ValueIdent
	ValueNumber
	ValueString
	ValueDeferred
)

// Value is one parsed directive/option value.
type Value struct {
	Kind   ValueKind
	Text   string // rendered text for Ident/Number/String
	Tokens []*token.Token // raw captured tokens for Deferred
	Loc    token.Location
}

// Option is one `, IDENT (= VALUE)?` entry following a directive's own
// name=value pair.
type Option struct {
	Name     string
	HasValue bool
	Value    Value
	Loc      token.Location
}

// Directive is one fully-parsed `[[ ... ]]` form. The directive's own
// "IDENT (= VALUE)?" doubles as both the dispatch name and (when present)
// its primary value - e.g. `[[tab-stop=4]]` has Name "tab-stop" and a
// Value of 4, not a separate option named "tab-stop".
type Directive struct {
	Name     string
	HasValue bool
	Value    Value
	Options  []Option
	Loc      token.Location
	Token    *token.Token // the opening "[[", for diagnostics that need a *token.Token rather than a bare Location
	OK       bool         // false if the closing "]]" was never found
}

// HasOption reports whether name was given as a bare (no "=") option.
func (d Directive) HasOption(name string) bool {
	for _, o := range d.Options {
		if o.Name == name && !o.HasValue {
			return true
		}
	}
	return false
}

// Option looks up a valued option by name.
func (d Directive) Option(name string) (Option, bool) {
	for _, o := range d.Options {
		if o.Name == name {
			return o, true
		}
	}
	return Option{}, false
}

// Categories returns every bare (no "=") option name - the directive's
// optional category list for panic/warning dispatch.
func (d Directive) Categories() []string {
	var out []string
	for _, o := range d.Options {
		if !o.HasValue {
			out = append(out, o.Name)
		}
	}
	return out
}

func isOperatorText(tok *token.Token, text string) bool {
	return tok != nil && tok.Kind == token.Operator && tok.Text == text
}

// readHyphenatedIdent reconstructs a directive/option name or bare-ident
// value from the token stream. The lexer has no notion of a hyphenated
// identifier - "tab-stop" and "constant-overflow" arrive as a Literal, a
// "-" Operator, and another Literal - so this stitches consecutive
// Literal/"-" pairs back into one dotted-free name.
func readHyphenatedIdent(tz *tokenizer.Tokenizer) (string, token.Location, bool) {
	first, ok := tz.PeekFront()
	if !ok || first.Kind != token.Literal {
		return "", token.Location{}, false
	}
	tz.PopFront()
	var b strings.Builder
	b.WriteString(first.Text)
	loc := first.Origin
	for {
		dash, ok := tz.PeekFront()
		if !ok || !isOperatorText(dash, "-") {
			break
		}
		after, ok2 := tz.At(1)
		if !ok2 || after.Kind != token.Literal {
			break
		}
		tz.PopFront()
		tz.PopFront()
		b.WriteByte('-')
		b.WriteString(after.Text)
	}
	return b.String(), loc, true
}

// readValue parses one VALUE per spec §4.7.
func readValue(tz *tokenizer.Tokenizer) Value {
	tok, ok := tz.PeekFront()
	if !ok {
		return Value{}
	}
	switch {
	case tok.Kind == token.Number:
		tz.PopFront()
		return Value{Kind: ValueNumber, Text: tok.Text, Loc: tok.Origin}
	case tok.Kind == token.Quote:
		loc := tok.Origin
		var b strings.Builder
		for {
			q, ok := tz.PeekFront()
			if !ok || q.Kind != token.Quote {
				break
			}
			tz.PopFront()
			b.WriteString(q.Text)
		}
		return Value{Kind: ValueString, Text: b.String(), Loc: loc}
	case tok.Kind == token.Literal:
		name, loc, _ := readHyphenatedIdent(tz)
		return Value{Kind: ValueIdent, Text: name, Loc: loc}
	default:
		return captureDeferred(tz)
	}
}

// captureDeferred collects tokens up to (not including) the next "," or
// "]]", for a value the (out-of-scope) grammar must resolve later - spec
// §4.7's "source with unresolved (non-literal) file name is deferred".
func captureDeferred(tz *tokenizer.Tokenizer) Value {
	tok, ok := tz.PeekFront()
	if !ok {
		return Value{}
	}
	loc := tok.Origin
	var toks []*token.Token
	for {
		t, ok := tz.PeekFront()
		if !ok || isOperatorText(t, ",") || isOperatorText(t, "]]") {
			break
		}
		tz.PopFront()
		toks = append(toks, t)
	}
	return Value{Kind: ValueDeferred, Tokens: toks, Loc: loc}
}

// skipToCommaOrClose discards tokens until the next "," or "]]" (left
// unconsumed), the recovery boundary spec §4.7 names for a malformed
// directive.
func skipToCommaOrClose(tz *tokenizer.Tokenizer) {
	for {
		tok, ok := tz.PeekFront()
		if !ok || isOperatorText(tok, ",") || isOperatorText(tok, "]]") {
			return
		}
		tz.PopFront()
	}
}

func consumeIfComma(tz *tokenizer.Tokenizer) bool {
	tok, ok := tz.PeekFront()
	if ok && isOperatorText(tok, ",") {
		tz.PopFront()
		return true
	}
	return false
}

func consumeIfClose(tz *tokenizer.Tokenizer) bool {
	tok, ok := tz.PeekFront()
	if ok && isOperatorText(tok, "]]") {
		tz.PopFront()
		return true
	}
	return false
}
