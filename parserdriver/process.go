package parserdriver

import (
	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/token"
	"github.com/zaxc/corec/tokenizer"
)

// process drains ctx's tokenizer until it runs dry, new pending work
// shows up (so Run's outer loop can prime included sources before
// continuing), or abort is requested - spec §4.7's process() pseudocode.
func (d *Driver) process(ctx *parserctx.Context) {
	tz := ctx.Tokenizer()
	for {
		if d.handler.ShouldAbort() || d.mgr.HasPending() {
			return
		}
		tok, ok := tz.PeekFront()
		if !ok {
			return
		}

		if tok.Kind == token.Separator {
			d.consumeSeparatorRun(ctx)
			continue
		}

		if isOperatorText(tok, "[[") {
			d.parseDirective(ctx)
			continue
		}

		tz.PopFront()
		if d.Grammar != nil {
			d.Grammar(ctx, tok)
		}
	}
}

// consumeSeparatorRun pops a maximal run of Separator tokens, warning on
// each forced (literal ';') separator in a run of two or more - one
// separator, usually the surrounding newline, would have sufficed (spec
// §4.7 step 1, §8 scenario S2).
func (d *Driver) consumeSeparatorRun(ctx *parserctx.Context) {
	tz := ctx.Tokenizer()
	var forced []token.Location
	n := 0
	for {
		tok, ok := tz.PeekFront()
		if !ok || tok.Kind != token.Separator {
			break
		}
		tz.PopFront()
		n++
		if tok.ForcedSeparator {
			forced = append(forced, tok.Origin)
		}
	}
	ctx.ClearSingleLineState()
	if n <= 1 {
		return
	}
	for _, loc := range forced {
		d.reportWarning(ctx, diag.StatementSeparatorOperatorRedundant, loc, nil)
	}
}

func peekTok(tz *tokenizer.Tokenizer) *token.Token {
	tok, _ := tz.PeekFront()
	return tok
}

// parseDirective parses one "[[ IDENT (= VALUE)? (, IDENT (= VALUE)?)* ]]"
// form starting at the front token (already confirmed to be "[[") and
// dispatches it.
func (d *Driver) parseDirective(ctx *parserctx.Context) {
	tz := ctx.Tokenizer()
	open, _ := tz.PopFront()

	name, nameLoc, ok := readHyphenatedIdent(tz)
	if !ok {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, open.Origin, map[string]string{"name": ""})
		skipToCommaOrClose(tz)
		consumeIfClose(tz)
		return
	}

	dir := Directive{Name: name, Loc: open.Origin, Token: open}
	if isOperatorText(peekTok(tz), "=") {
		tz.PopFront()
		dir.HasValue = true
		dir.Value = readValue(tz)
	}

	seen := map[string]bool{name: true}
	for {
		if consumeIfClose(tz) {
			dir.OK = true
			break
		}
		if !consumeIfComma(tz) {
			if tok, ok := tz.PeekFront(); ok {
				d.reportError(ctx, diag.TokenExpected, tok.Origin, map[string]string{"expected": ", or ]]"})
			} else {
				d.reportError(ctx, diag.TokenExpected, nameLoc, map[string]string{"expected": "]]"})
			}
			skipToCommaOrClose(tz)
			if consumeIfClose(tz) {
				dir.OK = true
			}
			break
		}

		optName, optLoc, ok := readHyphenatedIdent(tz)
		if !ok {
			if tok, ok := tz.PeekFront(); ok {
				d.reportError(ctx, diag.TokenExpected, tok.Origin, map[string]string{"expected": "option name"})
			}
			skipToCommaOrClose(tz)
			continue
		}
		opt := Option{Name: optName, Loc: optLoc}
		if isOperatorText(peekTok(tz), "=") {
			tz.PopFront()
			opt.HasValue = true
			opt.Value = readValue(tz)
		}
		if seen[optName] {
			d.reportWarning(ctx, diag.DirectiveNotUnderstood, optLoc, map[string]string{"name": optName})
		} else {
			seen[optName] = true
			dir.Options = append(dir.Options, opt)
		}
	}

	d.dispatch(ctx, dir)
}

func (d *Driver) reportError(ctx *parserctx.Context, code diag.ErrorCode, loc token.Location, args map[string]string) {
	st := ctx.State()
	if st != nil && !st.Errors.At(code).Enabled {
		return
	}
	d.report(reporter.SeverityError, code.String(), diag.Format(code.Template(), args), loc, st)
}

// reportErrorForced reports code unconditionally, bypassing the Errors
// registry's enabled check - the "`error`" directive's unconditional
// error-raise (spec §4.7).
func (d *Driver) reportErrorForced(ctx *parserctx.Context, code diag.ErrorCode, loc token.Location, args map[string]string) {
	d.report(reporter.SeverityError, code.String(), diag.Format(code.Template(), args), loc, ctx.State())
}

func (d *Driver) reportWarning(ctx *parserctx.Context, code diag.WarningCode, loc token.Location, args map[string]string) {
	st := ctx.State()
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
	d.report(sev, code.String(), diag.Format(code.Template(), args), loc, st)
}

func (d *Driver) report(sev reporter.Severity, name, msg string, loc token.Location, st *compilestate.State) {
	d.handler.Report(reporter.Diagnostic{
		Severity: sev,
		Name:     name,
		Message:  msg,
		Location: loc,
		State:    st,
	})
}
