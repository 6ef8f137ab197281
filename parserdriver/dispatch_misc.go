package parserdriver

import (
	"strconv"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/fault"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/semver"
)

func (d *Driver) handleTabStop(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue || dir.Value.Kind != ValueNumber {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "tab-stop"})
		return
	}
	n, err := strconv.Atoi(dir.Value.Text)
	if err != nil || n <= 0 {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": "tab-stop"})
		return
	}
	st := compilestate.Fork(ctx.State())
	st.TabStopWidth = n
	ctx.SetPermanentState(st)
}

func (d *Driver) handleFile(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue || dir.Value.Kind != ValueString {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "file"})
		return
	}
	ctx.Tokenizer().SetOriginFile(dir.Value.Text)
}

func (d *Driver) handleLine(ctx *parserctx.Context, dir Directive) {
	if !ctx.Tokenizer().OriginFileWasSet() {
		d.reportError(ctx, diag.LineDirectiveWithoutFile, dir.Loc, nil)
	}
	if !dir.HasValue || dir.Value.Kind != ValueNumber {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "line"})
		return
	}
	n, err := strconv.Atoi(dir.Value.Text)
	if err != nil {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": "line"})
		return
	}
	incr := 1
	if opt, ok := dir.Option("increment"); ok && opt.HasValue && opt.Value.Kind == ValueNumber {
		if v, err := strconv.Atoi(opt.Value.Text); err == nil {
			incr = v
		}
	}
	ctx.Tokenizer().SetOriginLine(n, incr)
}

func (d *Driver) handleErrorDirective(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue {
		d.reportErrorForced(ctx, diag.ErrorDirective, dir.Loc, map[string]string{"message": ""})
		return
	}
	switch dir.Value.Kind {
	case ValueString:
		d.reportErrorForced(ctx, diag.ErrorDirective, dir.Loc, map[string]string{"message": dir.Value.Text})
	case ValueIdent:
		if code, ok := diag.LookupErrorCode(dir.Value.Text); ok {
			d.reportErrorForced(ctx, code, dir.Loc, nil)
			return
		}
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": dir.Value.Text})
	default:
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "error"})
	}
}

// handleDeprecate installs or clears the active deprecate window, per
// spec §4.7/§3: `yes`/`always` installs one (defaulting to local scope,
// force-error only when the bare `error` option is present), `no`/
// `never` clears it. `min`/`max` are parsed as semver.Version strings -
// see DESIGN.md for why those options are specified as quoted strings
// rather than bare numeric literals.
func (d *Driver) handleDeprecate(ctx *parserctx.Context, dir Directive, id fault.LockerID) {
	if !dir.HasValue || dir.Value.Kind != ValueIdent {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "deprecate"})
		return
	}
	st := compilestate.Fork(ctx.State())
	switch dir.Value.Text {
	case "no", "never":
		st.Deprecate = nil
		ctx.SetPermanentState(st)
	case "yes", "always":
		win := &compilestate.Deprecate{Context: compilestate.DeprecateLocal, ForceError: dir.HasOption("error")}
		if opt, ok := dir.Option("context"); ok && opt.HasValue {
			switch opt.Value.Text {
			case "import":
				win.Context = compilestate.DeprecateImport
			case "all":
				win.Context = compilestate.DeprecateAll
			case "local":
				win.Context = compilestate.DeprecateLocal
			default:
				d.reportWarning(ctx, diag.UnknownDirectiveArgument, opt.Loc, map[string]string{"name": opt.Value.Text, "directive": "deprecate"})
			}
		}
		if opt, ok := dir.Option("min"); ok && opt.HasValue {
			if v, err := semver.Parse(opt.Value.Text); err == nil {
				win.Min = &v
			} else {
				d.reportError(ctx, diag.DeprecateDirective, opt.Loc, map[string]string{"text": opt.Value.Text})
			}
		}
		if opt, ok := dir.Option("max"); ok && opt.HasValue {
			if v, err := semver.Parse(opt.Value.Text); err == nil {
				win.Max = &v
			} else {
				d.reportError(ctx, diag.DeprecateDirective, opt.Loc, map[string]string{"text": opt.Value.Text})
			}
		}
		st.Deprecate = win
		ctx.SetPermanentState(st)
	default:
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": dir.Value.Text})
	}
}

// handleExport maintains st.Export and the driver-level export stack
// `push`/`pop` draw from - compilestate.State.Export has no registry-style
// stack of its own (see DESIGN.md).
func (d *Driver) handleExport(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue || dir.Value.Kind != ValueIdent {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "export"})
		return
	}
	st := compilestate.Fork(ctx.State())
	switch dir.Value.Text {
	case "yes", "always":
		st.Export = true
	case "no", "never":
		st.Export = false
	case "push":
		d.exportStack = append(d.exportStack, st.Export)
	case "pop":
		if len(d.exportStack) == 0 {
			d.reportWarning(ctx, diag.UnmatchedPush, dir.Loc, map[string]string{"category": "export"})
		} else {
			st.Export = d.exportStack[len(d.exportStack)-1]
			d.exportStack = d.exportStack[:len(d.exportStack)-1]
		}
	default:
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": dir.Value.Text})
		return
	}
	ctx.SetPermanentState(st)
}

// handleDefaults applies `[[variables=...]]`, `[[types=...]]`, and
// `[[functions=...]]` against the enumerated vocabulary of spec §3.
func (d *Driver) handleDefaults(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue || dir.Value.Kind != ValueIdent {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": dir.Name})
		return
	}
	st := compilestate.Fork(ctx.State())
	ok := true
	switch dir.Name {
	case "variables":
		switch dir.Value.Text {
		case "varies":
			st.VariableDefault.Varies = true
		case "final":
			st.VariableDefault.Varies = false
		case "mutable":
			st.VariableDefault.Mutable = true
		case "immutable":
			st.VariableDefault.Mutable = false
		default:
			ok = false
		}
	case "types":
		switch dir.Value.Text {
		case "mutable":
			st.TypeDefault.Mutable = true
		case "immutable":
			st.TypeDefault.Mutable = false
		case "constant":
			st.TypeDefault.Constant = true
		case "inconstant":
			st.TypeDefault.Constant = false
		default:
			ok = false
		}
	case "functions":
		switch dir.Value.Text {
		case "constant":
			st.FunctionDefault.Constant = true
		case "inconstant":
			st.FunctionDefault.Constant = false
		default:
			ok = false
		}
	}
	if !ok {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": dir.Value.Text})
		return
	}
	ctx.SetPermanentState(st)
}
