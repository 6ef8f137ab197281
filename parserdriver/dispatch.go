package parserdriver

import (
	"strings"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/fault"
	"github.com/zaxc/corec/parserctx"
)

// dispatch routes a fully-parsed directive to its handler, per spec
// §4.7's directive table.
func (d *Driver) dispatch(ctx *parserctx.Context, dir Directive) {
	if strings.HasPrefix(dir.Name, "x-") {
		return
	}

	id := d.nextID()

	switch dir.Name {
	case "panic":
		st := compilestate.Fork(ctx.State())
		dispatchFault(d, ctx, dir, id, st.Panics, diag.LookupPanicCode, diag.TotalPanicCodes(), "panic")
		ctx.SetPermanentState(st)
	case "warning":
		st := compilestate.Fork(ctx.State())
		dispatchFault(d, ctx, dir, id, st.Warnings, diag.LookupWarningCode, diag.TotalWarningCodes(), "warning")
		ctx.SetPermanentState(st)
	case "error":
		d.handleErrorDirective(ctx, dir)
	case "tab-stop":
		d.handleTabStop(ctx, dir)
	case "file":
		d.handleFile(ctx, dir)
	case "line":
		d.handleLine(ctx, dir)
	case "deprecate":
		d.handleDeprecate(ctx, dir, id)
	case "export":
		d.handleExport(ctx, dir)
	case "variables", "types", "functions":
		d.handleDefaults(ctx, dir)
	case "source":
		d.handleSource(ctx, dir)
	case "asset":
		d.handleAsset(ctx, dir)
	default:
		d.reportWarning(ctx, diag.UnknownDirective, dir.Loc, map[string]string{"name": dir.Name})
	}
}

// applyFaultAction performs one fault-registry action across either the
// category list named by a directive's options or, when none was given,
// every category - spec §4.1's operations, mapped onto the directive
// vocabulary `yes`/`no`/`always`/`never`/`error`/`default`/`lock`/
// `unlock`/`push`/`pop` (see DESIGN.md for how the ten-word directive
// vocabulary collapses onto the registry's eight primitive operations).
func applyFaultAction[C ~int](reg *fault.Registry[C], lookup func(string) (C, bool), total int, action string, categories []string, id fault.LockerID) (recognized, popFailed bool, unknown []string) {
	var codes []C
	if len(categories) == 0 {
		for i := 0; i < total; i++ {
			codes = append(codes, C(i))
		}
	} else {
		for _, name := range categories {
			if c, ok := lookup(name); ok {
				codes = append(codes, c)
			} else {
				unknown = append(unknown, name)
			}
		}
	}

	recognized = true
	switch action {
	case "yes", "always":
		for _, c := range codes {
			reg.Enable(c)
		}
	case "no", "never":
		for _, c := range codes {
			reg.Disable(c)
		}
	case "error":
		for _, c := range codes {
			reg.EnableForceError(c)
		}
	case "default":
		for _, c := range codes {
			reg.Default(c, id)
		}
	case "lock":
		if len(categories) == 0 {
			reg.LockAll(id)
		} else {
			for _, c := range codes {
				reg.Lock(c, id)
			}
		}
	case "unlock":
		if len(categories) == 0 {
			reg.UnlockAll(id)
		} else {
			for _, c := range codes {
				reg.Unlock(c, id)
			}
		}
	case "push":
		reg.Push()
	case "pop":
		popFailed = !reg.Pop()
	default:
		recognized = false
	}
	return
}

func dispatchFault[C ~int](d *Driver, ctx *parserctx.Context, dir Directive, id fault.LockerID, reg *fault.Registry[C], lookup func(string) (C, bool), total int, directiveName string) {
	if !dir.HasValue || dir.Value.Kind != ValueIdent {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": directiveName})
		return
	}
	categories := dir.Categories()
	recognized, popFailed, unknown := applyFaultAction(reg, lookup, total, dir.Value.Text, categories, id)
	if !recognized {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Value.Loc, map[string]string{"name": dir.Value.Text})
		return
	}
	if popFailed {
		d.reportWarning(ctx, diag.UnmatchedPush, dir.Loc, map[string]string{"category": directiveName})
	}
	for _, name := range unknown {
		d.reportWarning(ctx, diag.UnknownDirectiveArgument, dir.Loc, map[string]string{"name": name, "directive": directiveName})
	}
}
