package parserdriver

import (
	"path/filepath"

	"github.com/zaxc/corec/diag"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/source"
)

// requiredOption resolves a directive's `required=yes|no|warn` option,
// defaulting to RequiredYes when absent - a missing source/asset is an
// error unless told otherwise.
func requiredOption(dir Directive) source.Required {
	opt, ok := dir.Option("required")
	if !ok || !opt.HasValue || opt.Value.Kind != ValueIdent {
		return source.RequiredYes
	}
	switch opt.Value.Text {
	case "no":
		return source.RequiredNo
	case "warn":
		return source.RequiredWarn
	default:
		return source.RequiredYes
	}
}

func generatedOption(dir Directive) bool {
	opt, ok := dir.Option("generated")
	return ok && opt.HasValue && opt.Value.Kind == ValueIdent && opt.Value.Text == "yes"
}

// resolveCandidates expands pattern's wild-cards against currentFile's
// directory. A pattern matching nothing still yields one candidate built
// from the literal pattern text, so the existing missing-file diagnostic
// path (triggered when the host later fails to read/stat it) fires with
// the right severity instead of this directive silently doing nothing.
func (d *Driver) resolveCandidates(currentFile, pattern string) []source.WildcardMatch {
	matches, err := d.mgr.ResolveWildcard(currentFile, pattern)
	if err != nil || len(matches) == 0 {
		return []source.WildcardMatch{{
			Path:     pattern,
			FullPath: filepath.Join(filepath.Dir(currentFile), pattern),
		}}
	}
	return matches
}

// handleSource implements the `source` directive: spec §4.7's include
// handling (H). A non-literal file-name expression is deferred - left
// unresolved, matching original_source/'s own TODO on this path (see
// DESIGN.md) - since resolving it needs the out-of-scope grammar/value
// evaluator.
func (d *Driver) handleSource(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "source"})
		return
	}
	if dir.Value.Kind != ValueString {
		return // deferred or unsupported value kind; TODO resolve against runtime values
	}

	currentFile := ctx.Tokenizer().FilePath()
	required := requiredOption(dir)
	generated := generatedOption(dir)
	st := ctx.State()

	for _, m := range d.resolveCandidates(currentFile, dir.Value.Text) {
		if !d.mgr.Dedup(m.FullPath) {
			continue
		}
		d.mgr.EnqueueSource(source.PendingSource{
			FilePath:         m.Path,
			FullPath:         m.FullPath,
			Required:         required,
			Generated:        generated,
			InheritedTabStop: st.TabStopWidth,
			Triggering:       dir.Token,
			InheritedState:   st,
		})
	}
}

// handleAsset implements the `asset` directive: a literal path is
// resolved, wild-card captures expand any `rename` template, and the
// resulting copy job is queued for Manager.ProcessPendingAssets.
func (d *Driver) handleAsset(ctx *parserctx.Context, dir Directive) {
	if !dir.HasValue {
		d.reportWarning(ctx, diag.DirectiveNotUnderstood, dir.Loc, map[string]string{"name": "asset"})
		return
	}
	if dir.Value.Kind != ValueString {
		return // deferred; see handleSource's TODO note
	}

	currentFile := ctx.Tokenizer().FilePath()
	required := requiredOption(dir)
	generated := generatedOption(dir)
	st := ctx.State()

	var renameTemplate string
	if opt, ok := dir.Option("rename"); ok && opt.HasValue && opt.Value.Kind == ValueString {
		renameTemplate = opt.Value.Text
	}

	for _, m := range d.resolveCandidates(currentFile, dir.Value.Text) {
		if !d.mgr.Dedup(m.FullPath) {
			continue
		}
		rename := ""
		if renameTemplate != "" {
			rename = source.ExpandRenameTemplate(renameTemplate, m.Captures)
		}
		d.mgr.EnqueueAsset(source.PendingAsset{
			FilePath:         m.Path,
			FullPath:         m.FullPath,
			RenamePath:       rename,
			Required:         required,
			Generated:        generated,
			InheritedTabStop: st.TabStopWidth,
			Triggering:       dir.Token,
			InheritedState:   st,
		})
	}
}
