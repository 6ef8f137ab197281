// Package parserdriver implements component G: the directive-driven
// parser driver that pumps pending sources through component H, wraps
// each one's tokenizer in a root parserctx.Context, recognizes
// "[[ ... ]]" directives, mutates CompileState/fault-registry state in
// response, and routes every other token to the (out-of-scope) grammar
// stage via Driver.Grammar.
//
// Grounded on spec §4.7/§4.8 and shaped, at the orchestration level,
// after protocompile's Compiler.Compile driving parser+linker+options
// over a Resolver (_examples/bufbuild-protocompile/compiler.go) - the
// same "drain a queue of files, hand each to the lexer, surface
// diagnostics through a Handler" posture, adapted from protocompile's
// goroutine-per-file concurrency to this module's single-threaded
// cooperative model (spec §5).
package parserdriver

import (
	"github.com/zaxc/corec/fault"
	"github.com/zaxc/corec/operator"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/reporter"
	"github.com/zaxc/corec/source"
	"github.com/zaxc/corec/token"
)

// GrammarFunc receives every token that isn't a Separator or part of a
// "[[ ... ]]" directive - the residual stream the full (out-of-scope)
// grammar would consume.
type GrammarFunc func(ctx *parserctx.Context, tok *token.Token)

// Driver is component G.
type Driver struct {
	lut     *operator.Lut
	handler *reporter.Handler
	mgr     *source.Manager

	// active is the stack of sources currently being parsed; active[0]
	// is "the current source" the main loop pseudocode refers to.
	// Included sources are pushed to the front (spec §4.7: "parsed
	// before the remainder of the including file").
	active    []*source.Source
	processed []*source.Source

	nextLockerID uint64
	exportStack  []bool

	// Grammar is invoked for every non-directive, non-Separator token.
	// A nil Grammar simply discards such tokens, which is enough to
	// exercise the directive machinery end to end without the
	// out-of-scope grammar stage wired in.
	Grammar GrammarFunc
}

// New builds a Driver over host, minting tokenizers off lut and
// reporting diagnostics through cb.
func New(host source.Host, lut *operator.Lut, cb reporter.Callback) *Driver {
	handler := reporter.NewHandler(cb)
	return &Driver{
		lut:     lut,
		handler: handler,
		mgr:     source.NewManager(host, lut, handler),
	}
}

// Handler exposes the diagnostic handler, e.g. for a cmd/corec driver
// wanting Handler.Result() once Run returns.
func (d *Driver) Handler() *reporter.Handler { return d.handler }

// nextID mints a fresh, non-zero fault.LockerID for one directive
// occurrence (spec supplement: "Compiler_Directives.cpp's
// per-directive-id uniqueness" - every directive invocation gets its own
// id, even ones that never lock anything, so lock/unlock pairs issued by
// different occurrences of the same directive kind are never confused).
func (d *Driver) nextID() fault.LockerID {
	d.nextLockerID++
	return fault.LockerID(d.nextLockerID)
}

// AddCommandLineSource enqueues a source named directly on the command
// line: required, not generated, with no inherited state (it starts a
// fresh root CompileState via source.Manager.PrimeSources).
func (d *Driver) AddCommandLineSource(path string) {
	if !d.mgr.Dedup(path) {
		return
	}
	d.mgr.EnqueueSource(source.PendingSource{
		FilePath:        path,
		FullPath:        path,
		Required:        source.RequiredYes,
		FromCommandLine: true,
	})
}

// Run drains every pending/active source to completion, per spec §4.7's
// main-loop pseudocode, returning the handler's aggregate result once
// done (nil unless an error-or-worse diagnostic was reported).
func (d *Driver) Run() error {
	for !d.handler.ShouldAbort() {
		d.primeSources()
		d.mgr.ProcessPendingAssets()

		if len(d.active) == 0 {
			break
		}
		cur := d.active[0]
		if cur.Tok.Empty() {
			d.active = d.active[1:]
			d.processed = append(d.processed, cur)
			continue
		}

		ctx := parserctx.NewRoot(d, cur, cur.Tok, cur)
		d.process(ctx)
	}
	return d.handler.Result()
}

// primeSources turns every pending PendingSource into an open *Source,
// front-inserting each into the active list in the order it was
// enqueued - which, since includes are enqueued before the including
// directive's statement is done being processed, keeps the included
// file ahead of the includer's remainder (spec §4.7, §4.8).
func (d *Driver) primeSources() {
	opened := d.mgr.PrimeSources()
	if len(opened) == 0 {
		return
	}
	d.active = append(opened, d.active...)
}

// Processed returns every canonical full path seen so far (sources and
// assets alike), in deterministic ascending order.
func (d *Driver) Processed() []string { return d.mgr.Processed() }
