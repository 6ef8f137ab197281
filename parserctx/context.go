// Package parserctx implements component F: the parser-time scope tree.
// A Context chains to its parent, carries the single-line/multi-line
// CompileState overrides a directive can install, and owns the per-scope
// keyword/operator alias tables and type-name table the (out-of-scope)
// grammar consults while parsing a scope's body.
//
// Grounded on spec §4.6. The reference implementation gives Context a
// weak self-reference so a child can safely hold a strong handle to its
// parent without creating a reference cycle; Go's garbage collector
// already collects cycles, so that indirection has no Go equivalent here
// and is simply a plain *Context parent pointer (see DESIGN.md).
package parserctx

import (
	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/token"
	"github.com/zaxc/corec/tokenizer"
)

// Kind labels what a Context scope was opened for. The full grammar that
// would open Function/Type/etc. scopes is out of this module's scope;
// the enumeration exists so FindParent has something concrete to search
// for once that grammar is wired in.
type Kind int

const (
	KindFile Kind = iota
	KindBlock
	KindFunction
	KindType
	KindModule
)

// StateHolder is the persistent "currently active" CompileState a root
// Context defers to. It is implemented by source.Source: a directive's
// state mutation at file scope must survive the root Context being
// discarded and recreated on every pass of the parser driver's main
// loop (spec §4.7's pseudocode creates a fresh root Context per
// iteration), so the authoritative pointer has to live on the source
// record, not on any one Context value.
type StateHolder interface {
	State() *compilestate.State
	SetState(*compilestate.State)
}

// Context is one scope in the parser-time scope tree.
type Context struct {
	parent *Context
	kind   Kind

	// Owner and Module are opaque identity back-references ("owning
	// parser/module pointers", spec §4.6) for a consumer to recover
	// which driver/source a Context belongs to. Context itself never
	// dereferences them, which is why they are untyped: tying this
	// package to parserdriver's or source's concrete types would create
	// an import cycle for no behavioral benefit.
	Owner  any
	Module any

	tok *tokenizer.Tokenizer

	// holder is non-nil only for a root Context (one per source); it is
	// the fallback State() resolves to once no override is in force
	// anywhere along the chain.
	holder StateHolder

	// multiLine is a scope-local permanent override: once set, it (not
	// holder) is what this Context and its descendants see until a
	// descendant installs its own. It never escapes when this Context
	// is discarded - only a root Context's writes through holder
	// persist across Context recreation.
	multiLine *compilestate.State

	// singleLine lives only until the next statement separator (spec's
	// "single-line state").
	singleLine *compilestate.State

	keywordAliases  map[string]*token.Token
	operatorAliases map[string]*token.Token
	typeNames       map[string]struct{}
}

// NewRoot builds the root Context the parser driver creates once per
// pass of its main loop, bound to tok and falling back to holder's
// currently active State.
func NewRoot(owner, module any, tok *tokenizer.Tokenizer, holder StateHolder) *Context {
	return &Context{
		kind:   KindFile,
		Owner:  owner,
		Module: module,
		tok:    tok,
		holder: holder,
	}
}

// ForkChild produces a child scope inheriting this Context's parser,
// module, tokenizer, and current single-line override (spec §4.6): the
// child starts under the same trailing-statement override as its parent,
// but can clear or replace it without affecting the parent's.
func (c *Context) ForkChild(kind Kind) *Context {
	return &Context{
		parent:     c,
		kind:       kind,
		Owner:      c.Owner,
		Module:     c.Module,
		tok:        c.tok,
		singleLine: c.singleLine,
	}
}

// Parent returns c's parent, or nil if c is a root Context.
func (c *Context) Parent() *Context { return c.parent }

// Kind reports the scope kind c was opened as.
func (c *Context) Kind() Kind { return c.kind }

// Tokenizer returns the tokenizer this Context's source is bound to.
func (c *Context) Tokenizer() *tokenizer.Tokenizer { return c.tok }

// FindParent walks the chain starting at c looking for the nearest
// enclosing scope (inclusive of c itself) of the given kind.
func (c *Context) FindParent(kind Kind) (*Context, bool) {
	for cur := c; cur != nil; cur = cur.parent {
		if cur.kind == kind {
			return cur, true
		}
	}
	return nil, false
}

// State resolves the effective CompileState: single-line override, then
// multi-line override, then (root only) the owning source's persistent
// state, then the parent's State. It never returns nil while the scope
// chain is rooted properly.
func (c *Context) State() *compilestate.State {
	switch {
	case c.singleLine != nil:
		return c.singleLine
	case c.multiLine != nil:
		return c.multiLine
	case c.holder != nil:
		return c.holder.State()
	case c.parent != nil:
		return c.parent.State()
	default:
		return nil
	}
}

// SetPermanentState installs s as the new state subsequent tokens in
// this scope observe, per the directive state-mutation discipline of
// spec §4.7: existing tokens keep whatever State they already captured.
// On a root Context this writes through to the owning source so the
// change survives this Context being discarded; on a forked Context it
// is scoped to this Context's own subtree only.
func (c *Context) SetPermanentState(s *compilestate.State) {
	if c.holder != nil {
		c.holder.SetState(s)
		return
	}
	c.multiLine = s
}

// SetSingleLineState installs a trailing-statement-only override.
func (c *Context) SetSingleLineState(s *compilestate.State) {
	c.singleLine = s
}

// HasSingleLineState reports whether a single-line override is active.
func (c *Context) HasSingleLineState() bool {
	return c.singleLine != nil
}

// ClearSingleLineState drops the trailing-statement override, called by
// the parser driver at the first Separator token of a statement.
func (c *Context) ClearSingleLineState() {
	c.singleLine = nil
}
