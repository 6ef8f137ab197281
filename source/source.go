package source

import (
	"sync"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/tokenizer"
)

// Source is one primed file: its true path, the lazy Tokenizer bound to
// its bytes, and the persistently mutable "currently active" CompileState
// a directive at file scope mutates (spec §4.8). It implements
// parserctx.StateHolder so a root Context created fresh on every pass of
// the parser driver's main loop still resolves to the same state a
// previous pass's directive installed.
type Source struct {
	FilePath        string
	FullPath        string
	Tok             *tokenizer.Tokenizer
	FromCommandLine bool

	mu    sync.Mutex
	state *compilestate.State
}

// NewSource wraps tok with its persistent state, seeded with initial.
func NewSource(filePath, fullPath string, tok *tokenizer.Tokenizer, initial *compilestate.State) *Source {
	return &Source{FilePath: filePath, FullPath: fullPath, Tok: tok, state: initial}
}

// State implements parserctx.StateHolder.
func (s *Source) State() *compilestate.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetState implements parserctx.StateHolder.
func (s *Source) SetState(state *compilestate.State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

var _ parserctx.StateHolder = (*Source)(nil)
