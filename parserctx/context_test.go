package parserctx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/parserctx"
	"github.com/zaxc/corec/token"
)

type fakeHolder struct{ s *compilestate.State }

func (f *fakeHolder) State() *compilestate.State      { return f.s }
func (f *fakeHolder) SetState(s *compilestate.State)  { f.s = s }

func TestRootStateFallsBackToHolder(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	assert.Same(t, h.s, root.State())

	next := compilestate.Fork(h.s)
	root.SetPermanentState(next)
	assert.Same(t, next, h.State(), "permanent state change on a root Context must write through to the holder")
}

func TestForkedChildStateNeverLeaksToParent(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	child := root.ForkChild(parserctx.KindBlock)

	childState := compilestate.Fork(h.s)
	child.SetPermanentState(childState)

	assert.Same(t, childState, child.State())
	assert.Same(t, h.s, root.State(), "a forked child's permanent state must not escape to its parent")
}

func TestSingleLineStateClearedIndependently(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	single := compilestate.Fork(h.s)
	root.SetSingleLineState(single)
	require.True(t, root.HasSingleLineState())
	assert.Same(t, single, root.State())

	root.ClearSingleLineState()
	assert.False(t, root.HasSingleLineState())
	assert.Same(t, h.s, root.State())
}

func TestForkChildInheritsSingleLineOverrideValue(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	single := compilestate.Fork(h.s)
	root.SetSingleLineState(single)

	child := root.ForkChild(parserctx.KindBlock)
	assert.Same(t, single, child.State())

	child.ClearSingleLineState()
	assert.Same(t, single, root.State(), "clearing a child's inherited single-line override must not affect the parent's")
}

func TestAliasLookupMemoizesOnTheTokenNotThePerCallSearch(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	replacement := &token.Token{Kind: token.Keyword}
	root.DefineKeywordAlias("MyKeyword", replacement)

	lit := &token.Token{Kind: token.Literal, Text: "MyKeyword"}
	got, ok := root.AliasLookup(lit)
	require.True(t, ok)
	assert.Same(t, replacement, got)
	assert.True(t, lit.AliasSearched)

	// Redefining after the first search must not change the memoized
	// result: the token's AliasSearched flag is a one-shot memo.
	root.DefineKeywordAlias("MyKeyword", &token.Token{Kind: token.Keyword})
	got2, ok2 := root.AliasLookup(lit)
	require.True(t, ok2)
	assert.Same(t, replacement, got2)
}

func TestInnerAliasShadowsOuterRatherThanMerging(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	outer := &token.Token{Kind: token.Keyword, Text: "outer-repl"}
	root.DefineOperatorAlias("x", outer)

	child := root.ForkChild(parserctx.KindBlock)
	inner := &token.Token{Kind: token.Operator, Text: "inner-repl"}
	child.DefineOperatorAlias("x", inner)

	lit := &token.Token{Kind: token.Literal, Text: "x"}
	got, ok := child.AliasLookup(lit)
	require.True(t, ok)
	assert.Same(t, inner, got)

	// A fresh token looked up from the root's own perspective still
	// finds the outer alias - the inner one never replaced it.
	lit2 := &token.Token{Kind: token.Literal, Text: "x"}
	got2, ok2 := root.AliasLookup(lit2)
	require.True(t, ok2)
	assert.Same(t, outer, got2)
}

func TestFindParentWalksInclusiveOfSelf(t *testing.T) {
	h := &fakeHolder{s: compilestate.New()}
	root := parserctx.NewRoot(nil, nil, nil, h)
	fn := root.ForkChild(parserctx.KindFunction)
	block := fn.ForkChild(parserctx.KindBlock)

	found, ok := block.FindParent(parserctx.KindFunction)
	require.True(t, ok)
	assert.Same(t, fn, found)

	found, ok = block.FindParent(parserctx.KindBlock)
	require.True(t, ok)
	assert.Same(t, block, found)

	_, ok = block.FindParent(parserctx.KindType)
	assert.False(t, ok)
}
