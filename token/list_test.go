package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/token"
)

func push(l *token.TokenList, texts ...string) {
	for _, s := range texts {
		l.PushBack(&token.Token{Kind: token.Literal, Text: s})
	}
}

func texts(l *token.TokenList) []string {
	var out []string
	for it := l.Begin(); !it.IsEnd(); it = it.Next() {
		out = append(out, it.Token().Text)
	}
	return out
}

func TestPushAndIterate(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c")
	assert.Equal(t, []string{"a", "b", "c"}, texts(l))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "a", l.Front().Text)
	assert.Equal(t, "c", l.Back().Text)
}

func TestExtractThenInsertBeforeRestoresOrder(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c", "d")

	mid := l.Extract(l.At(1), l.At(3)) // extracts "b", "c"
	assert.Equal(t, []string{"b", "c"}, texts(mid))
	assert.Equal(t, []string{"a", "d"}, texts(l))

	l.InsertBefore(l.At(1), mid)
	assert.Equal(t, []string{"a", "b", "c", "d"}, texts(l))
	assert.True(t, mid.Empty())
}

func TestExtractPreservesNodeIdentity(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c")
	second := l.At(1).Token()

	mid := l.Extract(l.At(1), l.At(2))
	require.Equal(t, 1, mid.Len())
	assert.Same(t, second, mid.Front())

	l.InsertAfter(l.At(0), mid)
	assert.Same(t, second, l.At(1).Token())
}

func TestExtractFromStartToPosAndPosToEnd(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c", "d")

	head := l.ExtractFromStartToPos(l.At(2))
	assert.Equal(t, []string{"a", "b"}, texts(head))
	assert.Equal(t, []string{"c", "d"}, texts(l))

	tail := l.ExtractFromPosToEnd(l.At(1))
	assert.Equal(t, []string{"d"}, texts(tail))
	assert.Equal(t, []string{"c"}, texts(l))
}

func TestHasAheadHasBehind(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c")
	mid := l.At(1)

	assert.True(t, l.HasAhead(mid, 1))
	assert.False(t, l.HasAhead(mid, 2))
	assert.True(t, l.HasBehind(mid, 1))
	assert.False(t, l.HasBehind(mid, 2))
}

func TestIteratorsFromDistinctListsNeverEqual(t *testing.T) {
	a := token.NewList()
	b := token.NewList()
	push(a, "x")
	push(b, "x")

	assert.False(t, a.Begin().Equal(b.Begin()))
}

func TestErase(t *testing.T) {
	l := token.NewList()
	push(l, "a", "b", "c")
	l.Erase(l.At(1), l.At(2))
	assert.Equal(t, []string{"a", "c"}, texts(l))
}

func TestEmptyListBeginEqualsEnd(t *testing.T) {
	l := token.NewList()
	assert.True(t, l.Begin().Equal(l.End()))
	assert.True(t, l.Empty())
	assert.Nil(t, l.Front())
	assert.Nil(t, l.Back())
}
