package operator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/operator"
)

func TestLongestMatchPicksLongestSpelling(t *testing.T) {
	lut := operator.New()

	c, ok := lut.Lookup([]byte("+++++J"))
	require.True(t, ok)
	assert.Equal(t, operator.Constructor, c)
	assert.Equal(t, "+++", lut.Symbol(c))

	c, ok = lut.Lookup([]byte("++J"))
	require.True(t, ok)
	assert.Equal(t, operator.PlusPlusPostUnary, c)
}

func TestDoubleMinusCanonicalizesToPostUnary(t *testing.T) {
	lut := operator.New()
	c, ok := lut.Lookup([]byte("--E"))
	require.True(t, ok)
	assert.Equal(t, operator.MinusMinusPostUnary, c)
}

func TestLookupRoundTripsThroughSymbol(t *testing.T) {
	lut := operator.New()
	for c := operator.Code(0); c < operator.Code(operator.TotalCodes()); c++ {
		sym := lut.Symbol(c)
		if sym == "" {
			continue
		}
		found, ok := lut.Lookup([]byte(sym))
		require.Truef(t, ok, "lookup(%q) should succeed", sym)
		assert.True(t, lut.IsOrAlternative(found, c), "lookup(%q)=%v should be %v or an alternative", sym, found, c)
	}
}

func TestConflictsEmptyWhenUnique(t *testing.T) {
	lut := operator.New()
	assert.False(t, lut.HasConflicts(operator.And))
	assert.Empty(t, lut.Conflicts(operator.And))
}

func TestNoMatchReturnsFalse(t *testing.T) {
	lut := operator.New()
	_, ok := lut.Lookup([]byte("#"))
	assert.False(t, ok)
}
