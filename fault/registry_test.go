package fault_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/fault"
)

type code int

const (
	codeA code = iota
	codeB
	totalCodes
)

func TestPushPopRestoresPriorState(t *testing.T) {
	r := fault.New[code](int(totalCodes))
	require.True(t, r.Disable(codeA))
	before := r.At(codeA)

	r.Push()
	require.True(t, r.Enable(codeA))
	require.True(t, r.At(codeA).Enabled)

	require.True(t, r.Pop())
	assert.Equal(t, before, r.At(codeA))
}

func TestPopOnEmptyStackFails(t *testing.T) {
	r := fault.New[code](int(totalCodes))
	assert.False(t, r.Pop())
}

func TestLockBlocksOtherHolders(t *testing.T) {
	r := fault.New[code](int(totalCodes))
	const holder fault.LockerID = 7
	const other fault.LockerID = 8

	require.True(t, r.Lock(codeA, holder))
	assert.False(t, r.Lock(codeA, other))
	assert.False(t, r.Disable(codeA))
	assert.False(t, r.Unlock(codeA, other))

	require.True(t, r.Unlock(codeA, holder))
	assert.True(t, r.Disable(codeA))
}

func TestForkClonesArrayResetsStack(t *testing.T) {
	r := fault.New[code](int(totalCodes))
	require.True(t, r.Disable(codeB))
	r.Push()

	clone := r.Fork()
	assert.Equal(t, r.At(codeB), clone.At(codeB))

	require.True(t, clone.Enable(codeB))
	assert.NotEqual(t, r.At(codeB), clone.At(codeB))
	assert.False(t, clone.Pop())
}

func TestLockAllUnlockAllCountChanged(t *testing.T) {
	r := fault.New[code](int(totalCodes))
	const holder fault.LockerID = 1

	require.True(t, r.Lock(codeA, holder))
	n := r.LockAll(holder)
	assert.Equal(t, 1, n) // codeA already locked, only codeB newly locked

	n = r.UnlockAll(holder)
	assert.Equal(t, int(totalCodes), n)
}
