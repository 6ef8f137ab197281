package compilestate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zaxc/corec/compilestate"
	"github.com/zaxc/corec/diag"
)

func TestForkIsWarningAnErrorMatchesParent(t *testing.T) {
	root := compilestate.New()
	require.True(t, root.Warnings.EnableForceError(diag.BadStyle))

	child := compilestate.Fork(root)
	assert.Equal(t, root.IsWarningAnError(diag.BadStyle), child.IsWarningAnError(diag.BadStyle))

	// mutating the child never reaches back into the parent.
	require.True(t, child.Warnings.Disable(diag.BadStyle))
	assert.True(t, root.IsWarningAnError(diag.BadStyle))
	assert.False(t, child.IsWarningAnError(diag.BadStyle))
}

func TestForkCopiesDeprecateByValue(t *testing.T) {
	root := compilestate.New()
	root.Deprecate = &compilestate.Deprecate{Context: compilestate.DeprecateLocal, ForceError: true}

	child := compilestate.Fork(root)
	child.Deprecate.Context = compilestate.DeprecateAll

	assert.Equal(t, compilestate.DeprecateLocal, root.Deprecate.Context)
	assert.Equal(t, compilestate.DeprecateAll, child.Deprecate.Context)
}
