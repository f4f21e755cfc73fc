//go:build unit

package platform

import (
	goruntime "runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactlyOneCompilerFlag(t *testing.T) {
	t.Parallel()

	require.Len(t, Compilers(), 1)
}

func TestExactlyOneOSFlag(t *testing.T) {
	t.Parallel()

	require.Len(t, OperatingSystems(), 1)
}

func TestFlagsMatchRuntime(t *testing.T) {
	t.Parallel()

	assert.Equal(t, goruntime.Compiler == "gc", CompilerGC)
	assert.Equal(t, goruntime.Compiler == "gccgo", CompilerGccgo)

	assert.Equal(t, goruntime.GOOS == "linux", OSLinux)
	assert.Equal(t, goruntime.GOOS == "darwin", OSMac)
	assert.Equal(t, goruntime.GOOS == "windows", OSWindows)
}

func TestFlagListsAreComplete(t *testing.T) {
	t.Parallel()

	assert.Len(t, CompilerFlags(), 3)
	assert.Len(t, OSFlags(), 4)
}
