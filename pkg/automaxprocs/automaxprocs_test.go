package automaxprocs

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitUndo(t *testing.T) {
	before := runtime.GOMAXPROCS(0)

	undo, err := Init(context.Background())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, runtime.GOMAXPROCS(0), 1)

	undo()
	assert.Equal(t, before, runtime.GOMAXPROCS(0))
}
