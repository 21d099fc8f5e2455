package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawNumber_ExhaustsWithoutRepeats(t *testing.T) {
	called := []int{}
	for i := 0; i < MaxCallNumber; i++ {
		n, ok := DrawNumber(called)
		require.True(t, ok, "draw %d should succeed", i)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, MaxCallNumber)
		require.NotContains(t, called, n)
		called = append(called, n)
	}

	_, ok := DrawNumber(called)
	assert.False(t, ok)
}

func TestDrawNumber_DoesNotMutateInput(t *testing.T) {
	called := []int{5, 10, 15}
	snapshot := append([]int(nil), called...)

	for i := 0; i < 50; i++ {
		n, ok := DrawNumber(called)
		require.True(t, ok)
		require.NotContains(t, snapshot, n)
	}

	assert.Equal(t, snapshot, called)
}
