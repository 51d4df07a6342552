package sorting

import (
	"testing"

	"github.com/kabu1204/go-nlogn/optional"
	"github.com/kabu1204/go-nlogn/types"
	"github.com/stretchr/testify/require"
)

func TestIsSorted(t *testing.T) {
	require.True(t, IsSorted(types.Slice{}, intCmp))
	require.True(t, IsSorted(types.From([]int{42}), intCmp))
	require.True(t, IsSorted(types.From([]int{1, 2, 2, 3}), intCmp))
	require.False(t, IsSorted(types.From([]int{1, 3, 2}), intCmp))
}

func TestMinMax(t *testing.T) {
	s := types.From([]int{4, 10, 3, 5, 1})
	require.Equal(t, optional.Some{Value: 1}, Min(s, intCmp))
	require.Equal(t, optional.Some{Value: 10}, Max(s, intCmp))

	require.True(t, Min(types.Slice{}, intCmp).IsNone())
	require.True(t, Max(types.Slice{}, intCmp).IsNone())
}
