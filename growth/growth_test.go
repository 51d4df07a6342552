package growth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	rows, err := Compare(DefaultSizes)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	require.Equal(t, 10, rows[0].N)
	require.Equal(t, 10.0, rows[0].Linear)
	require.InDelta(t, 33.22, rows[0].Linearithmic, 0.005)
	require.Equal(t, 100.0, rows[0].Quadratic)

	require.Equal(t, 10000, rows[3].N)
	require.Equal(t, 10000.0, rows[3].Linear)
	require.InDelta(t, 132877.12, rows[3].Linearithmic, 0.005)
	require.Equal(t, 100000000.0, rows[3].Quadratic)
}

func TestCompareRejectsNonPositiveSizes(t *testing.T) {
	for _, n := range []int{0, -1, -10000} {
		rows, err := Compare([]int{10, n})
		require.Nil(t, rows)
		require.ErrorIs(t, err, ErrNonPositiveSize)
	}
}

func TestFprint(t *testing.T) {
	rows, err := Compare([]int{10})
	require.NoError(t, err)

	var buf bytes.Buffer
	Fprint(&buf, rows)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "Input Size (n)")
	require.Contains(t, lines[0], "Linearithmic (n log n)")
	require.Contains(t, lines[2], "33.22")
	require.Contains(t, lines[2], "100")
}
