package scatter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTable_GatherReturnsOriginalEntries(t *testing.T) {
	t.Parallel()

	entries := make([][]byte, 16)
	for i := range entries {
		entries[i] = []byte{byte(i), byte(i * 2), byte(i * 3)}
	}

	table, err := New(0xdeadbeef, entries)
	require.NoError(t, err)

	dst := make([]byte, 3)
	for i, want := range entries {
		table.Gather(dst, i)
		require.Equal(t, want, dst)
	}
}

func TestNew_rejectsMismatchedLengths(t *testing.T) {
	t.Parallel()

	_, err := New(1, [][]byte{{1, 2, 3}, {1, 2}})
	require.Error(t, err)
}

func TestNew_rejectsEmpty(t *testing.T) {
	t.Parallel()

	_, err := New(1, nil)
	require.Error(t, err)
}

func TestTable_DifferentSeedsPermuteDifferently(t *testing.T) {
	t.Parallel()

	entries := make([][]byte, 16)
	for i := range entries {
		entries[i] = []byte{byte(i)}
	}

	t1, err := New(1, entries)
	require.NoError(t, err)
	t2, err := New(2, entries)
	require.NoError(t, err)

	logicalOrder := func(tbl *Table) []int {
		order := make([]int, len(tbl.slots))
		for i, s := range tbl.slots {
			order[i] = s.logical
		}
		return order
	}
	require.NotEqual(t, logicalOrder(t1), logicalOrder(t2))
}
