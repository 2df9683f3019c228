package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderedKeyComparator(t *testing.T) {
	require.Equal(t, int64(-1), OrderedKeyComparator(1, 2))
	require.Equal(t, int64(1), OrderedKeyComparator(2, 1))
	require.Equal(t, int64(0), OrderedKeyComparator(7, 7))

	require.Equal(t, int64(-1), OrderedKeyComparator("abc", "abd"))
	require.Equal(t, int64(1), OrderedKeyComparator(3.5, 1.25))
}
