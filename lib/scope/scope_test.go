package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPolicyFlags(t *testing.T) {
	require.True(t, Decoupled.DestroyNode())
	require.True(t, Decoupled.DestroyContainer())

	require.False(t, Cached.DestroyNode())
	require.True(t, Cached.DestroyContainer())

	require.False(t, Symbiosis.DestroyNode())
	require.False(t, Symbiosis.DestroyContainer())
}

func TestPolicyString(t *testing.T) {
	require.Equal(t, "decoupled", Decoupled.String())
	require.Equal(t, "cached", Cached.String())
	require.Equal(t, "symbiosis", Symbiosis.String())
	require.Equal(t, "unknown", Policy(9).String())
}
