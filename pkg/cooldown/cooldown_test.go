package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAllowBurstThenDeny(t *testing.T) {
	k := New(time.Hour, 2)

	require.True(t, k.Allow("g1:u1"))
	require.True(t, k.Allow("g1:u1"))
	require.False(t, k.Allow("g1:u1"))

	// a different key has its own bucket
	require.True(t, k.Allow("g1:u2"))
}

func TestPrune(t *testing.T) {
	k := New(time.Hour, 1)
	k.Allow("a")
	k.Allow("b")
	require.Equal(t, 2, k.Len())

	// nothing is old enough yet
	require.Equal(t, 0, k.Prune(time.Minute))

	k.mu.Lock()
	k.entries["a"].lastSeen = time.Now().Add(-time.Hour)
	k.mu.Unlock()

	require.Equal(t, 1, k.Prune(time.Minute))
	require.Equal(t, 1, k.Len())
}

func TestZeroBurstClamped(t *testing.T) {
	k := New(time.Hour, 0)
	require.True(t, k.Allow("x"))
	require.False(t, k.Allow("x"))
}
